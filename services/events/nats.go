package eventsvc

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

// NATSPublisher publishes JSON encoded events on a NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
}

var _ core.EventPublisher = (*NATSPublisher)(nil)

func NewNATSPublisher(url string, logger core.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(
		url,
		nats.Name("darasa"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected to " + nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to NATS at %s", url)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encoding event")
	}
	if err = p.conn.Publish(subject, data); err != nil {
		return errors.Wrapf(err, "publishing to %s", subject)
	}
	return nil
}

// Close flushes pending messages before closing the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
