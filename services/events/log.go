package eventsvc

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

// maxKept bounds the events a LogPublisher keeps; older ones are dropped first.
const maxKept = 1000

type Event struct {
	Subject string
	Payload []byte
}

// LogPublisher is used when no message broker is configured: events are logged at debug level
// and the latest ones are kept in memory.
type LogPublisher struct {
	logger    core.Logger
	mu        sync.Mutex
	published []Event
}

var _ core.EventPublisher = (*LogPublisher)(nil)

// NewLogPublisher returns a LogPublisher. A nil logger disables output.
func NewLogPublisher(logger core.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encoding event")
	}

	p.mu.Lock()
	p.published = append(p.published, Event{Subject: subject, Payload: data})
	if len(p.published) > maxKept {
		p.published = p.published[len(p.published)-maxKept:]
	}
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Debug("event "+subject, map[string]interface{}{"payload": string(data)})
	}
	return nil
}

// Published returns the events published so far, oldest first.
func (p *LogPublisher) Published() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := make([]Event, len(p.published))
	copy(events, p.published)
	return events
}

func (p *LogPublisher) Close() error {
	return nil
}
