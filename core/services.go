package core

import (
	"context"
	"io"
)

// Event subjects
const (
	SubjectUserSignedUp      = "classroom.user.signed_up"
	SubjectAssignmentCreated = "classroom.assignment.created"
	SubjectExamCreated       = "classroom.exam.created"
	SubjectExamTaken         = "classroom.exam.taken"
	SubjectFeedPosted        = "classroom.feed.posted"
	SubjectLibraryPurchased  = "classroom.library.purchased"
	SubjectFileUploaded      = "classroom.file.uploaded"
)

type (
	// Logger args are expected to be: error, map[string]interface{} or a user.User.
	Logger interface {
		Debug(msg string, args ...interface{})
		Info(msg string, args ...interface{})
		Warn(msg string, args ...interface{})
		Error(msg string, args ...interface{})
		Fatal(msg string, args ...interface{})
	}

	// EventPublisher broadcasts domain events. Payloads are JSON encoded.
	EventPublisher interface {
		Publish(subject string, payload interface{}) error
		Close() error
	}

	// FileStore saves uploaded content under the given name and returns the stored name.
	FileStore interface {
		Save(ctx context.Context, name string, r io.Reader) (string, error)
	}
)

// Notify publishes an event. A publish failure is logged, not returned.
func Notify(pub EventPublisher, logger Logger, subject string, payload interface{}) {
	if pub == nil {
		return
	}
	if err := pub.Publish(subject, payload); err != nil && logger != nil {
		logger.Warn("publishing event "+subject, err)
	}
}
