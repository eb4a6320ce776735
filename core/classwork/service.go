package classwork

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

type (
	// Repository is append-only. Create* methods return the whole sequence as it was right
	// after the append, in insertion order.
	Repository interface {
		CreateAssignment(ctx context.Context, a Assignment) ([]Assignment, error)
		QueryAllAssignments(ctx context.Context) ([]Assignment, error)
		CreateExam(ctx context.Context, e Exam) ([]Exam, error)
		QueryAllExams(ctx context.Context) ([]Exam, error)
		CreateSubmission(ctx context.Context, s Submission) (Submission, error)
		FilterSubmissions(ctx context.Context, filter SubmissionFilter) ([]Submission, error)
	}

	Service struct {
		repo   Repository
		scorer Scorer
		events core.EventPublisher
		logger core.Logger
	}
)

var nowFunc = time.Now // mockable

func NewService(repo Repository, scorer Scorer, events core.EventPublisher, logger core.Logger) *Service {
	return &Service{
		repo:   repo,
		scorer: scorer,
		events: events,
		logger: logger,
	}
}

func (svc *Service) CreateAssignment(ctx context.Context, nw NewWork) ([]Assignment, error) {
	a := Assignment{
		ID:        uuid.NewString(),
		Title:     nw.Title,
		CreatedAt: nowFunc().UTC(),
	}
	assignments, err := svc.repo.CreateAssignment(ctx, a)
	if err != nil {
		return nil, errors.Wrap(err, "creating assignment")
	}
	core.Notify(svc.events, svc.logger, core.SubjectAssignmentCreated, a)
	return assignments, nil
}

func (svc *Service) ListAssignments(ctx context.Context) ([]Assignment, error) {
	return svc.repo.QueryAllAssignments(ctx)
}

func (svc *Service) CreateExam(ctx context.Context, nw NewWork) ([]Exam, error) {
	e := Exam{
		ID:        uuid.NewString(),
		Title:     nw.Title,
		CreatedAt: nowFunc().UTC(),
	}
	exams, err := svc.repo.CreateExam(ctx, e)
	if err != nil {
		return nil, errors.Wrap(err, "creating exam")
	}
	core.Notify(svc.events, svc.logger, core.SubjectExamCreated, e)
	return exams, nil
}

func (svc *Service) ListExams(ctx context.Context) ([]Exam, error) {
	return svc.repo.QueryAllExams(ctx)
}

// TakeExam scores a mock exam attempt and records it as a Submission.
// Attempts are not tied to an Exam and may be repeated.
func (svc *Service) TakeExam(ctx context.Context, na NewAttempt) (Submission, error) {
	sub := Submission{
		ID:          uuid.NewString(),
		Student:     na.Student,
		Type:        SubmissionTypeExam,
		Score:       svc.scorer.Score(),
		SubmittedAt: nowFunc().UTC(),
	}
	sub, err := svc.repo.CreateSubmission(ctx, sub)
	if err != nil {
		return Submission{}, errors.Wrap(err, "creating submission")
	}
	core.Notify(svc.events, svc.logger, core.SubjectExamTaken, sub)
	return sub, nil
}

// ListResults returns the exam Submissions in the order they were created.
func (svc *Service) ListResults(ctx context.Context, filter ResultFilter) ([]Submission, error) {
	return svc.repo.FilterSubmissions(ctx, SubmissionFilter{Type: SubmissionTypeExam, Student: filter.Student})
}
