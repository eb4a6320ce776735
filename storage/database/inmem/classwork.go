package inmemdb

import (
	"context"

	"github.com/trezcool/darasa/core/classwork"
)

type classworkRepository struct {
	assignment *listTable[classwork.Assignment]
	exam       *listTable[classwork.Exam]
	submission *listTable[classwork.Submission]
}

func NewClassworkRepository(db *DB) classwork.Repository {
	return &classworkRepository{
		assignment: db.assignment,
		exam:       db.exam,
		submission: db.submission,
	}
}

func (repo *classworkRepository) CreateAssignment(_ context.Context, a classwork.Assignment) ([]classwork.Assignment, error) {
	return repo.assignment.append(a), nil
}

func (repo *classworkRepository) QueryAllAssignments(_ context.Context) ([]classwork.Assignment, error) {
	return repo.assignment.all(), nil
}

func (repo *classworkRepository) CreateExam(_ context.Context, e classwork.Exam) ([]classwork.Exam, error) {
	return repo.exam.append(e), nil
}

func (repo *classworkRepository) QueryAllExams(_ context.Context) ([]classwork.Exam, error) {
	return repo.exam.all(), nil
}

func (repo *classworkRepository) CreateSubmission(_ context.Context, s classwork.Submission) (classwork.Submission, error) {
	repo.submission.append(s)
	return s, nil
}

func (repo *classworkRepository) FilterSubmissions(_ context.Context, filter classwork.SubmissionFilter) ([]classwork.Submission, error) {
	return repo.submission.filter(filter.Match), nil
}
