package classwork

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SubmissionTypeExam is the only Submission type produced: by taking an exam.
const SubmissionTypeExam = "exam"

type Assignment struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type Exam struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type Submission struct {
	ID          string    `json:"id"`
	Student     string    `json:"student"`
	Type        string    `json:"type"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"` // UTC
}

// NewWork contains information needed to post an Assignment or an Exam.
type NewWork struct {
	Title string `json:"title" validate:"required"`
}

func (nw *NewWork) Validate(validate *validator.Validate) error {
	return validate.Struct(nw)
}

type NewAttempt struct {
	Student string `json:"student" validate:"required"`
}

func (na *NewAttempt) Validate(validate *validator.Validate) error {
	return validate.Struct(na)
}

// ResultFilter narrows the exam results; zero value matches all.
type ResultFilter struct {
	Student string `query:"student"`
}

// SubmissionFilter applies AND on its non-empty fields.
type SubmissionFilter struct {
	Type    string
	Student string
}

func (sf SubmissionFilter) Match(s Submission) bool {
	if sf.Type != "" && s.Type != sf.Type {
		return false
	}
	if sf.Student != "" && s.Student != sf.Student {
		return false
	}
	return true
}
