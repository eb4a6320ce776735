package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/classwork"
)

type classworkApi struct {
	svc      *classwork.Service
	validate *validator.Validate
}

func registerClassworkAPI(g *echo.Group, svc *classwork.Service, validate *validator.Validate) {
	api := classworkApi{
		svc:      svc,
		validate: validate,
	}

	g.POST("/assignment", api.createAssignment)
	g.GET("/assignments", api.queryAssignments)

	g.POST("/exam", api.createExam)
	g.GET("/exams", api.queryExams)
	g.POST("/takeExam", api.takeExam)

	// parents
	g.GET("/results", api.queryResults)
}

// Handlers

func (api *classworkApi) createAssignment(ctx echo.Context) error {
	var data classwork.NewWork
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewWork")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	assignments, err := api.svc.CreateAssignment(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusOK, AssignmentsResponse{Success: true, Assignments: assignments})
}

func (api *classworkApi) queryAssignments(ctx echo.Context) error {
	assignments, err := api.svc.ListAssignments(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *classworkApi) createExam(ctx echo.Context) error {
	var data classwork.NewWork
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewWork")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	exams, err := api.svc.CreateExam(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating exam")
	}
	return ctx.JSON(http.StatusOK, ExamsResponse{Success: true, Exams: exams})
}

func (api *classworkApi) queryExams(ctx echo.Context) error {
	exams, err := api.svc.ListExams(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying exams")
	}
	return ctx.JSON(http.StatusOK, exams)
}

func (api *classworkApi) takeExam(ctx echo.Context) error {
	var data classwork.NewAttempt
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAttempt")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sub, err := api.svc.TakeExam(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "taking exam")
	}
	return ctx.JSON(http.StatusOK, ScoreResponse{Success: true, Score: sub.Score})
}

func (api *classworkApi) queryResults(ctx echo.Context) error {
	var filter classwork.ResultFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to ResultFilter")
	}

	results, err := api.svc.ListResults(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying results")
	}
	return ctx.JSON(http.StatusOK, results)
}

type (
	AssignmentsResponse struct {
		Success     bool                   `json:"success"`
		Assignments []classwork.Assignment `json:"assignments"`
	}

	ExamsResponse struct {
		Success bool             `json:"success"`
		Exams   []classwork.Exam `json:"exams"`
	}

	ScoreResponse struct {
		Success bool `json:"success"`
		Score   int  `json:"score"`
	}
)
