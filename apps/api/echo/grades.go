package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/grading"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/numwords"
)

type gradeApi struct {
	validate *validator.Validate
}

func registerGradeAPI(g *echo.Group, validate *validator.Validate) {
	api := gradeApi{validate: validate}

	g.GET("/grades/:board", api.grade)
	g.POST("/grades/cgpa", api.cgpa)
	g.GET("/words/:n", api.words)
}

// Handlers

// grade returns the board's scale, or the band of ?percentage= when given.
func (api *gradeApi) grade(ctx echo.Context) error {
	board, ok := grading.ParseBoard(ctx.Param("board"))
	if !ok {
		return errHttpNotFound
	}

	q := ctx.QueryParam("percentage")
	if q == "" {
		bands, err := grading.Scale(board)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, ScaleResponse{Board: board, Bands: bands})
	}

	pct, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return core.FieldErrorf("percentage", "%q is not a number", q)
	}
	band, err := grading.GradeFor(pct, board)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, GradeResponse{
		Board:      board,
		Percentage: pct,
		Band:       band,
		Passed:     grading.Passed(pct),
	})
}

func (api *gradeApi) cgpa(ctx echo.Context) error {
	var data CGPARequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CGPARequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	cgpa, err := grading.CGPA(data.Points)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, CGPAResponse{CGPA: cgpa})
}

func (api *gradeApi) words(ctx echo.Context) error {
	n, err := strconv.ParseUint(ctx.Param("n"), 10, 64)
	if err != nil {
		return core.FieldErrorf("n", "must be a whole number of rupees")
	}
	return ctx.JSON(http.StatusOK, WordsResponse{
		Number: n,
		Words:  numwords.ToWords(n),
		Rupees: numwords.RupeesInWords(n),
		Figure: numwords.FormatRupees(n),
	})
}
