package echoapi

import (
	"fmt"
	"net/http"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/docgen"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/layout"
)

type documentApi struct {
	svc        docgen.ServiceInterface
	validate   *validator.Validate
	translator ut.Translator
}

func registerDocumentAPI(
	g *echo.Group,
	svc docgen.ServiceInterface,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := documentApi{
		svc:        svc,
		validate:   validate,
		translator: translator,
	}

	dg := g.Group("/documents")
	dg.GET("/types", api.types)
	dg.GET("/:type/fields", api.fields)
	dg.POST("/validate", api.check)
	dg.POST("/layout", api.layout)

	g.POST("/cards/sheets", api.sheets)
}

// Handlers

func (api *documentApi) types(ctx echo.Context) error {
	types := document.DocumentTypes()
	resp := make([]DocumentTypeResponse, 0, len(types))
	for _, dt := range types {
		cfg, err := document.ConfigFor(dt)
		if err != nil {
			return errors.Wrapf(err, "config of %s", dt)
		}
		resp = append(resp, DocumentTypeResponse{
			Type:        dt,
			Title:       cfg.Title,
			Card:        cfg.Card,
			Orientation: cfg.Orientation,
			PageSize:    cfg.PageSize,
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *documentApi) fields(ctx echo.Context) error {
	dt, ok := document.ParseDocumentType(ctx.Param("type"))
	if !ok {
		return errHttpNotFound
	}
	specs, err := api.svc.Fields(dt, document.Board(ctx.QueryParam("board")))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, FieldsResponse{
		DocumentType: dt,
		Board:        api.svc.Prepare(document.Request{Board: document.Board(ctx.QueryParam("board"))}).Board,
		Fields:       specs,
	})
}

func (api *documentApi) check(ctx echo.Context) error {
	req, err := api.bindRequest(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Validate(req, requestMeta(ctx)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ValidateResponse{Valid: true, Reference: req.Reference()})
}

func (api *documentApi) layout(ctx echo.Context) error {
	req, err := api.bindRequest(ctx)
	if err != nil {
		return err
	}
	page, err := api.svc.Layout(req, requestMeta(ctx))
	if err != nil {
		return err
	}

	resp := LayoutResponse{Page: page, Counts: page.Count()}
	if resp.Fields, err = document.Fields(req); err != nil {
		return errors.Wrap(err, "listing fields")
	}
	if rec, ok := req.Record.(document.ReportCardRecord); ok {
		a, err := layout.Assess(rec, req.Board)
		if err != nil {
			return errors.Wrap(err, "assessing report card")
		}
		resp.Assessment = &a
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *documentApi) sheets(ctx echo.Context) error {
	var data SheetsRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SheetsRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	for i, req := range data.Requests {
		req = api.svc.Prepare(req)
		if err := req.Validate(api.validate); err != nil {
			return api.fieldErrors(err, fmt.Sprintf("requests[%d].", i))
		}
		data.Requests[i] = req
	}

	sheets, err := api.svc.ComposeSheets(data.Requests, requestMeta(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sheets)
}

// bindRequest decodes a document request, fills the configured defaults and
// checks the envelope.
func (api *documentApi) bindRequest(ctx echo.Context) (document.Request, error) {
	var req document.Request
	if err := ctx.Bind(&req); err != nil {
		return req, errors.Wrap(err, "binding to document.Request")
	}
	req = api.svc.Prepare(req)
	if err := req.Validate(api.validate); err != nil {
		return req, api.fieldErrors(err, "")
	}
	return req, nil
}

// fieldErrors rewrites tag validation errors as a core.ValidationError keyed
// by the field path, e.g. "school.email" or "requests[2].board".
func (api *documentApi) fieldErrors(err error, prefix string) error {
	vErrs, ok := errors.Cause(err).(validator.ValidationErrors)
	if !ok {
		return err
	}
	flds := make([]core.FieldError, len(vErrs))
	for i, vErr := range vErrs {
		path := vErr.Namespace()
		if dot := strings.Index(path, "."); dot >= 0 {
			path = path[dot+1:] // drop the struct name
		}
		flds[i] = core.FieldError{Field: prefix + path, Error: vErr.Translate(api.translator)}
	}
	return core.NewValidationError(nil, flds...)
}
