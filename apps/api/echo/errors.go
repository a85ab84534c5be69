package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/batch"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/datefmt"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/docgen"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/grading"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/layout"
)

var errHttpNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code, message, ok := clientError(err, translator)
		if !ok {
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg
			logger.Error(msg, errors.Wrap(err, msg), requestMeta(ctx))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

// clientError maps the errors a caller can fix to a status and a body.
// ok is false for server errors.
func clientError(err error, translator ut.Translator) (code int, message interface{}, ok bool) {
	switch origErr := errors.Cause(err).(type) {
	case *echo.HTTPError:
		if origErr.Internal != nil {
			if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
				origErr = herr
			}
		}
		return origErr.Code, origErr.Message, true
	case validator.ValidationErrors:
		fldErrs := make(map[string]string, len(origErr))
		for _, vErr := range origErr {
			fldErrs[vErr.Field()] = vErr.Translate(translator)
		}
		return http.StatusBadRequest, fldErrs, true
	case *core.ValidationError:
		if origErr.Fields != nil {
			fldErrs := make(map[string]string, len(origErr.Fields))
			for _, fErr := range origErr.Fields {
				fldErrs[fErr.Field] = fErr.Error
			}
			return http.StatusBadRequest, fldErrs, true
		}
		return http.StatusBadRequest, origErr.Error(), true
	case *document.ValidationError:
		return http.StatusUnprocessableEntity, echo.Map{
			"error":         "mandatory fields are missing",
			"document_type": origErr.DocumentType,
			"board":         origErr.Board,
			"violations":    origErr.Violations,
		}, true
	case *layout.OverflowError:
		return http.StatusUnprocessableEntity, echo.Map{
			"error":  origErr.Error(),
			"extent": origErr.Extent,
			"limit":  origErr.Limit,
		}, true
	case *layout.BarcodeError:
		return http.StatusUnprocessableEntity, echo.Map{
			"error":   origErr.Error(),
			"content": origErr.Content,
		}, true
	case *batch.SlotError:
		code, message, ok := clientError(origErr.Err, translator)
		if !ok {
			return 0, nil, false
		}
		if m, isStr := message.(string); isStr {
			message = echo.Map{"error": m}
		}
		return code, echo.Map{"card": origErr.Index + 1, "cause": message}, true
	case *grading.GradeLookupError, *grading.EmptyInputError, *grading.MarksError,
		*datefmt.InvalidDateError, *document.RecordMismatchError:
		return http.StatusBadRequest, err.Error(), true
	}

	switch errors.Cause(err) {
	case document.ErrUnknownDocumentType, document.ErrUnknownBoard, docgen.ErrNoRequests,
		batch.ErrNoCapacity, batch.ErrNotACard, batch.ErrCardSizeDiff:
		return http.StatusBadRequest, err.Error(), true
	}
	return 0, nil, false
}
