package echoapi

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
)

var errHttpUnsupportedMedia = echo.NewHTTPError(http.StatusUnsupportedMediaType, "request body must be JSON")

// jsonBodyMiddleware rejects request bodies that are not JSON. Requests
// without a body pass through.
func jsonBodyMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if req.ContentLength == 0 {
				return next(ctx)
			}
			mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
			if err != nil || mediaType != echo.MIMEApplicationJSON {
				return errHttpUnsupportedMedia
			}
			return next(ctx)
		}
	}
}
