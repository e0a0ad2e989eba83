package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is written for any error that is not a framework HTTP error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorHandler returns an echo.HTTPErrorHandler that keeps echo's default
// rendering for *echo.HTTPError values (unknown routes, malformed bodies,
// oversized bodies, rate limiting) and reports everything else, including
// recovered panics, as 500 {"error": message}.
func NewErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}
		if c.Response().Committed {
			return
		}
		c.Logger().Error(err)
		msg := err.Error()
		if msg == "" {
			msg = http.StatusText(http.StatusInternalServerError)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(http.StatusInternalServerError)
		} else {
			err = c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
