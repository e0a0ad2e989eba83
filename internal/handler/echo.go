package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
)

// emptyObject is echoed back when the request carried no JSON payload.
var emptyObject = json.RawMessage(`{}`)

// EchoResponse is the body of POST /api/echo.  Data holds the submitted
// JSON verbatim so numbers survive without float rounding.
type EchoResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Echo returns the JSON request body unchanged under "data".  Any JSON value
// is accepted, top-level scalars and null included.  An empty body, or one
// declared with a non-JSON content type, echoes as {}.
func (h *Handler) Echo(c echo.Context) error {
	data, err := readJSONBody(c.Request())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EchoResponse{
		Message: "Received data successfully",
		Data:    data,
	})
}

func readJSONBody(r *http.Request) (json.RawMessage, error) {
	if r.Body == nil || !isJSONContentType(r.Header.Get(echo.HeaderContentType)) {
		return emptyObject, nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return nil, he // body limit exceeded
		}
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return emptyObject, nil
	}
	if !utf8.Valid(raw) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "request body is not valid UTF-8")
	}
	if !json.Valid(raw) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	return json.RawMessage(raw), nil
}

// isJSONContentType accepts a missing header, application/json and any
// structured +json suffix type.
func isJSONContentType(ct string) bool {
	if strings.TrimSpace(ct) == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == echo.MIMEApplicationJSON || strings.HasSuffix(mt, "+json")
}
