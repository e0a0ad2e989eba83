package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/chatbook-study-hub/internal/view"
)

const serviceName = "Chatbook Study Hub API"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health is the health-check endpoint used by load balancers and monitoring
// systems.  It always answers 200 with status "OK"; the timestamp strictly
// increases between calls.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   serviceName + " is running",
		Timestamp: h.Clock.Now().Format(TimestampLayout),
	})
}

// Root answers GET / with a plain text greeting.
func (h *Handler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to the "+serviceName+"!")
}

// Status renders the static status page.
func (h *Handler) Status(c echo.Context) error {
	return c.Render(http.StatusOK, view.StatusTemplateName, view.DefaultStatusPage())
}
