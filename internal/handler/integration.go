package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	statusConnected     = "Connected"
	statusNotConfigured = "Not configured"
)

// IntegrationResponse is the body of GET /api/test.
type IntegrationResponse struct {
	Message  string `json:"message"`
	Supabase string `json:"supabase"`
	Gemini   string `json:"gemini"`
}

// APITest reports whether the Supabase and Gemini credentials were present
// at startup.  Nothing is dialled; an unset and an empty variable both read
// as "Not configured".
func (h *Handler) APITest(c echo.Context) error {
	return c.JSON(http.StatusOK, IntegrationResponse{
		Message:  "Backend is working!",
		Supabase: presence(h.Cfg.SupabaseConfigured()),
		Gemini:   presence(h.Cfg.GeminiConfigured()),
	})
}

func presence(ok bool) string {
	if ok {
		return statusConnected
	}
	return statusNotConfigured
}
