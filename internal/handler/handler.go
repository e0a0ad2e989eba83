// Package handler holds the HTTP handlers and the error hook of the API.
package handler

import "github.com/iliyamo/chatbook-study-hub/internal/config"

// Handler bundles the read-once configuration and the health clock shared by
// the route handlers.  None of the handlers mutate it.
type Handler struct {
	Cfg   config.Config
	Clock *Clock
}

// New constructs a Handler for cfg.
func New(cfg config.Config) *Handler {
	return &Handler{Cfg: cfg, Clock: NewClock()}
}
