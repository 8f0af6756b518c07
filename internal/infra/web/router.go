package web

import (
	"net/http"

	"device_alert_gateway/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the device-facing HTTP endpoints.
func NewRouter(dispatch *app.DispatchService, logger *logrus.Entry) http.Handler {
	h := NewHandlers(dispatch, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", Health)
	r.Get("/healthz", Health)
	r.Post("/alert", h.Alert)
	r.Post("/status-update", h.StatusUpdate)

	return r
}
