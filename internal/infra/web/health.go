package web

import (
	"net/http"
	"time"
)

var startTime = time.Now()

const version = "0.1.0"

// Health serves the liveness endpoint: a fixed acknowledgement with no
// side effects.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"service":        "device-alert-gateway",
		"version":        version,
		"uptime_seconds": int(time.Since(startTime).Seconds()),
	})
}
