package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"device_alert_gateway/internal/app"
	"device_alert_gateway/internal/domain/device"

	"github.com/sirupsen/logrus"
)

// Handlers serves the device-facing endpoints.
type Handlers struct {
	dispatch *app.DispatchService
	logger   *logrus.Entry
}

func NewHandlers(dispatch *app.DispatchService, logger *logrus.Entry) *Handlers {
	return &Handlers{dispatch: dispatch, logger: logger}
}

type alertRequest struct {
	Channel string          `json:"channel"`
	State   string          `json:"state"`
	Status  json.RawMessage `json:"status,omitempty"`
}

type statusUpdateRequest struct {
	Status json.RawMessage `json:"status"`
}

// Alert handles POST /alert. An unparseable body is logged and still
// acknowledged so a retrying device does not hammer the gateway with the
// same broken payload.
func (h *Handlers) Alert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read alert body")
		writeJSON(w, http.StatusOK, map[string]string{"message": "accepted"})
		return
	}

	var req alertRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.WithError(err).Warn("Malformed alert payload, acknowledging anyway")
		writeJSON(w, http.StatusOK, map[string]string{"message": "accepted"})
		return
	}

	// An alert may piggyback a status snapshot; store it when present.
	if snapshotPresent(req.Status) {
		if snapshot, err := decodeSnapshot(req.Status); err != nil {
			h.logger.WithError(err).Warn("Ignoring unparseable status carried by alert")
		} else if len(snapshot) > 0 {
			if err := h.dispatch.HandleStatusUpdate(snapshot); err != nil {
				h.logger.WithError(err).Warn("Ignoring status carried by alert")
			}
		}
	}

	h.dispatch.HandleAlert(req.Channel, req.State)
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification dispatched"})
}

// StatusUpdate handles POST /status-update. A missing or empty status
// object is a client error; an unparseable body is acknowledged per the
// same rule as alerts.
func (h *Handlers) StatusUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read status-update body")
		writeJSON(w, http.StatusOK, map[string]string{"message": "accepted"})
		return
	}

	var req statusUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.WithError(err).Warn("Malformed status-update payload, acknowledging anyway")
		writeJSON(w, http.StatusOK, map[string]string{"message": "accepted"})
		return
	}

	if !snapshotPresent(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no status provided"})
		return
	}

	snapshot, err := decodeSnapshot(req.Status)
	if err != nil {
		h.logger.WithError(err).Warn("Unparseable status object in status-update")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status object"})
		return
	}

	if err := h.dispatch.HandleStatusUpdate(snapshot); err != nil {
		if errors.Is(err, device.ErrEmptySnapshot) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no status provided"})
			return
		}
		h.logger.WithError(err).Error("Failed to apply status update")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

func snapshotPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
