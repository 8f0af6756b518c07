package app

import (
	"fmt"
	"strings"
	"time"

	"device_alert_gateway/internal/domain/device"
	"device_alert_gateway/internal/domain/message"
	"device_alert_gateway/internal/domain/messenger"
	"device_alert_gateway/internal/domain/schedule"

	"github.com/sirupsen/logrus"
)

// DispatchConfig carries the dispatch options resolved at startup.
type DispatchConfig struct {
	// BroadcastChatID is the fixed recipient for device notifications.
	BroadcastChatID int64
	// NotifyOnStatusUpdate enables broadcasting every accepted status
	// report. Unlike alerts, these broadcasts are never schedule-gated.
	NotifyOnStatusUpdate bool
	// StatusQueryTrigger is the exact chat text that requests the current
	// device status.
	StatusQueryTrigger string
	// Location is the timezone all receipt timestamps and schedule
	// decisions are evaluated in.
	Location *time.Location
	// Now is the clock used to stamp incoming events. Defaults to time.Now.
	Now func() time.Time
}

// DispatchService orchestrates incoming device events: it stamps them,
// consults the schedule policy, keeps the latest snapshot, and relays
// notifications through the messenger client.
type DispatchService struct {
	store     *device.StateStore
	policy    *schedule.Policy
	messenger messenger.Client
	logger    *logrus.Entry

	broadcastChatID      int64
	notifyOnStatusUpdate bool
	statusQueryTrigger   string
	location             *time.Location
	now                  func() time.Time
}

func NewDispatchService(
	store *device.StateStore,
	policy *schedule.Policy,
	mc messenger.Client,
	logger *logrus.Entry,
	cfg DispatchConfig,
) *DispatchService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &DispatchService{
		store:                store,
		policy:               policy,
		messenger:            mc,
		logger:               logger,
		broadcastChatID:      cfg.BroadcastChatID,
		notifyOnStatusUpdate: cfg.NotifyOnStatusUpdate,
		statusQueryTrigger:   cfg.StatusQueryTrigger,
		location:             cfg.Location,
		now:                  cfg.Now,
	}
}

// HandleAlert processes a triggered-channel report. The alert text is
// rendered with the receipt timestamp and broadcast unless the schedule
// policy suppresses it. Delivery failures are logged, never returned: the
// device gets an acknowledgement either way.
func (s *DispatchService) HandleAlert(channel, state string) {
	receivedAt := s.now().In(s.location)
	text := message.Alert(channel, state, receivedAt)

	logCtx := s.logger.WithFields(logrus.Fields{"channel": channel, "state": state})

	if s.policy.ShouldSuppress(receivedAt) {
		logCtx.Info("Alert suppressed by schedule policy")
		return
	}

	if err := s.messenger.SendMessage(s.broadcastChatID, text); err != nil {
		logCtx.WithError(err).Error("Failed to deliver alert notification")
		return
	}
	logCtx.Info("Alert notification delivered")
}

// HandleStatusUpdate replaces the stored snapshot with the reported one.
// An empty report yields device.ErrEmptySnapshot and leaves the store
// untouched. When configured, the accepted snapshot is also broadcast,
// regardless of the schedule policy.
func (s *DispatchService) HandleStatusUpdate(snapshot device.Snapshot) error {
	if err := s.store.Update(snapshot); err != nil {
		return fmt.Errorf("store status snapshot: %w", err)
	}

	s.logger.WithField("channels", len(snapshot)).Info("Device status snapshot updated")

	if s.notifyOnStatusUpdate {
		text := message.StatusSnapshot(snapshot)
		if err := s.messenger.SendMessage(s.broadcastChatID, text); err != nil {
			s.logger.WithError(err).Error("Failed to deliver status update notification")
		}
	}
	return nil
}

// HandleQuery answers a chat message. Only the exact trigger phrase
// produces a reply (the rendered current snapshot); every other message is
// ignored.
func (s *DispatchService) HandleQuery(text string) (string, bool) {
	if strings.TrimSpace(text) != s.statusQueryTrigger {
		return "", false
	}
	return message.StatusSnapshot(s.store.Current()), true
}
