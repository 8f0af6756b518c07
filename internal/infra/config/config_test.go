package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("BROADCAST_CHAT_ID", "-100200300")
}

// TestLoadDefaults verifies the optional fields fall back sensibly.
func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "test-token", cfg.TelegramToken)
	require.Equal(t, int64(-100200300), cfg.BroadcastChatID)
	require.False(t, cfg.NotifyOnStatusUpdate)
	require.Equal(t, "Asia/Taipei", cfg.Timezone)
	require.NotNil(t, cfg.Location)
	require.Equal(t, "查詢目前狀態", cfg.StatusQueryTrigger)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "0 6 * * *", cfg.CronSpecHolidayRefresh)
}

// TestLoadMissingRequired verifies the two required variables are enforced.
func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("BROADCAST_CHAT_ID", "")

	_, err := Load()
	require.ErrorContains(t, err, "TELEGRAM_TOKEN")

	t.Setenv("TELEGRAM_TOKEN", "test-token")
	_, err = Load()
	require.ErrorContains(t, err, "BROADCAST_CHAT_ID")
}

// TestLoadInvalidValues verifies malformed optional values are rejected
// rather than silently defaulted.
func TestLoadInvalidValues(t *testing.T) {
	setRequired(t)

	t.Setenv("BROADCAST_CHAT_ID", "not-a-number")
	_, err := Load()
	require.ErrorContains(t, err, "BROADCAST_CHAT_ID")

	setRequired(t)
	t.Setenv("NOTIFY_ON_STATUS_UPDATE", "maybe")
	_, err = Load()
	require.ErrorContains(t, err, "NOTIFY_ON_STATUS_UPDATE")

	t.Setenv("NOTIFY_ON_STATUS_UPDATE", "true")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err = Load()
	require.ErrorContains(t, err, "TIMEZONE")

	t.Setenv("TIMEZONE", "Asia/Taipei")
	t.Setenv("HOLIDAY_SOURCE_URL_TEMPLATE", "https://example.com/calendar.json")
	_, err = Load()
	require.ErrorContains(t, err, "HOLIDAY_SOURCE_URL_TEMPLATE")
}
