package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the gateway.
type AppConfig struct {
	TelegramToken            string
	BroadcastChatID          int64 // fixed recipient of device notifications
	NotifyOnStatusUpdate     bool  // broadcast every accepted status report
	Timezone                 string
	Location                 *time.Location
	HolidaySourceURLTemplate string // printf template with one %d year verb
	StatusQueryTrigger       string
	ListenAddr               string
	LogLevel                 string
	Environment              string
	CronSpecHolidayRefresh   string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("BROADCAST_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("BROADCAST_CHAT_ID is not set")
	}
	cfg.BroadcastChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BROADCAST_CHAT_ID: %w", err)
	}

	if notifyStr := os.Getenv("NOTIFY_ON_STATUS_UPDATE"); notifyStr != "" {
		cfg.NotifyOnStatusUpdate, err = strconv.ParseBool(notifyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid NOTIFY_ON_STATUS_UPDATE: %w", err)
		}
	}

	cfg.Timezone = os.Getenv("TIMEZONE")
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Taipei"
	}
	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	cfg.HolidaySourceURLTemplate = os.Getenv("HOLIDAY_SOURCE_URL_TEMPLATE")
	if cfg.HolidaySourceURLTemplate == "" {
		cfg.HolidaySourceURLTemplate = "https://cdn.jsdelivr.net/gh/ruyut/TaiwanCalendar/data/%d.json"
	}
	if strings.Count(cfg.HolidaySourceURLTemplate, "%d") != 1 {
		return nil, fmt.Errorf("HOLIDAY_SOURCE_URL_TEMPLATE must contain exactly one %%d year placeholder")
	}

	cfg.StatusQueryTrigger = os.Getenv("STATUS_QUERY_TRIGGER")
	if cfg.StatusQueryTrigger == "" {
		cfg.StatusQueryTrigger = "查詢目前狀態"
	}

	cfg.ListenAddr = os.Getenv("LISTEN_ADDR")
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecHolidayRefresh = os.Getenv("CRON_SPEC_HOLIDAY_REFRESH")
	if cfg.CronSpecHolidayRefresh == "" {
		cfg.CronSpecHolidayRefresh = "0 6 * * *" // Default: 06:00 daily
	}

	return cfg, nil
}
