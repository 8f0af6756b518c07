package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"device_alert_gateway/internal/app"
	"device_alert_gateway/internal/domain/device"
	"device_alert_gateway/internal/domain/schedule"
	"device_alert_gateway/internal/infra/config"
	"device_alert_gateway/internal/infra/holiday"
	"device_alert_gateway/internal/infra/logger"
	"device_alert_gateway/internal/infra/scheduler"
	"device_alert_gateway/internal/infra/telegram"
	"device_alert_gateway/internal/infra/web"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Device Alert Gateway starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.Get().WithField("component", "main")
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Timezone: %s, Broadcast chat: %d",
		cfg.LogLevel, cfg.Environment, cfg.Timezone, cfg.BroadcastChatID)

	// Holiday calendar cache and schedule policy.
	holidaySource := holiday.NewHTTPSource(cfg.HolidaySourceURLTemplate)
	holidayCache := holiday.NewCache(holidaySource, logger.Get().WithField("component", "holiday_cache"))
	policy := schedule.NewPolicy(holidayCache, cfg.Location)
	log.Info("Schedule policy initialized.")

	// Last-known device state.
	stateStore := device.NewStateStore()
	log.Info("Device state store initialized.")

	// Telegram bot.
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Get().WithField("component", "telebot").WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithField("sender_id", c.Sender().ID).WithField("chat_id", c.Chat().ID)
			}
			entry.Error("Telegram handler error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.WithError(err).Fatal("Could not create Telegram bot")
	}

	// Dispatch engine.
	dispatchService := app.NewDispatchService(
		stateStore,
		policy,
		telegram.NewTelebotAdapter(bot),
		logger.Get().WithField("component", "dispatch"),
		app.DispatchConfig{
			BroadcastChatID:      cfg.BroadcastChatID,
			NotifyOnStatusUpdate: cfg.NotifyOnStatusUpdate,
			StatusQueryTrigger:   cfg.StatusQueryTrigger,
			Location:             cfg.Location,
		},
	)
	log.Info("Dispatch service initialized.")

	telegram.RegisterQueryHandlers(bot, dispatchService, logger.Get().WithField("component", "telegram"))
	log.Info("Status query handlers registered.")

	// Daily calendar warm-up.
	refreshScheduler := scheduler.NewHolidayRefreshScheduler(
		holidayCache,
		cfg.Location,
		logger.Get().WithField("component", "scheduler"),
		cfg.CronSpecHolidayRefresh,
	)
	if err := refreshScheduler.Start(); err != nil {
		log.WithError(err).Fatal("Could not start holiday refresh scheduler")
	}

	// Device-facing HTTP server.
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: web.NewRouter(dispatchService, logger.Get().WithField("component", "web")),
	}
	go func() {
		log.Infof("HTTP server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	go bot.Start()
	log.Info("Application setup complete. Bot and HTTP server are running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown error")
	}

	refreshScheduler.Stop()
	bot.Stop()
	log.Info("Application shut down gracefully.")
}
