package scheduler

import (
	"time"

	"device_alert_gateway/internal/infra/holiday"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// HolidayRefreshScheduler warms the holiday calendar cache once a day so
// the first alert of the morning does not pay the fetch latency. The cache
// still refreshes lazily on demand; this job only front-loads it.
type HolidayRefreshScheduler struct {
	cronEngine *cron.Cron
	cache      *holiday.Cache
	location   *time.Location
	logger     *logrus.Entry
	cronSpec   string
}

func NewHolidayRefreshScheduler(
	cache *holiday.Cache,
	location *time.Location,
	logger *logrus.Entry,
	cronSpec string, // e.g., "0 6 * * *" (06:00 daily)
) *HolidayRefreshScheduler {
	return &HolidayRefreshScheduler{
		cronEngine: cron.New(cron.WithLocation(location)),
		cache:      cache,
		location:   location,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *HolidayRefreshScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpec, s.warmUp)
	if err != nil {
		return err
	}

	s.cronEngine.Start()
	s.logger.Info("Holiday refresh scheduler started.")
	return nil
}

// warmUp triggers the cache's lazy refresh for the current local day.
func (s *HolidayRefreshScheduler) warmUp() {
	s.logger.Info("Cron job triggered for holiday calendar warm-up.")
	today := time.Now().In(s.location)
	set := s.cache.Holidays(today)
	s.logger.WithField("holidays", len(set)).Info("Holiday calendar warm-up finished.")
}

func (s *HolidayRefreshScheduler) Stop() {
	s.logger.Info("Stopping holiday refresh scheduler...")
	ctx := s.cronEngine.Stop() // Waits for a running job to finish.
	<-ctx.Done()
	s.logger.Info("Holiday refresh scheduler gracefully stopped.")
}
