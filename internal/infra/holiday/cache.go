package holiday

import (
	"context"
	"sync"
	"time"

	"device_alert_gateway/internal/domain/schedule"

	"github.com/sirupsen/logrus"
)

// defaultFetchTimeout bounds a single calendar fetch so a slow upstream
// never stalls alert handling.
const defaultFetchTimeout = 5 * time.Second

// Cache memoizes the yearly holiday set, refreshing it at most once per
// local calendar day. A failed refresh keeps serving the previous set; the
// caller is never blocked or failed by the calendar upstream. Implements
// schedule.HolidayProvider. Safe for concurrent use.
type Cache struct {
	mu           sync.Mutex
	source       Source
	fetchTimeout time.Duration
	logger       *logrus.Entry

	fetchedFor string // local date the current set was fetched on, schedule.DateKey
	dates      map[string]struct{}
}

func NewCache(source Source, logger *logrus.Entry) *Cache {
	return &Cache{
		source:       source,
		fetchTimeout: defaultFetchTimeout,
		logger:       logger,
		dates:        map[string]struct{}{},
	}
}

// Holidays returns the holiday set for today's year. The first call on a
// new local day fetches from the source; later calls that day hit the
// cache. On fetch failure the stale set (possibly empty) is returned and
// the failure only logged, so the date stamp is not advanced and a later
// call the same day may retry.
func (c *Cache) Holidays(today time.Time) map[string]struct{} {
	day := today.Format(schedule.DateKey)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetchedFor == day {
		return c.dates
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	dates, err := c.source.FetchYear(ctx, today.Year())
	if err != nil {
		c.logger.WithError(err).WithField("year", today.Year()).
			Warn("Holiday calendar refresh failed, serving previous set")
		return c.dates
	}

	c.fetchedFor = day
	c.dates = dates
	c.logger.WithFields(logrus.Fields{"year": today.Year(), "holidays": len(dates)}).
		Info("Holiday calendar refreshed")
	return c.dates
}
