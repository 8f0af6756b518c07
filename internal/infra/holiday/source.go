package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"device_alert_gateway/internal/domain/schedule"
)

// Source fetches the official holiday dates for one calendar year, keyed by
// schedule.DateKey.
type Source interface {
	FetchYear(ctx context.Context, year int) (map[string]struct{}, error)
}

// calendarEntry is one record of the yearly calendar resource. Only entries
// flagged as holidays contribute to the set.
type calendarEntry struct {
	Date        string `json:"date"` // YYYYMMDD
	Week        string `json:"week"`
	IsHoliday   bool   `json:"isHoliday"`
	Description string `json:"description"`
}

const entryDateLayout = "20060102"

// HTTPSource retrieves the yearly calendar from an HTTP JSON resource. The
// URL template must contain a single %d verb for the year.
type HTTPSource struct {
	urlTemplate string
	client      *http.Client
}

func NewHTTPSource(urlTemplate string) *HTTPSource {
	return &HTTPSource{
		urlTemplate: urlTemplate,
		client:      &http.Client{},
	}
}

// FetchYear downloads and parses the calendar for the given year.
func (s *HTTPSource) FetchYear(ctx context.Context, year int) (map[string]struct{}, error) {
	url := fmt.Sprintf(s.urlTemplate, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build calendar request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar for %d: %w", year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch calendar for %d: unexpected status %d", year, resp.StatusCode)
	}

	var entries []calendarEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode calendar for %d: %w", year, err)
	}

	dates := make(map[string]struct{})
	for _, entry := range entries {
		if !entry.IsHoliday {
			continue
		}
		day, err := time.Parse(entryDateLayout, entry.Date)
		if err != nil {
			return nil, fmt.Errorf("decode calendar for %d: bad date %q: %w", year, entry.Date, err)
		}
		dates[day.Format(schedule.DateKey)] = struct{}{}
	}

	return dates, nil
}
