package schedule

import "time"

// DateKey is the canonical key for a calendar date in holiday sets.
const DateKey = "2006-01-02"

// HolidayProvider supplies the set of official non-working dates relevant
// for the given local day, keyed by DateKey. Implementations may refresh
// lazily when called; the policy itself never mutates anything.
type HolidayProvider interface {
	Holidays(today time.Time) map[string]struct{}
}

// Policy decides whether alert notifications should be suppressed at a
// given instant: weekends and official holidays are quiet days.
type Policy struct {
	holidays HolidayProvider
	location *time.Location
}

func NewPolicy(holidays HolidayProvider, location *time.Location) *Policy {
	if location == nil {
		location = time.Local
	}
	return &Policy{
		holidays: holidays,
		location: location,
	}
}

// ShouldSuppress reports whether an alert received at now falls on a
// weekend or an official holiday in the configured location.
func (p *Policy) ShouldSuppress(now time.Time) bool {
	local := now.In(p.location)

	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}

	_, holiday := p.holidays.Holidays(local)[local.Format(DateKey)]
	return holiday
}
