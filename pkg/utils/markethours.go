package utils

import (
	"fmt"
	"time"
)

// ET is the US Eastern time zone used for equity market hours.
var ET *time.Location

func init() {
	var err error
	ET, err = time.LoadLocation("America/New_York")
	if err != nil {
		// Fallback if the tz database is not available: fixed EST,
		// no DST handling.
		ET = time.FixedZone("EST", -5*60*60)
	}
}

// NowET returns the current time in US Eastern time.
func NowET() time.Time {
	return time.Now().In(ET)
}

// MarketOpenTime returns the regular-session open (9:30 AM ET) for a date.
func MarketOpenTime(date time.Time) time.Time {
	d := date.In(ET)
	return time.Date(d.Year(), d.Month(), d.Day(), 9, 30, 0, 0, ET)
}

// MarketCloseTime returns the regular-session close (4:00 PM ET) for a date.
func MarketCloseTime(date time.Time) time.Time {
	d := date.In(ET)
	return time.Date(d.Year(), d.Month(), d.Day(), 16, 0, 0, 0, ET)
}

// usMarketHolidays lists full-day US equity market closures.
var usMarketHolidays = map[string]string{
	"2026-01-01": "New Year's Day",
	"2026-01-19": "Martin Luther King Jr. Day",
	"2026-02-16": "Washington's Birthday",
	"2026-04-03": "Good Friday",
	"2026-05-25": "Memorial Day",
	"2026-06-19": "Juneteenth",
	"2026-07-03": "Independence Day (observed)",
	"2026-09-07": "Labor Day",
	"2026-11-26": "Thanksgiving Day",
	"2026-12-25": "Christmas Day",
	"2025-01-01": "New Year's Day",
	"2025-01-20": "Martin Luther King Jr. Day",
	"2025-02-17": "Washington's Birthday",
	"2025-04-18": "Good Friday",
	"2025-05-26": "Memorial Day",
	"2025-06-19": "Juneteenth",
	"2025-07-04": "Independence Day",
	"2025-09-01": "Labor Day",
	"2025-11-27": "Thanksgiving Day",
	"2025-12-25": "Christmas Day",
}

// IsMarketHoliday reports whether the given date is a full-day closure.
func IsMarketHoliday(t time.Time) bool {
	_, ok := usMarketHolidays[t.In(ET).Format("2006-01-02")]
	return ok
}

// IsTradingDay reports whether the given date is a weekday and not a holiday.
func IsTradingDay(t time.Time) bool {
	t = t.In(ET)
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !IsMarketHoliday(t)
}

// IsMarketOpenAt reports whether the US equity regular session would be
// open at the given time.
func IsMarketOpenAt(t time.Time) bool {
	t = t.In(ET)
	if !IsTradingDay(t) {
		return false
	}
	open := MarketOpenTime(t)
	close := MarketCloseTime(t)
	return !t.Before(open) && t.Before(close)
}

// IsMarketOpen reports whether the US equity market is open right now.
func IsMarketOpen() bool {
	return IsMarketOpenAt(NowET())
}

// MarketStatusAt returns the session label for the given time:
// "open", "pre-market", "after-hours", or "closed".
// Crypto markets have no sessions; callers tag crypto assets "open" always.
func MarketStatusAt(t time.Time) string {
	t = t.In(ET)
	if !IsTradingDay(t) {
		return "closed"
	}
	open := MarketOpenTime(t)
	close := MarketCloseTime(t)
	preOpen := time.Date(t.Year(), t.Month(), t.Day(), 4, 0, 0, 0, ET)
	afterClose := time.Date(t.Year(), t.Month(), t.Day(), 20, 0, 0, 0, ET)

	switch {
	case !t.Before(open) && t.Before(close):
		return "open"
	case !t.Before(preOpen) && t.Before(open):
		return "pre-market"
	case !t.Before(close) && t.Before(afterClose):
		return "after-hours"
	default:
		return "closed"
	}
}

// MarketStatus returns the current session label.
func MarketStatus() string {
	return MarketStatusAt(NowET())
}

// FormatDateTimeET formats a time for display in ET.
func FormatDateTimeET(t time.Time) string {
	return fmt.Sprintf("%s ET", t.In(ET).Format("2006-01-02 15:04:05"))
}
