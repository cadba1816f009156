// Package chrono tracks ship time on the simplified shipboard calendar:
// twelve 30-day months, 360-day years, no leap rules. Deep-space crews gave
// up on Earth calendars a long time ago.
package chrono

import "fmt"

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	daysPerMonth   = 30
	daysPerYear    = 360
)

// LaunchEpoch is the default chronometer start: 01-01-2276 00:00.
var LaunchEpoch = Stamp{Year: 2276, Month: 1, Day: 1}

// Stamp is a broken-out calendar moment.
type Stamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// Chronometer counts total minutes since calendar zero.
type Chronometer struct {
	totalMinutes int64
}

// New starts a chronometer at the given calendar stamp.
func New(start Stamp) *Chronometer {
	return &Chronometer{totalMinutes: start.Minutes()}
}

// FromMinutes restores a chronometer from a persisted minute count.
func FromMinutes(minutes int64) *Chronometer {
	return &Chronometer{totalMinutes: minutes}
}

// Minutes converts a stamp to total minutes since calendar zero.
func (s Stamp) Minutes() int64 {
	days := int64(s.Year)*daysPerYear + int64(s.Month-1)*daysPerMonth + int64(s.Day-1)
	return days*minutesPerDay + int64(s.Hour)*minutesPerHour + int64(s.Minute)
}

// StampAt converts total minutes back to a calendar stamp.
func StampAt(totalMinutes int64) Stamp {
	days := totalMinutes / minutesPerDay
	rem := totalMinutes % minutesPerDay

	year := days / daysPerYear
	dayOfYear := days % daysPerYear

	return Stamp{
		Year:   int(year),
		Month:  int(dayOfYear/daysPerMonth) + 1,
		Day:    int(dayOfYear%daysPerMonth) + 1,
		Hour:   int(rem / minutesPerHour),
		Minute: int(rem % minutesPerHour),
	}
}

// Advance moves ship time forward by the given minutes.
func (c *Chronometer) Advance(minutes int64) {
	c.totalMinutes += minutes
}

// TotalMinutes returns the raw counter for persistence.
func (c *Chronometer) TotalMinutes() int64 {
	return c.totalMinutes
}

// Stamp returns the current calendar moment.
func (c *Chronometer) Stamp() Stamp {
	return StampAt(c.totalMinutes)
}

// Format renders the chronometer readout, e.g. "01-06-2276  15:37".
func (c *Chronometer) Format() string {
	s := c.Stamp()
	return fmt.Sprintf("%02d-%02d-%04d  %02d:%02d", s.Day, s.Month, s.Year, s.Hour, s.Minute)
}
