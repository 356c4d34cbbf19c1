package uptime

import "time"

// TimestampLayout renders UTC instants with millisecond precision,
// e.g. 2024-01-01T00:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Clock reports wall-clock time and elapsed time since process start
type Clock struct {
	startedAt time.Time
	now       func() time.Time
}

// NewClock creates a clock anchored at startedAt and backed by time.Now
func NewClock(startedAt time.Time) *Clock {
	return NewClockWithSource(startedAt, time.Now)
}

// NewClockWithSource creates a clock that reads the current time from now
func NewClockWithSource(startedAt time.Time, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{
		startedAt: startedAt,
		now:       now,
	}
}

// StartedAt returns the process start time
func (c *Clock) StartedAt() time.Time {
	return c.startedAt
}

// Now returns the current time in UTC
func (c *Clock) Now() time.Time {
	return c.now().UTC()
}

// Uptime returns the time elapsed since start. It never goes negative.
func (c *Clock) Uptime() time.Duration {
	// Sub uses the monotonic reading when both sides carry one.
	elapsed := c.now().Sub(c.startedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Seconds returns Uptime as fractional seconds
func (c *Clock) Seconds() float64 {
	return c.Uptime().Seconds()
}

// Timestamp returns the current time formatted with TimestampLayout
func (c *Clock) Timestamp() string {
	return FormatTimestamp(c.now())
}

// FormatTimestamp formats t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
