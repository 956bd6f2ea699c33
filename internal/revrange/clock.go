package revrange

import "time"

// dateLayout is the YYYY-MM-DD form used for reflog date boundaries.
const dateLayout = "2006-01-02"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func today(c Clock) string {
	return c.Now().Format(dateLayout)
}

func yesterday(c Clock) string {
	return c.Now().AddDate(0, 0, -1).Format(dateLayout)
}
