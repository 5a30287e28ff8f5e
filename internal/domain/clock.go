package domain

import "time"

// Clock supplies the current time. It is injected wherever calendar-day
// logic runs so tests can pin the day.
type Clock func() time.Time
