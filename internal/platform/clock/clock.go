package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local time. Day attribution throughout the app
// follows the local calendar, so instants are never normalized to UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
