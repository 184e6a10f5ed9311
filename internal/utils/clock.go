package utils

import "time"

// Clock is the time source for derivations that depend on "now". Deadline and
// calendar math goes through Today so the time of day never leaks into
// date-only results.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

func (s SystemClock) Today() time.Time {
	return midnight(time.Now())
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) Today() time.Time {
	return midnight(m.FixedNow)
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
