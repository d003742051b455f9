package station

import "time"

// Clock supplies the current time. The resolver and the listener
// simulator read time through it so tests can pin the moment.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed time.
type MockClock struct {
	MockTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.MockTime
}
