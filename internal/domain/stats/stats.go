// Package stats provides the listener statistics domain model.
package stats

import "time"

// ListenerStats is one audience sample pushed to stream subscribers.
type ListenerStats struct {
	Listeners int       `json:"listeners"` // Simulated concurrent listener count
	Timestamp time.Time `json:"timestamp"` // When the sample was taken
}

// Band is the inclusive listener range expected for an hour of day.
type Band struct {
	Min int
	Max int
}

// Width returns the size of the band.
func (b Band) Width() int {
	return b.Max - b.Min
}

// Clamp forces a count into the band.
func (b Band) Clamp(n int) int {
	if n < b.Min {
		return b.Min
	}
	if n > b.Max {
		return b.Max
	}
	return n
}

// BandFor returns the audience band for an hour of day. Hours outside
// 0-23 fall back to a neutral daytime band.
func BandFor(hour int) Band {
	switch {
	case hour >= 0 && hour <= 5:
		return Band{Min: 10, Max: 40}
	case hour >= 6 && hour <= 8:
		return Band{Min: 100, Max: 150}
	case hour >= 9 && hour <= 11:
		return Band{Min: 80, Max: 130}
	case hour >= 12 && hour <= 14:
		return Band{Min: 70, Max: 110}
	case hour >= 15 && hour <= 18:
		return Band{Min: 120, Max: 180}
	case hour >= 19 && hour <= 22:
		return Band{Min: 50, Max: 90}
	case hour == 23:
		return Band{Min: 30, Max: 60}
	default:
		return Band{Min: 50, Max: 80}
	}
}
