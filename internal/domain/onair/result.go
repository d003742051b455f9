package onair

import "time"

// Kind identifies which variant a Result is.
type Kind int

const (
	KindSong    Kind = iota // A track is on air
	KindSilence             // The station reports no track
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSong:
		return "song"
	case KindSilence:
		return "silence"
	default:
		return "unknown"
	}
}

// Result is a single now-playing outcome. Exactly two variants exist:
// Song when a track is on air and Silence when the station reports nothing.
type Result interface {
	Kind() Kind

	isResult()
}

// Song is the now-playing outcome when a track is on air.
type Song struct {
	Radio        string    `json:"radio"`        // Station display name
	Interpreters string    `json:"interpreters"` // Artist text as shown by the station
	Title        string    `json:"title"`        // Track title as shown by the station
	StartTime    StartTime `json:"start_time"`   // Wall-clock start in the station zone
	Timestamp    time.Time `json:"timestamp"`    // When the snapshot was taken
}

// Kind returns KindSong.
func (Song) Kind() Kind { return KindSong }

func (Song) isResult() {}

// Silence is the now-playing outcome when no track is on air, either
// because the station is between tracks or because its page could not
// be read.
type Silence struct {
	Radio     string    `json:"radio"`      // Station display name
	IsPlaying bool      `json:"is_playing"` // Always false
	Message   string    `json:"message"`    // Human readable explanation
	Timestamp time.Time `json:"timestamp"`  // When the snapshot was taken
}

// Kind returns KindSilence.
func (Silence) Kind() Kind { return KindSilence }

func (Silence) isResult() {}
