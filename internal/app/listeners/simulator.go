// Package listeners simulates the station audience.
package listeners

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/betaradio/nowplaying/internal/app/station"
	"github.com/betaradio/nowplaying/internal/domain/stats"
)

// walkRatio bounds a single step of the walk to a fraction of the band
// width, so the count drifts instead of jumping.
const walkRatio = 0.15

// Simulator produces a bounded random walk of listener counts. The walk
// is shared: every stream that ticks it advances the same count, which
// keeps concurrent subscribers in agreement.
type Simulator struct {
	mu    sync.Mutex
	state *station.State
	clock station.Clock
	loc   *time.Location
	rng   *rand.Rand
	last  int // 0 means the walk has no previous sample
}

// New creates a simulator for a station in the given timezone. The walk
// is seeded from crypto/rand so replicas do not produce identical
// audiences.
func New(state *station.State, loc *time.Location) *Simulator {
	return &Simulator{
		state: state,
		clock: station.RealClock{},
		loc:   loc,
		rng:   rand.New(rand.NewSource(cryptoSeed())),
	}
}

// Tick advances the walk one step and returns the sample to push.
//
// While the station is off air the count is zero and the walk resets,
// so the next on-air sample is drawn fresh from the hour band instead
// of continuing an audience that already left.
func (s *Simulator) Tick() stats.ListenerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	if !s.state.Playing() {
		s.last = 0
		return stats.ListenerStats{Listeners: 0, Timestamp: now}
	}

	// The band follows the station's local hour; the sample timestamp
	// stays UTC.
	band := stats.BandFor(now.In(s.loc).Hour())
	if s.last == 0 {
		s.last = band.Min + s.rng.Intn(band.Width()+1)
	} else {
		maxStep := int(float64(band.Width())*walkRatio) + 2
		delta := s.rng.Intn(2*maxStep+1) - maxStep
		s.last = band.Clamp(s.last + delta)
	}

	return stats.ListenerStats{Listeners: s.last, Timestamp: now}
}

// cryptoSeed derives an RNG seed, falling back to wall time when the
// system entropy source fails.
func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err == nil {
		return int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return time.Now().UnixNano()
}
