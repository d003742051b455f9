// Package station tracks shared on-air state.
package station

import "sync"

// State records whether the station is currently on air. It is shared
// between the now-playing resolver, which writes it, and the listener
// simulator, which reads it.
type State struct {
	mu      sync.RWMutex
	playing bool
}

// NewState creates station state. The station is presumed on air until
// a resolution reports otherwise.
func NewState() *State {
	return &State{playing: true}
}

// Playing reports whether the station is currently on air.
func (s *State) Playing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playing
}

// SetPlaying records whether the station is currently on air.
func (s *State) SetPlaying(playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = playing
}
