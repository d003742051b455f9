// Package handlers provides the HTTP and websocket handlers for the station API.
package handlers

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// stream represents one connected listener stream.
type stream struct {
	id     string
	cancel context.CancelFunc
}

// Registry tracks active listener streams so shutdown can terminate them.
// http.Server.Shutdown does not cover hijacked websocket connections.
type Registry struct {
	mu      sync.RWMutex
	streams map[string]*stream
}

// NewRegistry creates a new stream registry.
func NewRegistry() *Registry {
	return &Registry{
		streams: make(map[string]*stream),
	}
}

// Add registers a stream's cancel function and returns the stream ID.
func (r *Registry) Add(cancel context.CancelFunc) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	r.streams[id] = &stream{
		id:     id,
		cancel: cancel,
	}
	return id
}

// Remove unregisters a stream.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.streams, id)
}

// Count returns the number of active streams.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.streams)
}

// CloseAll cancels every active stream and clears the registry.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.streams {
		s.cancel()
	}
	r.streams = make(map[string]*stream)
}
