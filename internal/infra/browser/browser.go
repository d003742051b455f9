// Package browser renders the station page for scraping.
package browser

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

// View is a rendered station page scoped to a single use.
type View interface {
	// WaitReady blocks until an element matching the selector has been
	// rendered, or fails when the context deadline passes first.
	WaitReady(selector string) error

	// Text returns the visible text of the first element matching the
	// selector, or "" when nothing matches.
	Text(selector string) (string, error)

	// Close releases the resources held by the view. The view must not
	// be used afterwards.
	Close()
}

// Renderer loads a page and hands back a scriptable view.
type Renderer interface {
	Render(ctx context.Context, url string) (View, error)
}

// Options applies to every renderer type.
type Options struct {
	UserAgent string
	Timeout   time.Duration
}

// New builds a renderer of the given type. Settings are type specific
// and decoded by the renderer itself.
func New(browserType string, settings map[string]any, opts Options) (Renderer, error) {
	switch browserType {
	case "chromedp", "":
		return NewChrome(settings, opts.UserAgent)
	case "static":
		return NewStatic(opts.Timeout, opts.UserAgent), nil
	default:
		return nil, errors.Newf("unknown browser type: %s", browserType)
	}
}
