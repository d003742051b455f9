package nowplaying

import (
	"context"

	"github.com/betaradio/nowplaying/internal/domain/playlist"
)

// PlaylistFetcher retrieves the recent playlist table rows, newest first.
type PlaylistFetcher interface {
	FetchPlaylist(ctx context.Context) ([]playlist.Entry, error)
}
