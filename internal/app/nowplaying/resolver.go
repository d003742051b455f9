// Package nowplaying reconciles the station player with the playlist
// table to decide what is currently on air.
package nowplaying

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	zlog "github.com/rs/zerolog/log"

	"github.com/betaradio/nowplaying/internal/app/station"
	"github.com/betaradio/nowplaying/internal/domain/onair"
	"github.com/betaradio/nowplaying/internal/domain/playlist"
	"github.com/betaradio/nowplaying/internal/infra/browser"
)

// Config carries the station identity and scrape targets for a resolver.
type Config struct {
	RadioName             string         // Station display name in responses
	PageURL               string         // Station page with the live player
	Location              *time.Location // Station timezone
	RenderTimeout         time.Duration  // Budget for rendering the page
	NothingPlayingMessage string         // Message when no track is on air
	UnavailableMessage    string         // Message when the page cannot be read
}

// Resolver produces now-playing snapshots on demand.
type Resolver struct {
	config   Config
	renderer browser.Renderer
	fetcher  PlaylistFetcher
	state    *station.State
	clock    station.Clock
}

// New creates a resolver. Every resolution renders the station page
// fresh, so the result always reflects the live player.
func New(config Config, renderer browser.Renderer, fetcher PlaylistFetcher, state *station.State) *Resolver {
	return &Resolver{
		config:   config,
		renderer: renderer,
		fetcher:  fetcher,
		state:    state,
		clock:    station.RealClock{},
	}
}

// Resolve produces the current now-playing snapshot and records the
// on-air flag for the listener simulator.
//
// The rendered view is closed before the playlist fetch starts; the
// browser session is never held across downstream work.
func (r *Resolver) Resolve(ctx context.Context) onair.Result {
	timer := prometheus.NewTimer(resolveDuration)
	defer timer.ObserveDuration()

	now := r.clock.Now().UTC()
	candidate, err := r.extract(ctx)

	if err != nil {
		zlog.Warn().Msgf("station page unavailable: radio=%s err=%v", r.config.RadioName, err)
		r.state.SetPlaying(false)
		resolutionsTotal.WithLabelValues(outcomeUnavailable).Inc()
		return onair.Silence{
			Radio:     r.config.RadioName,
			IsPlaying: false,
			Message:   r.config.UnavailableMessage,
			Timestamp: now,
		}
	}

	if candidate == nil {
		zlog.Info().Msgf("resolved: radio=%s outcome=%s", r.config.RadioName, onair.KindSilence)
		r.state.SetPlaying(false)
		resolutionsTotal.WithLabelValues(onair.KindSilence.String()).Inc()
		return onair.Silence{
			Radio:     r.config.RadioName,
			IsPlaying: false,
			Message:   r.config.NothingPlayingMessage,
			Timestamp: now,
		}
	}

	start := r.resolveStart(ctx, *candidate)

	zlog.Info().Msgf("resolved: radio=%s outcome=%s interpreters=%s title=%s start_time=%s",
		r.config.RadioName, onair.KindSong, candidate.Interpreters, candidate.Title, start)
	r.state.SetPlaying(true)
	resolutionsTotal.WithLabelValues(onair.KindSong.String()).Inc()
	return onair.Song{
		Radio:        r.config.RadioName,
		Interpreters: candidate.Interpreters,
		Title:        candidate.Title,
		StartTime:    start,
		Timestamp:    now,
	}
}

// extract renders the station page and reads the player region. The
// view lives only for the duration of this call.
func (r *Resolver) extract(ctx context.Context) (*onair.Candidate, error) {
	renderCtx, cancel := context.WithTimeout(ctx, r.config.RenderTimeout)
	defer cancel()

	view, err := r.renderer.Render(renderCtx, r.config.PageURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render station page")
	}
	defer view.Close()

	return ExtractOnAir(view)
}

// resolveStart looks the candidate up in the playlist table, falling
// back to the current station-local minute when no row confirms it.
func (r *Resolver) resolveStart(ctx context.Context, candidate onair.Candidate) onair.StartTime {
	entries, err := r.fetcher.FetchPlaylist(ctx)
	if err != nil {
		zlog.Warn().Msgf("playlist fetch failed: radio=%s err=%v", r.config.RadioName, err)
		entries = nil
	}

	if start, ok := playlist.ResolveStartTime(entries, candidate); ok {
		return start
	}

	playlistFallbacks.Inc()
	zlog.Warn().Msgf("no playlist row confirmed the track, using the current minute: interpreters=%s title=%s",
		candidate.Interpreters, candidate.Title)
	return onair.StartTimeOf(r.clock.Now().In(r.config.Location))
}
