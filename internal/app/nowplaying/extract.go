package nowplaying

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/betaradio/nowplaying/internal/domain/onair"
	"github.com/betaradio/nowplaying/internal/infra/browser"
)

// Selectors on the station page. Artist and title live inside the
// player region.
const (
	playerSelector = "div.radio_profil_play"
	artistSelector = playerSelector + " span.interpret"
	titleSelector  = playerSelector + " span.titul"
)

// ExtractOnAir reads the player region of a rendered view. Edge
// whitespace around the artist and title is trimmed away.
//
// A nil candidate with a nil error means the station is definitively
// not playing: the title slot shows a silence phrase, or the artist or
// title is missing. An error means the page could not be read at all.
func ExtractOnAir(view browser.View) (*onair.Candidate, error) {
	if err := view.WaitReady(playerSelector); err != nil {
		return nil, errors.Wrap(err, "player region did not render")
	}

	artist, err := view.Text(artistSelector)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read artist")
	}
	title, err := view.Text(titleSelector)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read title")
	}
	artist = strings.TrimSpace(artist)
	title = strings.TrimSpace(title)

	if onair.IsSilencePhrase(title) {
		return nil, nil
	}
	candidate := onair.Candidate{Interpreters: artist, Title: title}
	if candidate.Incomplete() {
		return nil, nil
	}
	return &candidate, nil
}
