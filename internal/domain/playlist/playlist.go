// Package playlist provides the station playlist table domain model.
package playlist

import (
	"strings"

	"github.com/betaradio/nowplaying/internal/domain/onair"
)

// Entry is one row scraped from the station playlist table, newest first.
type Entry struct {
	Time   string // Clock cell, expected "HH:MM" or "HH:MM:SS"
	Artist string // Artist cell
	Title  string // Title cell
}

// recentWindow bounds how many of the newest rows may still describe
// the track that is currently on air.
const recentWindow = 5

// ResolveStartTime reconciles an on-air candidate against the playlist
// table and returns the start time of the matching row.
//
// Only the first recentWindow rows are considered, and rows with an
// empty cell are skipped. A row matches when both artist and title are
// equal to the candidate after normalization. The first matching row
// decides the outcome: when its clock cell does not parse, resolution
// fails without falling back to later rows.
func ResolveStartTime(entries []Entry, candidate onair.Candidate) (onair.StartTime, bool) {
	wantArtist := onair.Normalize(candidate.Interpreters)
	wantTitle := onair.Normalize(candidate.Title)
	if wantArtist == "" || wantTitle == "" {
		return onair.StartTime{}, false
	}

	window := entries
	if len(window) > recentWindow {
		window = window[:recentWindow]
	}

	for _, entry := range window {
		artist := onair.Normalize(entry.Artist)
		title := onair.Normalize(entry.Title)
		if strings.TrimSpace(entry.Time) == "" || artist == "" || title == "" {
			continue
		}
		if artist != wantArtist || title != wantTitle {
			continue
		}
		start, err := onair.ParseStartTime(entry.Time)
		if err != nil {
			return onair.StartTime{}, false
		}
		return start, true
	}
	return onair.StartTime{}, false
}
