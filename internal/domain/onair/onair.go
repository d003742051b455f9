// Package onair provides the on-air snapshot domain model.
package onair

import "strings"

// silencePhrases are the fixed texts the station player shows in the
// title slot when no track is on air.
var silencePhrases = []string{
	"nehrá žiadna pesnička",
	"je dočasne nedostupná",
}

// Normalize lower-cases scraped text and collapses internal whitespace
// runs into single spaces, trimming both ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// IsSilencePhrase reports whether a scraped title is one of the texts
// the player shows when no track is on air. Matching runs on the
// normalized title.
func IsSilencePhrase(title string) bool {
	normalized := Normalize(title)
	for _, phrase := range silencePhrases {
		if normalized == phrase {
			return true
		}
	}
	return false
}

// Candidate is the artist/title pair read from the station player before
// it has been reconciled against the playlist table.
type Candidate struct {
	Interpreters string // Raw artist text
	Title        string // Raw track title text
}

// Incomplete reports whether either field is empty after normalization.
// An incomplete candidate cannot identify a track.
func (c Candidate) Incomplete() bool {
	return Normalize(c.Interpreters) == "" || Normalize(c.Title) == ""
}
