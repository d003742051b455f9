package nowplaying

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betaradio/nowplaying/internal/domain/onair"
)

type fakeView struct {
	waitErr error
	texts   map[string]string
	textErr error
	closed  bool
}

func (v *fakeView) WaitReady(string) error { return v.waitErr }

func (v *fakeView) Text(selector string) (string, error) {
	if v.textErr != nil {
		return "", v.textErr
	}
	return v.texts[selector], nil
}

func (v *fakeView) Close() { v.closed = true }

func playingView(artist, title string) *fakeView {
	return &fakeView{texts: map[string]string{
		artistSelector: artist,
		titleSelector:  title,
	}}
}

func TestExtractOnAir(t *testing.T) {
	tests := []struct {
		name      string
		view      *fakeView
		candidate *onair.Candidate
		wantErr   bool
	}{
		{
			name:      "track on air",
			view:      playingView("IMT Smile", "Hviezdne nebo"),
			candidate: &onair.Candidate{Interpreters: "IMT Smile", Title: "Hviezdne nebo"},
		},
		{
			name:      "edge whitespace is trimmed",
			view:      playingView("  IMT Smile ", "\nHviezdne nebo\t"),
			candidate: &onair.Candidate{Interpreters: "IMT Smile", Title: "Hviezdne nebo"},
		},
		{
			name: "silence phrase in title slot",
			view: playingView("Rádio Beta", "Nehrá žiadna pesnička"),
		},
		{
			name: "offline phrase in title slot",
			view: playingView("Rádio Beta", "je  dočasne   nedostupná"),
		},
		{
			name: "artist element missing",
			view: &fakeView{texts: map[string]string{
				titleSelector: "Hviezdne nebo",
			}},
		},
		{
			name:      "title is whitespace only",
			view:      playingView("IMT Smile", "  \t "),
			candidate: nil,
		},
		{
			name:    "player region never renders",
			view:    &fakeView{waitErr: errors.New("deadline exceeded")},
			wantErr: true,
		},
		{
			name:    "reading the page fails",
			view:    &fakeView{textErr: errors.New("target closed")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, err := ExtractOnAir(tt.view)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.candidate, candidate)
		})
	}
}
