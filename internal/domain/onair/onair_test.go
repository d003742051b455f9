package onair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "IMT Smile",
			expected: "imt smile",
		},
		{
			name:     "collapses inner whitespace",
			input:    "Hviezdne \t nebo",
			expected: "hviezdne nebo",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  Opri sa o ma \n",
			expected: "opri sa o ma",
		},
		{
			name:     "newlines inside text",
			input:    "Elán\n-\nKočka",
			expected: "elán - kočka",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "already normalized",
			input:    "para - svetlo",
			expected: "para - svetlo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"IMT  Smile", "  para ", "Hex\t\tNikdy nebolo lepšie"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestIsSilencePhrase(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected bool
	}{
		{
			name:     "no song phrase",
			title:    "nehrá žiadna pesnička",
			expected: true,
		},
		{
			name:     "unavailable phrase",
			title:    "je dočasne nedostupná",
			expected: true,
		},
		{
			name:     "mixed case and spacing",
			title:    " NEHRÁ   ŽIADNA   PESNIČKA ",
			expected: true,
		},
		{
			name:     "phrase inside a longer title",
			title:    "Momentálne nehrá žiadna pesnička",
			expected: false,
		},
		{
			name:     "regular track title",
			title:    "Hviezdne nebo",
			expected: false,
		},
		{
			name:     "empty title",
			title:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSilencePhrase(tt.title))
		})
	}
}

func TestCandidate_Incomplete(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		expected  bool
	}{
		{
			name:      "both fields present",
			candidate: Candidate{Interpreters: "Elán", Title: "Kočka"},
			expected:  false,
		},
		{
			name:      "missing artist",
			candidate: Candidate{Interpreters: "", Title: "Kočka"},
			expected:  true,
		},
		{
			name:      "missing title",
			candidate: Candidate{Interpreters: "Elán", Title: ""},
			expected:  true,
		},
		{
			name:      "whitespace only title",
			candidate: Candidate{Interpreters: "Elán", Title: "   \t"},
			expected:  true,
		},
		{
			name:      "both empty",
			candidate: Candidate{},
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.candidate.Incomplete())
		})
	}
}
