package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPersonnummer(t *testing.T) {
	tests := []struct {
		name string
		pn   string
		want bool
	}{
		{"valid 11 digits", "01011012345", true},
		{"too short", "0101101234", false},
		{"too long", "010110123456", false},
		{"contains letters", "0101101234a", false},
		{"empty", "", false},
		{"with spaces", "01011 12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPersonnummer(tt.pn))
		})
	}
}

func TestAgeFromPersonnummer(t *testing.T) {
	ref := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		pn   string
		want int
	}{
		// year 10 <= 26 -> born 2010
		{"born 2010", "01011012345", 16},
		// year 95 > 26 -> born 1995
		{"born 1995", "01019512345", 31},
		// birthday today counts as reached
		{"birthday today", "01010812345", 18},
		// birthday later this year
		{"birthday not yet reached", "15060812345", 17},
		// boundary: year short equals current year short -> 2000s
		{"boundary year resolves to 2000s", "01012612345", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := AgeFromPersonnummer(tt.pn, ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, age)
		})
	}
}

func TestAgeFromPersonnummer_Invalid(t *testing.T) {
	ref := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		pn   string
	}{
		{"too short", "01011"},
		{"empty", ""},
		{"day out of range", "32011012345"},
		{"month out of range", "01131012345"},
		{"non-numeric", "ab011012345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AgeFromPersonnummer(tt.pn, ref)
			assert.Error(t, err)
		})
	}
}
