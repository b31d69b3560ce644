package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoviePatchApply(t *testing.T) {
	base := Movie{ID: 1, Title: "Parasite", Director: "Bong Joon-ho", Year: 2019}
	testCases := []struct {
		name     string
		patch    MoviePatch
		expected Movie
	}{
		{"empty patch", MoviePatch{}, base},
		{"title only", MoviePatch{Title: "Mother"}, Movie{ID: 1, Title: "Mother", Director: "Bong Joon-ho", Year: 2019}},
		{"year only", MoviePatch{Year: 2009}, Movie{ID: 1, Title: "Parasite", Director: "Bong Joon-ho", Year: 2009}},
		{
			"all fields",
			MoviePatch{Title: "Okja", Director: "Bong", Year: 2017},
			Movie{ID: 1, Title: "Okja", Director: "Bong", Year: 2017},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			movie := base
			tc.patch.Apply(&movie)
			assert.Equal(t, tc.expected, movie)
		})
	}
}

