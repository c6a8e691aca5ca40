package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/gosonarr/sonarr"
)

func testSeries() []sonarr.Series {
	return []sonarr.Series{
		{
			Title:     "Breaking Bad",
			Status:    "ended",
			Network:   "AMC",
			Year:      2008,
			Monitored: true,
			Seasons: []sonarr.Season{
				{SeasonNumber: 1, Monitored: true},
				{SeasonNumber: 2, Monitored: true},
			},
			Added: time.Now().AddDate(0, 0, -100),
		},
		{
			Title:     "Firefly",
			Status:    "ended",
			Network:   "FOX",
			Year:      2002,
			Monitored: false,
			Seasons: []sonarr.Season{
				{SeasonNumber: 1, Monitored: false},
			},
			Added: time.Now().AddDate(0, 0, -5),
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple field", expression: "Monitored"},
		{name: "comparison", expression: "Year > 2005"},
		{name: "combined", expression: `Monitored && Network == "AMC"`},
		{name: "helper function", expression: "Added < daysAgo(30)"},
		{name: "empty expression", expression: "", wantErr: true},
		{name: "unbalanced parens", expression: "(Monitored && ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)

				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	series := testSeries()

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{
			name:       "monitored only",
			expression: "Monitored",
			want:       []string{"Breaking Bad"},
		},
		{
			name:       "by network",
			expression: `Network == "FOX"`,
			want:       []string{"Firefly"},
		},
		{
			name:       "by season count",
			expression: "SeasonCount > 1",
			want:       []string{"Breaking Bad"},
		},
		{
			name:       "added recently",
			expression: "Added > daysAgo(30)",
			want:       []string{"Firefly"},
		},
		{
			name:       "no matches",
			expression: "Year > 2020",
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched := Apply(f, series)
			var titles []string
			for _, s := range matched {
				titles = append(titles, s.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}
