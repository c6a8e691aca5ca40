package sonarr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupResult() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"title":     "Breaking Bad",
			"titleSlug": "breaking-bad",
			"tvdbId":    81189,
			"images": []map[string]interface{}{
				{"coverType": "poster", "url": "/poster.jpg"},
			},
			"seasons": []map[string]interface{}{
				{"seasonNumber": 1, "monitored": true},
				{"seasonNumber": 2, "monitored": false},
				{"seasonNumber": 3, "monitored": true},
			},
		},
		{
			"title":     "Breaking Bad But Wrong",
			"titleSlug": "breaking-bad-but-wrong",
			"tvdbId":    99999,
		},
	}
}

func TestLookupSeriesByTVDBID(t *testing.T) {
	var byIDTerm, byTermTerm string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/series/lookup", r.URL.Path)
		term := r.URL.Query().Get("term")
		if byIDTerm == "" {
			byIDTerm = term
		} else {
			byTermTerm = term
		}
		json.NewEncoder(w).Encode(lookupResult())
	})

	ctx := context.Background()
	_, err := client.LookupSeriesByTVDBID(ctx, 12345)
	require.NoError(t, err)
	_, err = client.LookupSeries(ctx, "tvdb:12345")
	require.NoError(t, err)

	// The by-id variant is sugar; both must transmit the identical term.
	assert.Equal(t, "tvdb:12345", byIDTerm)
	assert.Equal(t, byTermTerm, byIDTerm)
}

func TestBuildAddSeriesPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/series/lookup", r.URL.Path)
		assert.Equal(t, "tvdb:81189", r.URL.Query().Get("term"))
		json.NewEncoder(w).Encode(lookupResult())
	})

	opts := NewAddSeriesOptions(81189, 6, "/tv/")
	opts.SearchForMissingEpisodes = true

	payload, err := client.BuildAddSeriesPayload(context.Background(), opts)
	require.NoError(t, err)

	// First lookup result wins.
	assert.Equal(t, "Breaking Bad", payload.Title)
	assert.Equal(t, "breaking-bad", payload.TitleSlug)
	assert.Equal(t, 81189, payload.TVDBID)
	assert.Equal(t, 6, payload.QualityProfileID)
	assert.True(t, payload.SeasonFolder)
	assert.True(t, payload.Monitored)
	require.Len(t, payload.Images, 1)

	// Path is root dir + title with no separator normalization.
	assert.Equal(t, "/tv/Breaking Bad", payload.Path)

	// Seasons keep their original monitored flags when the series is monitored.
	require.Len(t, payload.Seasons, 3)
	assert.True(t, payload.Seasons[0].Monitored)
	assert.False(t, payload.Seasons[1].Monitored)

	assert.Equal(t, AddOptions{SearchForMissingEpisodes: true}, payload.AddOptions)
}

func TestBuildAddSeriesPayloadUnmonitored(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(lookupResult())
	})

	opts := NewAddSeriesOptions(81189, 6, "/tv/")
	opts.Monitored = false

	payload, err := client.BuildAddSeriesPayload(context.Background(), opts)
	require.NoError(t, err)

	assert.False(t, payload.Monitored)
	require.Len(t, payload.Seasons, 3)
	for _, season := range payload.Seasons {
		assert.False(t, season.Monitored, "season %d should be unmonitored", season.SeasonNumber)
	}
}

func TestBuildAddSeriesPayloadNoMatch(t *testing.T) {
	var requests atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		json.NewEncoder(w).Encode([]map[string]interface{}{})
	})

	_, err := client.BuildAddSeriesPayload(context.Background(), NewAddSeriesOptions(404404, 6, "/tv/"))
	require.Error(t, err)

	var notFoundErr *NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "tvdb:404404", notFoundErr.Term)

	// Only the lookup itself went out.
	assert.Equal(t, int32(1), requests.Load())
}

func TestAddSeries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/series/lookup":
			json.NewEncoder(w).Encode(lookupResult())
		case "/api/series":
			assert.Equal(t, http.MethodPost, r.Method)

			var payload AddSeriesRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Breaking Bad", payload.Title)
			assert.Equal(t, "/tv/Breaking Bad", payload.Path)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":    12,
				"title": payload.Title,
			})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	series, err := client.AddSeries(context.Background(), NewAddSeriesOptions(81189, 6, "/tv/"))
	require.NoError(t, err)
	assert.Equal(t, 12, series.ID)
}

func TestDeleteSeries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/series/3", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("deleteFiles"))
		json.NewEncoder(w).Encode(map[string]interface{}{})
	})

	err := client.DeleteSeries(context.Background(), 3, true)
	require.NoError(t, err)
}

func TestUpdateSeries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/series", r.URL.Path)

		var record Series
		require.NoError(t, json.NewDecoder(r.Body).Decode(&record))
		assert.Equal(t, 7, record.ID)
		assert.False(t, record.Monitored)

		json.NewEncoder(w).Encode(record)
	})

	updated, err := client.UpdateSeries(context.Background(), &Series{
		ID:        7,
		Title:     "Firefly",
		Monitored: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Firefly", updated.Title)
}
