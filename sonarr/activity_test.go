package sonarr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteQueueItem(t *testing.T) {
	var gotMethod, gotPath string
	var gotQuery url.Values
	var gotBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]interface{}{})
	})

	err := client.DeleteQueueItem(context.Background(), 7, false)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/queue/", gotPath)
	assert.Equal(t, "7", gotQuery.Get("id"))
	assert.Equal(t, "false", gotQuery.Get("blacklist"))
	assert.Empty(t, gotBody)
}

func TestGetQueue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/queue", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 7, "title": "Some.Show.S01E01.720p", "status": "Downloading"},
		})
	})

	queue, err := client.GetQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "Downloading", queue[0].Status)
}

func TestGetHistoryDefaults(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/history", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"page":         1,
			"pageSize":     10,
			"totalRecords": 0,
			"records":      []map[string]interface{}{},
		})
	})

	_, err := client.GetHistory(context.Background(), "date", nil)
	require.NoError(t, err)

	assert.Equal(t, "date", gotQuery.Get("sortKey"))
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "10", gotQuery.Get("pageSize"))
	assert.Equal(t, "desc", gotQuery.Get("sortDir"))
	assert.False(t, gotQuery.Has("episodeId"))
}

func TestGetHistoryWithOptions(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"page":         3,
			"pageSize":     25,
			"totalRecords": 120,
			"records": []map[string]interface{}{
				{"id": 1, "eventType": "grabbed", "sourceTitle": "Some.Show.S01E01"},
			},
		})
	})

	page, err := client.GetHistory(context.Background(), "series.title", &HistoryOptions{
		Page:      3,
		PageSize:  25,
		SortDir:   SortAscending,
		EpisodeID: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, "3", gotQuery.Get("page"))
	assert.Equal(t, "25", gotQuery.Get("pageSize"))
	assert.Equal(t, "asc", gotQuery.Get("sortDir"))
	assert.Equal(t, "42", gotQuery.Get("episodeId"))
	assert.Equal(t, 120, page.TotalRecords)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "grabbed", page.Records[0].EventType)
}

func TestGetWantedMissingDefaults(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wanted/missing", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"page":         1,
			"pageSize":     10,
			"totalRecords": 0,
			"records":      []map[string]interface{}{},
		})
	})

	_, err := client.GetWantedMissing(context.Background(), "airDateUtc", nil)
	require.NoError(t, err)

	assert.Equal(t, "airDateUtc", gotQuery.Get("sortKey"))
	// Wanted sorts ascending by default, unlike history.
	assert.Equal(t, "asc", gotQuery.Get("sortDir"))
}
