package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// HistoryOptions are optional paging parameters for GetHistory. Zero values
// fall back to the server defaults: page 1, page size 10, descending sort.
type HistoryOptions struct {
	Page      int
	PageSize  int
	SortDir   SortDirection
	EpisodeID int
}

// GetHistory returns one page of grab/import/failure history sorted by the
// given key (series.title or date)
func (c *Client) GetHistory(ctx context.Context, sortKey string, opts *HistoryOptions) (*HistoryPage, error) {
	page, pageSize, sortDir := 1, 10, SortDescending
	if opts != nil {
		if opts.Page > 0 {
			page = opts.Page
		}
		if opts.PageSize > 0 {
			pageSize = opts.PageSize
		}
		if opts.SortDir != "" {
			sortDir = opts.SortDir
		}
	}

	params := url.Values{}
	params.Set("sortKey", sortKey)
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortDir", string(sortDir))
	if opts != nil && opts.EpisodeID > 0 {
		params.Set("episodeId", strconv.Itoa(opts.EpisodeID))
	}

	var history HistoryPage
	if err := c.get(ctx, "/api/history", params, &history); err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return &history, nil
}

// WantedOptions are optional paging parameters for GetWantedMissing. Zero
// values fall back to the server defaults: page 1, page size 10, ascending
// sort.
type WantedOptions struct {
	Page     int
	PageSize int
	SortDir  SortDirection
}

// GetWantedMissing returns one page of monitored episodes without files
// sorted by the given key (series.title or airDateUtc)
func (c *Client) GetWantedMissing(ctx context.Context, sortKey string, opts *WantedOptions) (*WantedPage, error) {
	page, pageSize, sortDir := 1, 10, SortAscending
	if opts != nil {
		if opts.Page > 0 {
			page = opts.Page
		}
		if opts.PageSize > 0 {
			pageSize = opts.PageSize
		}
		if opts.SortDir != "" {
			sortDir = opts.SortDir
		}
	}

	params := url.Values{}
	params.Set("sortKey", sortKey)
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortDir", string(sortDir))

	var wanted WantedPage
	if err := c.get(ctx, "/api/wanted/missing", params, &wanted); err != nil {
		return nil, fmt.Errorf("failed to get wanted episodes: %w", err)
	}

	return &wanted, nil
}

// GetQueue returns the current download queue
func (c *Client) GetQueue(ctx context.Context) ([]QueueItem, error) {
	var queue []QueueItem
	if err := c.get(ctx, "/api/queue", nil, &queue); err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	return queue, nil
}

// DeleteQueueItem removes an item from the queue and the download client.
// With blacklist set the release is also marked as rejected so it is not
// grabbed again. The operation is fire-and-forget; there is no rollback.
func (c *Client) DeleteQueueItem(ctx context.Context, id int, blacklist bool) error {
	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	params.Set("blacklist", strconv.FormatBool(blacklist))

	// The server expects the trailing slash on this endpoint.
	if err := c.del(ctx, "/api/queue/", params, nil); err != nil {
		return fmt.Errorf("failed to delete queue item %d: %w", id, err)
	}

	c.logger.Info().Int("queue_id", id).Bool("blacklist", blacklist).
		Msg("Deleted queue item")
	return nil
}
