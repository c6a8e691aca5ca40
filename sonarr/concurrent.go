package sonarr

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultFetchConcurrency bounds the number of in-flight requests when
// fetching data for multiple series at once
const DefaultFetchConcurrency = 10

// GetEpisodesBySeriesIDs fetches episodes for several series concurrently
// and returns them keyed by series ID
func (c *Client) GetEpisodesBySeriesIDs(ctx context.Context, seriesIDs []int) (map[int][]Episode, error) {
	results := make(map[int][]Episode, len(seriesIDs))
	if len(seriesIDs) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultFetchConcurrency)

	// Use mutex to protect concurrent writes
	var mu sync.Mutex

	for _, id := range seriesIDs {
		id := id
		g.Go(func() error {
			episodes, err := c.GetEpisodesBySeriesID(ctx, id)
			if err != nil {
				return fmt.Errorf("series %d: %w", id, err)
			}

			mu.Lock()
			results[id] = episodes
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
