package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetAllSeries retrieves every series in the library
func (c *Client) GetAllSeries(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := c.get(ctx, "/api/series", nil, &series); err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d series from Sonarr", len(series))
	return series, nil
}

// GetSeries returns the series with the matching ID
func (c *Client) GetSeries(ctx context.Context, id int) (*Series, error) {
	var series Series
	if err := c.get(ctx, fmt.Sprintf("/api/series/%d", id), nil, &series); err != nil {
		return nil, fmt.Errorf("failed to get series %d: %w", id, err)
	}

	return &series, nil
}

// LookupSeries searches the remote catalog for series matching the term
func (c *Client) LookupSeries(ctx context.Context, term string) ([]Series, error) {
	params := url.Values{}
	params.Set("term", term)

	var results []Series
	if err := c.get(ctx, "/api/series/lookup", params, &results); err != nil {
		return nil, fmt.Errorf("failed to lookup series: %w", err)
	}

	return results, nil
}

// LookupSeriesByTVDBID searches the remote catalog by TVDB ID. It is sugar
// for LookupSeries with a provider-prefixed term.
func (c *Client) LookupSeriesByTVDBID(ctx context.Context, tvdbID int) ([]Series, error) {
	return c.LookupSeries(ctx, fmt.Sprintf("tvdb:%d", tvdbID))
}

// BuildAddSeriesPayload looks up a series by TVDB ID and merges the first
// match with the given options into an add-series payload. When Monitored is
// false every season's monitored flag is forced off. The series path is the
// root folder path concatenated with the title, with no separator added.
func (c *Client) BuildAddSeriesPayload(ctx context.Context, opts AddSeriesOptions) (*AddSeriesRequest, error) {
	results, err := c.LookupSeriesByTVDBID(ctx, opts.TVDBID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, &NotFoundError{Term: fmt.Sprintf("tvdb:%d", opts.TVDBID)}
	}

	match := results[0]
	if !opts.Monitored {
		for i := range match.Seasons {
			match.Seasons[i].Monitored = false
		}
	}

	return &AddSeriesRequest{
		Title:            match.Title,
		Seasons:          match.Seasons,
		Path:             opts.RootFolderPath + match.Title,
		QualityProfileID: opts.QualityProfileID,
		SeasonFolder:     opts.SeasonFolder,
		Monitored:        opts.Monitored,
		TVDBID:           opts.TVDBID,
		Images:           match.Images,
		TitleSlug:        match.TitleSlug,
		AddOptions: AddOptions{
			IgnoreEpisodesWithFiles:    opts.IgnoreEpisodesWithFiles,
			IgnoreEpisodesWithoutFiles: opts.IgnoreEpisodesWithoutFiles,
			SearchForMissingEpisodes:   opts.SearchForMissingEpisodes,
		},
	}, nil
}

// AddSeries builds the payload from a lookup and adds the series to the library
func (c *Client) AddSeries(ctx context.Context, opts AddSeriesOptions) (*Series, error) {
	payload, err := c.BuildAddSeriesPayload(ctx, opts)
	if err != nil {
		return nil, err
	}

	var series Series
	if err := c.post(ctx, "/api/series", payload, &series); err != nil {
		return nil, fmt.Errorf("failed to add series: %w", err)
	}

	c.logger.Info().Str("title", payload.Title).Int("tvdb_id", payload.TVDBID).
		Msg("Added series")
	return &series, nil
}

// UpdateSeries replaces an existing series. Sonarr has no partial update here;
// pass the full record obtained from GetSeries with your changes applied.
func (c *Client) UpdateSeries(ctx context.Context, series *Series) (*Series, error) {
	var updated Series
	if err := c.put(ctx, "/api/series", series, &updated); err != nil {
		return nil, fmt.Errorf("failed to update series %d: %w", series.ID, err)
	}

	return &updated, nil
}

// DeleteSeries deletes the series with the given ID
func (c *Client) DeleteSeries(ctx context.Context, id int, deleteFiles bool) error {
	params := url.Values{}
	params.Set("deleteFiles", strconv.FormatBool(deleteFiles))

	if err := c.del(ctx, fmt.Sprintf("/api/series/%d", id), params, nil); err != nil {
		return fmt.Errorf("failed to delete series %d: %w", id, err)
	}

	c.logger.Info().Int("series_id", id).Bool("delete_files", deleteFiles).
		Msg("Deleted series")
	return nil
}
