package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetEpisodesBySeriesID returns all episodes for the given series
func (c *Client) GetEpisodesBySeriesID(ctx context.Context, seriesID int) ([]Episode, error) {
	params := url.Values{}
	params.Set("seriesId", strconv.Itoa(seriesID))

	var episodes []Episode
	if err := c.get(ctx, "/api/episode", params, &episodes); err != nil {
		return nil, fmt.Errorf("failed to get episodes for series %d: %w", seriesID, err)
	}

	return episodes, nil
}

// GetEpisode returns the episode with the matching ID
func (c *Client) GetEpisode(ctx context.Context, id int) (*Episode, error) {
	var episode Episode
	if err := c.get(ctx, fmt.Sprintf("/api/episode/%d", id), nil, &episode); err != nil {
		return nil, fmt.Errorf("failed to get episode %d: %w", id, err)
	}

	return &episode, nil
}

// UpdateEpisode replaces an existing episode. Currently only the monitored
// flag is honored server-side, but the full record must be submitted; fetch
// it with GetEpisode, apply changes and pass it back.
func (c *Client) UpdateEpisode(ctx context.Context, episode *Episode) (*Episode, error) {
	var updated Episode
	if err := c.put(ctx, "/api/episode", episode, &updated); err != nil {
		return nil, fmt.Errorf("failed to update episode %d: %w", episode.ID, err)
	}

	return &updated, nil
}

// GetEpisodeFilesBySeriesID returns all episode files for the given series
func (c *Client) GetEpisodeFilesBySeriesID(ctx context.Context, seriesID int) ([]EpisodeFile, error) {
	params := url.Values{}
	params.Set("seriesId", strconv.Itoa(seriesID))

	var files []EpisodeFile
	if err := c.get(ctx, "/api/episodefile", params, &files); err != nil {
		return nil, fmt.Errorf("failed to get episode files for series %d: %w", seriesID, err)
	}

	return files, nil
}

// GetEpisodeFile returns the episode file with the matching ID
func (c *Client) GetEpisodeFile(ctx context.Context, id int) (*EpisodeFile, error) {
	var file EpisodeFile
	if err := c.get(ctx, fmt.Sprintf("/api/episodefile/%d", id), nil, &file); err != nil {
		return nil, fmt.Errorf("failed to get episode file %d: %w", id, err)
	}

	return &file, nil
}

// DeleteEpisodeFile deletes the given episode file
func (c *Client) DeleteEpisodeFile(ctx context.Context, id int) error {
	if err := c.del(ctx, fmt.Sprintf("/api/episodefile/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete episode file %d: %w", id, err)
	}

	c.logger.Info().Int("episode_file_id", id).Msg("Deleted episode file")
	return nil
}

type updateEpisodeFileQualityRequest struct {
	Quality QualityModel `json:"quality"`
}

// UpdateEpisodeFileQuality updates the quality of the episode file and
// returns the updated file
func (c *Client) UpdateEpisodeFileQuality(ctx context.Context, id int, quality QualityModel) (*EpisodeFile, error) {
	body := updateEpisodeFileQualityRequest{Quality: quality}

	var file EpisodeFile
	if err := c.put(ctx, fmt.Sprintf("/api/episodefile/%d", id), body, &file); err != nil {
		return nil, fmt.Errorf("failed to update quality of episode file %d: %w", id, err)
	}

	return &file, nil
}
