package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchReleases queries the configured indexers for releases of an episode
func (c *Client) SearchReleases(ctx context.Context, episodeID int) ([]Release, error) {
	params := url.Values{}
	params.Set("episodeId", strconv.Itoa(episodeID))

	var releases []Release
	if err := c.get(ctx, "/api/release", params, &releases); err != nil {
		return nil, fmt.Errorf("failed to search releases: %w", err)
	}

	c.logger.Debug().Msgf("Found %d releases for episode %d", len(releases), episodeID)
	return releases, nil
}

type downloadReleaseRequest struct {
	GUID      string `json:"guid"`
	IndexerID int    `json:"indexerId"`
}

// DownloadRelease sends a previously searched release to the download client
func (c *Client) DownloadRelease(ctx context.Context, guid string, indexerID int) (*Release, error) {
	body := downloadReleaseRequest{GUID: guid, IndexerID: indexerID}

	var release Release
	if err := c.post(ctx, "/api/release", body, &release); err != nil {
		return nil, fmt.Errorf("failed to download release: %w", err)
	}

	return &release, nil
}

type pushReleaseRequest struct {
	Title       string   `json:"title"`
	DownloadURL string   `json:"downloadUrl"`
	Protocol    Protocol `json:"protocol"`
	PublishDate string   `json:"publishDate"`
}

// PushRelease notifies Sonarr of a new release. The publish date is an
// ISO 8601 string and is passed through unvalidated.
func (c *Client) PushRelease(ctx context.Context, title, downloadURL string, protocol Protocol, publishDate string) (*Release, error) {
	body := pushReleaseRequest{
		Title:       title,
		DownloadURL: downloadURL,
		Protocol:    protocol,
		PublishDate: publishDate,
	}

	var release Release
	if err := c.post(ctx, "/api/release/push", body, &release); err != nil {
		return nil, fmt.Errorf("failed to push release: %w", err)
	}

	return &release, nil
}

// ParseTitle returns the result of parsing a release title
func (c *Client) ParseTitle(ctx context.Context, title string) (*ParseResult, error) {
	params := url.Values{}
	params.Set("title", title)

	var result ParseResult
	if err := c.get(ctx, "/api/parse", params, &result); err != nil {
		return nil, fmt.Errorf("failed to parse title: %w", err)
	}

	return &result, nil
}

// ParsePath returns the result of parsing a file path
func (c *Client) ParsePath(ctx context.Context, path string) (*ParseResult, error) {
	params := url.Values{}
	params.Set("path", path)

	var result ParseResult
	if err := c.get(ctx, "/api/parse", params, &result); err != nil {
		return nil, fmt.Errorf("failed to parse path: %w", err)
	}

	return &result, nil
}

// GetQualityProfiles returns all quality profiles
func (c *Client) GetQualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.get(ctx, "/api/profile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to get quality profiles: %w", err)
	}

	return profiles, nil
}
