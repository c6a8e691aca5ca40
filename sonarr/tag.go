package sonarr

import (
	"context"
	"fmt"
)

// GetTags returns all tags in the database
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.get(ctx, "/api/tag", nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d tags from Sonarr", len(tags))
	return tags, nil
}

// GetTag returns the tag with the matching database ID
func (c *Client) GetTag(ctx context.Context, id int) (*Tag, error) {
	var tag Tag
	if err := c.get(ctx, fmt.Sprintf("/api/tag/%d", id), nil, &tag); err != nil {
		return nil, fmt.Errorf("failed to get tag %d: %w", id, err)
	}

	return &tag, nil
}

// CreateTag creates a new tag that can be assigned to a series, delay
// profile, notification or restriction
func (c *Client) CreateTag(ctx context.Context, id int, label string) (*Tag, error) {
	body := Tag{ID: id, Label: label}

	var tag Tag
	if err := c.post(ctx, "/api/tag", body, &tag); err != nil {
		return nil, fmt.Errorf("failed to create tag %s: %w", label, err)
	}

	return &tag, nil
}

// UpdateTag edits a tag by its database ID
func (c *Client) UpdateTag(ctx context.Context, id int, label string) (*Tag, error) {
	body := Tag{ID: id, Label: label}

	var tag Tag
	if err := c.put(ctx, fmt.Sprintf("/api/tag/%d", id), body, &tag); err != nil {
		return nil, fmt.Errorf("failed to update tag %d: %w", id, err)
	}

	return &tag, nil
}

// DeleteTag deletes a tag
func (c *Client) DeleteTag(ctx context.Context, id int) error {
	if err := c.del(ctx, fmt.Sprintf("/api/tag/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}

	c.logger.Info().Int("tag_id", id).Msg("Deleted tag")
	return nil
}
