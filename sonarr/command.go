package sonarr

import (
	"context"
	"fmt"
)

// GetCommands returns the status of all currently started commands
func (c *Client) GetCommands(ctx context.Context) ([]CommandResponse, error) {
	var commands []CommandResponse
	if err := c.get(ctx, "/api/command", nil, &commands); err != nil {
		return nil, fmt.Errorf("failed to get commands: %w", err)
	}

	return commands, nil
}

// GetCommand returns the status of a previously started command
func (c *Client) GetCommand(ctx context.Context, id int) (*CommandResponse, error) {
	var command CommandResponse
	if err := c.get(ctx, fmt.Sprintf("/api/command/%d", id), nil, &command); err != nil {
		return nil, fmt.Errorf("failed to get command %d: %w", id, err)
	}

	return &command, nil
}

// RunCommand starts one of the predefined Sonarr command routines. Extra
// parameters are passed through unvalidated; the server decides which
// parameters are valid for which command. The name key wins on collision.
func (c *Client) RunCommand(ctx context.Context, name string, params map[string]interface{}) (*CommandResponse, error) {
	body := make(map[string]interface{}, len(params)+1)
	for k, v := range params {
		body[k] = v
	}
	body["name"] = name

	var command CommandResponse
	if err := c.post(ctx, "/api/command", body, &command); err != nil {
		return nil, fmt.Errorf("failed to run command %s: %w", name, err)
	}

	c.logger.Debug().Str("command", name).Int("id", command.ID).Msg("Started command")
	return &command, nil
}
