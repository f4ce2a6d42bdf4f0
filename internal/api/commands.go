package api

import (
	"context"
	"net/http"
)

// ListCommands returns the backend's fully spelled command vocabulary.
func (c *Client) ListCommands(ctx context.Context) (*ListCommandsResponse, error) {
	var out ListCommandsResponse
	if err := c.do(ctx, http.MethodGet, "/api/commands", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
