package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListHistory returns persisted submissions, newest first, optionally
// filtered by session.
func (c *Client) ListHistory(ctx context.Context, params HistoryParams) (*ListHistoryResponse, error) {
	q := url.Values{}
	if params.SessionID != "" {
		q.Set("session_id", params.SessionID)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	path := "/api/history?" + q.Encode()

	var out ListHistoryResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
