package api

import (
	"context"
	"net/http"
)

// Resolve asks the backend for the output lines of a command.
func (c *Client) Resolve(ctx context.Context, req ResolveRequest) (*ResolveResponse, error) {
	var out ResolveResponse
	if err := c.do(ctx, http.MethodPost, "/api/resolve", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoteResolver adapts a Client to the REPL's resolver contract.
type RemoteResolver struct {
	Client *Client
}

func (r RemoteResolver) Resolve(ctx context.Context, cmd string) ([]string, error) {
	resp, err := r.Client.Resolve(ctx, ResolveRequest{Command: cmd})
	if err != nil {
		return nil, err
	}
	return resp.Lines, nil
}
