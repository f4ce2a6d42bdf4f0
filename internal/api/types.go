package api

import "github.com/construction-cli/buildterm/internal/history"

// APIError represents an error response from the backend.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Error codes returned by Server.
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeTooLarge     = "TOO_LARGE"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNoHistory    = "HISTORY_DISABLED"
	CodeInternal     = "INTERNAL"
)

// --- Resolve ---

// ResolveRequest is the request body for POST /api/resolve.
type ResolveRequest struct {
	Command string `json:"command"`
}

// ResolveResponse is the response from POST /api/resolve.
type ResolveResponse struct {
	Lines []string `json:"lines"`
}

// --- Commands ---

// ListCommandsResponse is the response from GET /api/commands.
type ListCommandsResponse struct {
	Commands []string `json:"commands"`
}

// --- History ---

// ListHistoryResponse is the response from GET /api/history.
type ListHistoryResponse struct {
	Entries []history.Entry `json:"entries"`
}

// HistoryParams holds query parameters for GET /api/history.
type HistoryParams struct {
	SessionID string
	Limit     int
	Offset    int
}
