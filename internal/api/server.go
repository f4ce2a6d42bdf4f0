package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/construction-cli/buildterm/internal/history"
	"github.com/construction-cli/buildterm/internal/logger"
)

// maxResolveBody caps the POST /api/resolve request body.
const maxResolveBody = 64 << 10

// CommandResolver is what the server needs from the command resolver.
type CommandResolver interface {
	Resolve(ctx context.Context, cmd string) ([]string, error)
	Commands() []string
}

// HistoryLister reads persisted submissions.
type HistoryLister interface {
	List(ctx context.Context, f history.Filter) ([]history.Entry, error)
}

// Server answers the endpoints Client calls.
type Server struct {
	resolver CommandResolver
	history  HistoryLister
	token    string
	log      *log.Logger
	mux      *http.ServeMux
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithHistory enables GET /api/history.
func WithHistory(h HistoryLister) ServerOption {
	return func(s *Server) { s.history = h }
}

// WithToken requires "Authorization: Bearer <token>" on every /api/ route.
func WithToken(token string) ServerOption {
	return func(s *Server) { s.token = token }
}

// NewServer builds the handler around resolver.
func NewServer(resolver CommandResolver, opts ...ServerOption) *Server {
	s := &Server{
		resolver: resolver,
		log:      logger.NewStyledLogger("api"),
		mux:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.mux.Handle("POST /api/resolve", s.auth(http.HandlerFunc(s.handleResolve)))
	s.mux.Handle("GET /api/commands", s.auth(http.HandlerFunc(s.handleCommands)))
	s.mux.Handle("GET /api/history", s.auth(http.HandlerFunc(s.handleHistory)))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) auth(next http.Handler) http.Handler {
	if s.token == "" {
		return next
	}
	want := []byte("Bearer " + s.token)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get("Authorization"))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			writeError(w, http.StatusUnauthorized, CodeUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxResolveBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, CodeTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "command is required")
		return
	}

	lines, err := s.resolver.Resolve(r.Context(), req.Command)
	if err != nil {
		s.log.Error("resolve failed", "command", req.Command, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}
	if lines == nil {
		lines = []string{}
	}
	s.log.Debug("resolved", "command", req.Command, "lines", len(lines))
	writeJSON(w, http.StatusOK, ResolveResponse{Lines: lines})
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ListCommandsResponse{Commands: s.resolver.Commands()})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, CodeNoHistory, history.ErrNoStore.Error())
		return
	}

	q := r.URL.Query()
	f := history.Filter{SessionID: q.Get("session_id")}
	var err error
	if f.Limit, err = intParam(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "limit: "+err.Error())
		return
	}
	if f.Offset, err = intParam(q.Get("offset")); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "offset: "+err.Error())
		return
	}

	entries, err := s.history.List(r.Context(), f)
	if err != nil {
		s.log.Error("list history failed", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "list history failed")
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, ListHistoryResponse{Entries: entries})
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	if n < 0 {
		return 0, errors.New("must not be negative")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, APIError{Error: msg, Code: code})
}
