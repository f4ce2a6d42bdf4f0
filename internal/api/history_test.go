package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/construction-cli/buildterm/internal/history"
)

func TestListHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(ListHistoryResponse{
			Entries: []history.Entry{
				{ID: 2, SessionID: "s1", Command: "buildcli project list", SubmittedAt: time.UnixMilli(2000).UTC()},
				{ID: 1, SessionID: "s1", Command: "buildcli --help", SubmittedAt: time.UnixMilli(1000).UTC()},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	resp, err := c.ListHistory(context.Background(), HistoryParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}
	if resp.Entries[0].Command != "buildcli project list" {
		t.Errorf("expected newest first, got %q", resp.Entries[0].Command)
	}
}

func TestListHistoryWithFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("session_id") != "abc" {
			t.Errorf("expected session_id=abc, got %q", q.Get("session_id"))
		}
		if q.Get("limit") != "5" {
			t.Errorf("expected limit=5, got %q", q.Get("limit"))
		}
		if q.Get("offset") != "10" {
			t.Errorf("expected offset=10, got %q", q.Get("offset"))
		}
		json.NewEncoder(w).Encode(ListHistoryResponse{Entries: []history.Entry{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	_, err := c.ListHistory(context.Background(), HistoryParams{SessionID: "abc", Limit: 5, Offset: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListHistoryOmitsZeroParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected empty query, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(ListHistoryResponse{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	if _, err := c.ListHistory(context.Background(), HistoryParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
