package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/construction-cli/buildterm/internal/history"
	"github.com/construction-cli/buildterm/internal/resolver"
)

type fakeLister struct {
	entries []history.Entry
	err     error
	got     history.Filter
}

func (f *fakeLister) List(_ context.Context, filter history.Filter) ([]history.Entry, error) {
	f.got = filter
	return f.entries, f.err
}

func newTestServer(t *testing.T, opts ...ServerOption) (*httptest.Server, *Client) {
	t.Helper()
	r := resolver.New(resolver.WithIDGenerator(resolver.FixedID(42)))
	srv := httptest.NewServer(NewServer(r, opts...))
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "secret")
}

func TestServerResolve(t *testing.T) {
	_, c := newTestServer(t)
	resp, err := c.Resolve(context.Background(), ResolveRequest{Command: `buildcli project create "Deck"`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Created project: Deck (ID: 42)", "Budget: $50,000.00"}
	if strings.Join(resp.Lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("expected %v, got %v", want, resp.Lines)
	}
}

func TestServerResolveUnknownCommand(t *testing.T) {
	_, c := newTestServer(t)
	resp, err := c.Resolve(context.Background(), ResolveRequest{Command: "rm -rf /"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Lines) == 0 || resp.Lines[0] != "Command not recognized: rm -rf /" {
		t.Fatalf("expected fallback, got %v", resp.Lines)
	}
}

func TestServerResolveRejectsBlankCommand(t *testing.T) {
	_, c := newTestServer(t)
	_, err := c.Resolve(context.Background(), ResolveRequest{Command: "   "})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	expected := "command is required (code: BAD_REQUEST)"
	if err.Error() != expected {
		t.Fatalf("expected %q, got %q", expected, err.Error())
	}
}

func TestServerResolveRejectsBadJSON(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/resolve", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestServerRequiresToken(t *testing.T) {
	srv, _ := newTestServer(t, WithToken("secret"))

	_, err := NewClient(srv.URL, "wrong").ListCommands(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	resp, err := NewClient(srv.URL, "secret").ListCommands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Commands) == 0 {
		t.Fatal("expected commands")
	}
}

func TestServerHealthzSkipsAuth(t *testing.T) {
	srv, _ := newTestServer(t, WithToken("secret"))
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestServerCommandsAreSorted(t *testing.T) {
	_, c := newTestServer(t)
	resp, err := c.ListCommands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(resp.Commands); i++ {
		if resp.Commands[i-1] > resp.Commands[i] {
			t.Fatalf("commands not sorted at %d: %q > %q", i, resp.Commands[i-1], resp.Commands[i])
		}
	}
}

func TestServerHistoryDisabled(t *testing.T) {
	_, c := newTestServer(t)
	_, err := c.ListHistory(context.Background(), HistoryParams{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), CodeNoHistory) {
		t.Fatalf("expected %s, got %v", CodeNoHistory, err)
	}
}

func TestServerHistory(t *testing.T) {
	lister := &fakeLister{entries: []history.Entry{{ID: 1, SessionID: "s1", Command: "buildcli --help"}}}
	_, c := newTestServer(t, WithHistory(lister))

	resp, err := c.ListHistory(context.Background(), HistoryParams{SessionID: "s1", Limit: 3, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].Command != "buildcli --help" {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}
	want := history.Filter{SessionID: "s1", Limit: 3, Offset: 1}
	if lister.got != want {
		t.Fatalf("expected filter %+v, got %+v", want, lister.got)
	}
}

func TestServerHistoryBadParams(t *testing.T) {
	srv, _ := newTestServer(t, WithHistory(&fakeLister{}))
	for _, q := range []string{"limit=abc", "offset=-1"} {
		resp, err := http.Get(srv.URL + "/api/history?" + q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, resp.StatusCode)
		}
	}
}

func TestServerHistoryStoreFailure(t *testing.T) {
	_, c := newTestServer(t, WithHistory(&fakeLister{err: errors.New("disk I/O error")}))
	_, err := c.ListHistory(context.Background(), HistoryParams{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), CodeInternal) {
		t.Fatalf("expected %s, got %v", CodeInternal, err)
	}
}

func TestServerResolveRejectsOversizedBody(t *testing.T) {
	_, c := newTestServer(t)
	_, err := c.Resolve(context.Background(), ResolveRequest{Command: strings.Repeat("x", maxResolveBody+1)})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	expected := "request body too large (code: TOO_LARGE)"
	if err.Error() != expected {
		t.Fatalf("expected %q, got %q", expected, err.Error())
	}
}
