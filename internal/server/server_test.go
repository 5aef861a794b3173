package server

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pixelforge/qrcanvas/pkg/cache"
)

func newTestServer(t *testing.T, store cache.Cache) *Server {
	t.Helper()
	return New(DefaultConfig(), log.New(io.Discard), store)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, nil).Router(), "/healthz")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestFormats(t *testing.T) {
	rec := get(t, newTestServer(t, nil).Router(), "/v1/formats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Formats []string `json:"formats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	found := false
	for _, f := range body.Formats {
		if f == "png" {
			found = true
		}
	}
	if !found {
		t.Errorf("formats %v missing png", body.Formats)
	}
}

func TestRender(t *testing.T) {
	rec := get(t, newTestServer(t, nil).Router(), "/v1/qr?data=hello")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want %q", got, "image/png")
	}
	if got := rec.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("X-Cache = %q, want %q", got, "miss")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
	if _, err := png.Decode(rec.Body); err != nil {
		t.Errorf("body is not a valid PNG: %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	router := newTestServer(t, nil).Router()

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"missing data", "/v1/qr", http.StatusBadRequest},
		{"unregistered format", "/v1/qr?data=hello&format=webp", http.StatusUnsupportedMediaType},
		{"malformed format", "/v1/qr?data=hello&format=p%2Fg", http.StatusBadRequest},
		{"bad color", "/v1/qr?data=hello&fg=notacolor", http.StatusBadRequest},
		{"bad level", "/v1/qr?data=hello&level=ultra", http.StatusBadRequest},
		{"bad module size", "/v1/qr?data=hello&module_size=abc", http.StatusBadRequest},
		{"oversized module size", "/v1/qr?data=hello&module_size=9999", http.StatusBadRequest},
		{"bad rounded", "/v1/qr?data=hello&rounded=maybe", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.target)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if body.Error.Code == "" {
				t.Error("error body missing code")
			}
		})
	}
}

func TestRenderCaching(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	router := newTestServer(t, store).Router()

	first := get(t, router, "/v1/qr?data=cached")
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}
	if got := first.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("first X-Cache = %q, want %q", got, "miss")
	}

	second := get(t, router, "/v1/qr?data=cached")
	if second.Code != http.StatusOK {
		t.Fatalf("second status = %d", second.Code)
	}
	if got := second.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want %q", got, "hit")
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached body differs from rendered body")
	}

	// Different parameters must not share a cache entry.
	other := get(t, router, "/v1/qr?data=cached&module_size=4")
	if got := other.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("differing params X-Cache = %q, want %q", got, "miss")
	}
}

func TestRequestIDPropagation(t *testing.T) {
	router := newTestServer(t, nil).Router()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("X-Request-ID = %q, want %q", got, "fixed-id")
	}
}

func TestWriteErrorInternalFallback(t *testing.T) {
	s := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.writeError(rec, context.DeadlineExceeded)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
