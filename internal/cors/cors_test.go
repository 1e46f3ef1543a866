package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewMiddlewareRejectsBadConfig(t *testing.T) {
	cases := []struct {
		desc    string
		origins []string
	}{
		{desc: "no origins", origins: nil},
		{desc: "missing scheme", origins: []string{"example.com"}},
		{desc: "missing host", origins: []string{"https://"}},
		{desc: "invalid host", origins: []string{"https://exa mple.com"}},
		{desc: "wildcard over a public suffix", origins: []string{"https://*.com"}},
		{desc: "wildcard over a listed public suffix with a dot", origins: []string{"https://*.co.uk"}},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			if _, err := NewMiddleware(Config{Origins: c.origins}); err == nil {
				t.Errorf("NewMiddleware(%v) returned no error; want one", c.origins)
			}
		})
	}
}

func TestMiddlewareAllowedOrigin(t *testing.T) {
	cases := []struct {
		desc    string
		origins []string
		origin  string
		want    bool
	}{
		{
			desc:    "exact match",
			origins: []string{"https://example.com"},
			origin:  "https://example.com",
			want:    true,
		}, {
			desc:    "scheme mismatch",
			origins: []string{"https://example.com"},
			origin:  "http://example.com",
			want:    false,
		}, {
			desc:    "apex not covered by wildcard",
			origins: []string{"https://*.example.com"},
			origin:  "https://example.com",
			want:    false,
		}, {
			desc:    "subdomain covered by wildcard",
			origins: []string{"https://*.example.com"},
			origin:  "https://app.example.com",
			want:    true,
		}, {
			desc:    "unrelated origin",
			origins: []string{"https://example.com"},
			origin:  "https://evil.example",
			want:    false,
		}, {
			desc:    "one of several allowed origins",
			origins: []string{"https://example.org", "https://example.com"},
			origin:  "https://example.com",
			want:    true,
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			mw, err := NewMiddleware(Config{Origins: c.origins})
			if err != nil {
				t.Fatalf("NewMiddleware(%v) returned error %v", c.origins, err)
			}
			if got := mw.allowedOrigin(c.origin); got != c.want {
				t.Errorf("allowedOrigin(%q) = %v; want %v", c.origin, got, c.want)
			}
		})
	}
}

func TestWrapActualRequest(t *testing.T) {
	mw, err := NewMiddleware(Config{Origins: []string{"https://example.com"}})
	if err != nil {
		t.Fatalf("NewMiddleware returned error %v", err)
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		mw.Wrap(next).ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q; want %q", got, "https://example.com")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want %d (request must still reach next)", rec.Code, http.StatusOK)
		}
	})

	t.Run("disallowed origin still reaches next without CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		mw.Wrap(next).ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q; want empty", got)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("no Origin header passes through untouched", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
		rec := httptest.NewRecorder()
		mw.Wrap(next).ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q; want empty", got)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestWrapPreflight(t *testing.T) {
	mw, err := NewMiddleware(Config{Origins: []string{"https://example.com"}})
	if err != nil {
		t.Fatalf("NewMiddleware returned error %v", err)
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight request must not reach next")
	})

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/search", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		mw.Wrap(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusNoContent)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q; want %q", got, "https://example.com")
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); got != http.MethodGet {
			t.Errorf("Access-Control-Allow-Methods = %q; want %q", got, http.MethodGet)
		}
		if got := rec.Header().Get("Access-Control-Max-Age"); got != maxAgeSeconds {
			t.Errorf("Access-Control-Max-Age = %q; want %q", got, maxAgeSeconds)
		}
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/search", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		mw.Wrap(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusNoContent)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q; want empty", got)
		}
	})
}
