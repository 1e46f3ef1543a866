// Package cors provides a small [net/http] middleware for Cross-Origin
// Resource Sharing, sized for cmd/searchserver's one use of it: guarding a
// pair of read-only, credential-free GET routes against a fixed, operator-
// supplied allow-list of origins. It is not a general-purpose CORS library —
// there is no request/response header negotiation, no runtime
// reconfiguration, and no support for methods other than GET, because
// nothing in this repository needs any of that.
package cors

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ErrNoOrigins is returned by [NewMiddleware] when Config.Origins is empty:
// a CORS middleware that allows no origin at all is never what's wanted.
var ErrNoOrigins = errors.New("cors: at least one allowed origin is required")

// maxAgeSeconds is how long a browser may cache a successful preflight
// response before issuing another one. 10 minutes matches the ceiling most
// browsers enforce regardless of what a server asks for.
const maxAgeSeconds = "600"

// Config configures a [Middleware]. Origins lists the Web origins allowed to
// fetch from the routes the middleware wraps, each written as
// "scheme://host" or, to allow arbitrary subdomains of host,
// "scheme://*.host" (e.g. "https://example.com" or
// "https://*.example.com"). Access is always GET-only and credential-free.
type Config struct {
	Origins []string
}

// pattern is one parsed entry of Config.Origins.
type pattern struct {
	scheme   string
	host     string // ASCII, as produced by idna.Lookup.ToASCII
	wildcard bool   // pattern matches any subdomain of host, but not host itself
}

// Middleware wraps HTTP handlers to grant cross-origin GET access to the
// origins it was built with. A Middleware is immutable once constructed by
// [NewMiddleware]; there is no reconfiguration, so no locking is needed
// around the handlers it wraps.
type Middleware struct {
	patterns []pattern
}

// NewMiddleware validates cfg and builds a Middleware from it.
func NewMiddleware(cfg Config) (*Middleware, error) {
	if len(cfg.Origins) == 0 {
		return nil, ErrNoOrigins
	}
	patterns := make([]pattern, len(cfg.Origins))
	for i, raw := range cfg.Origins {
		p, err := parsePattern(raw)
		if err != nil {
			return nil, err
		}
		patterns[i] = p
	}
	return &Middleware{patterns: patterns}, nil
}

// parsePattern parses one Config.Origins entry.
func parsePattern(raw string) (pattern, error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || scheme == "" {
		return pattern{}, fmt.Errorf("cors: origin pattern %q has no scheme", raw)
	}
	wildcard := false
	if cut, ok := strings.CutPrefix(rest, "*."); ok {
		wildcard = true
		rest = cut
	}
	if rest == "" {
		return pattern{}, fmt.Errorf("cors: origin pattern %q has no host", raw)
	}
	host, err := idna.Lookup.ToASCII(rest)
	if err != nil {
		return pattern{}, fmt.Errorf("cors: origin pattern %q has an invalid host: %w", raw, err)
	}
	if wildcard {
		// Reject patterns like "https://*.com": allowing arbitrary
		// subdomains of a public suffix allows arbitrary, unrelated sites.
		if etld, _ := publicsuffix.PublicSuffix(host); etld == host {
			return pattern{}, fmt.Errorf("cors: origin pattern %q encompasses subdomains of a public suffix", raw)
		}
	}
	return pattern{scheme: scheme, host: host, wildcard: wildcard}, nil
}

// matches reports whether origin (a value of an HTTP Origin header) is
// allowed by p.
func (p pattern) matches(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme != p.scheme {
		return false
	}
	host, err := idna.Lookup.ToASCII(u.Hostname())
	if err != nil {
		return false
	}
	if !p.wildcard {
		return host == p.host
	}
	return strings.HasSuffix(host, "."+p.host)
}

// allowedOrigin reports whether origin is allowed by any of m's patterns.
func (m *Middleware) allowedOrigin(origin string) bool {
	for _, p := range m.patterns {
		if p.matches(origin) {
			return true
		}
	}
	return false
}

// Wrap returns a handler that applies m's CORS policy and, for any request
// that is not a CORS preflight request, delegates to next.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			// Not a cross-origin request as far as CORS is concerned; browsers
			// never send Origin for e.g. navigations or same-origin fetches.
			next.ServeHTTP(w, r)
			return
		}
		allowed := m.allowedOrigin(origin)
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			m.writePreflight(w, origin, allowed)
			return
		}
		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) writePreflight(w http.ResponseWriter, origin string, allowed bool) {
	if allowed {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Methods", http.MethodGet)
		w.Header().Set("Access-Control-Max-Age", maxAgeSeconds)
	}
	w.WriteHeader(http.StatusNoContent)
}
