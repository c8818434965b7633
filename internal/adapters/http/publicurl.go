package web

import (
	"net/http"
	"strings"
)

// ResolvePublicURL determines the externally visible base URL for absolute
// redirects and links. Order: explicit override, forwarded headers set by a
// reverse proxy, then the request host itself.
// POST: returned URL has no trailing slash
func ResolvePublicURL(r *http.Request, override string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}

	host := r.Header.Get("X-Forwarded-Host")
	proto := r.Header.Get("X-Forwarded-Proto")
	if host != "" {
		// Proxies may send a comma-separated chain; the first entry is the
		// client-facing one.
		if i := strings.Index(host, ","); i >= 0 {
			host = strings.TrimSpace(host[:i])
		}
		if proto == "" {
			proto = "https"
		}
		return proto + "://" + host
	}

	if r.Host == "" {
		return ""
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// absoluteURL joins a request-relative path onto the resolved public URL.
// PRE: path begins with "/"
func absoluteURL(r *http.Request, path string) string {
	base := ResolvePublicURL(r, publicURLOverride)
	if base == "" {
		return path
	}
	return base + path
}
