package web

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"
)

// TestResolvePublicURL_OverrideWins verifies explicit config beats headers.
func TestResolvePublicURL_OverrideWins(t *testing.T) {
	r := httptest.NewRequest("GET", "/login", nil)
	r.Header.Set("X-Forwarded-Host", "proxy.example.com")

	got := ResolvePublicURL(r, "https://coach.example.com/")
	if got != "https://coach.example.com" {
		t.Errorf("ResolvePublicURL = %q, want override without trailing slash", got)
	}
}

// TestResolvePublicURL_ForwardedHeaders verifies proxy header resolution.
func TestResolvePublicURL_ForwardedHeaders(t *testing.T) {
	r := httptest.NewRequest("GET", "/login", nil)
	r.Header.Set("X-Forwarded-Host", "coach.example.com")
	r.Header.Set("X-Forwarded-Proto", "https")

	if got := ResolvePublicURL(r, ""); got != "https://coach.example.com" {
		t.Errorf("ResolvePublicURL = %q", got)
	}
}

// TestResolvePublicURL_ForwardedHostChain verifies the first proxy entry wins.
func TestResolvePublicURL_ForwardedHostChain(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-Host", "coach.example.com, internal-lb")

	if got := ResolvePublicURL(r, ""); got != "https://coach.example.com" {
		t.Errorf("ResolvePublicURL = %q, want first chain entry over https", got)
	}
}

// TestResolvePublicURL_MissingProtoDefaultsHTTPS verifies forwarded requests
// without a proto header are assumed to be HTTPS.
func TestResolvePublicURL_MissingProtoDefaultsHTTPS(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-Host", "coach.example.com")

	if got := ResolvePublicURL(r, ""); got != "https://coach.example.com" {
		t.Errorf("ResolvePublicURL = %q", got)
	}
}

// TestResolvePublicURL_RequestHostFallback verifies direct requests use the
// request host and scheme.
func TestResolvePublicURL_RequestHostFallback(t *testing.T) {
	r := httptest.NewRequest("GET", "http://localhost:8081/login", nil)

	if got := ResolvePublicURL(r, ""); got != "http://localhost:8081" {
		t.Errorf("ResolvePublicURL = %q", got)
	}

	r.TLS = &tls.ConnectionState{}
	if got := ResolvePublicURL(r, ""); got != "https://localhost:8081" {
		t.Errorf("ResolvePublicURL with TLS = %q", got)
	}
}
