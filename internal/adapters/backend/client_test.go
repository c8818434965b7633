package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"coachdesk/internal/domain/kr"
	"coachdesk/internal/domain/user"
)

func TestDoJSON_AdminHeaders(t *testing.T) {
	var gotToken, gotUserID, gotSession string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Admin-Token")
		gotUserID = r.Header.Get("X-Admin-User-Id")
		gotSession = r.Header.Get("X-Session-Token")
		w.Write([]byte(`{"users":[],"total":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token", "admin-42")
	if _, err := c.ListUsers(context.Background(), ListUsersQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotToken != "secret-token" || gotUserID != "admin-42" {
		t.Errorf("expected admin headers, got token=%q user=%q", gotToken, gotUserID)
	}
	if gotSession != "" {
		t.Errorf("admin call must not carry a session token, got %q", gotSession)
	}
}

func TestDoJSON_SessionHeader(t *testing.T) {
	var gotSession, gotAdmin string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get("X-Session-Token")
		gotAdmin = r.Header.Get("X-Admin-Token")
		w.Write([]byte(`{"id":"u-1","phone":"+64215551","status":"active"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token", "admin-42")
	u, err := c.Me(context.Background(), "sess-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSession != "sess-abc" {
		t.Errorf("expected session token forwarded, got %q", gotSession)
	}
	if gotAdmin != "" {
		t.Errorf("session call must not carry admin credentials, got %q", gotAdmin)
	}
	if u.ID != "u-1" || u.Status != user.StatusActive {
		t.Errorf("unexpected user decoded: %+v", u)
	}
}

func TestDoJSON_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"invalid code"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", "")
	_, err := c.VerifyLogin(context.Background(), "+64215551", "000000")
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != 422 || apiErr.Message != "invalid code" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestDoJSON_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "user not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "t", "a")
	_, err := c.GetUser(context.Background(), "nope")
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound, got %v", err)
	}
	if IsUnauthorized(err) {
		t.Error("404 must not be reported as unauthorized")
	}
}

func TestSubmitCheckIn_PathAndBody(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, "", "")
	err := c.SubmitCheckIn(context.Background(), "sess", kr.CheckIn{KRID: "kr-9", Value: 3, Note: "ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v1/me/krs/kr-9/check-ins" {
		t.Errorf("unexpected path %q", gotPath)
	}
}

func TestGetUsageReport_EscapesPeriod(t *testing.T) {
	var gotPeriod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPeriod = r.URL.Query().Get("period")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret", "admin-1")
	if _, err := c.GetUsageReport(context.Background(), "last 7 days&debug=1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPeriod != "last 7 days&debug=1" {
		t.Errorf("period should survive escaping round trip, got %q", gotPeriod)
	}
}

func TestTrackPageView_SwallowsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "", "")
	// Must not panic or surface anything.
	c.TrackPageView(context.Background(), "sess", "/krs")
}
