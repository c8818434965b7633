package browser_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	"coachdesk/internal/adapters/backend"
	web "coachdesk/internal/adapters/http"
	"coachdesk/internal/adapters/http/perf"
	"coachdesk/internal/adapters/storage"
	accountStore "coachdesk/internal/adapters/storage/account"
	auditStore "coachdesk/internal/adapters/storage/audit"
	feedbackStore "coachdesk/internal/adapters/storage/feedback"
	outboxStore "coachdesk/internal/adapters/storage/outbox"
	"coachdesk/internal/application/orchestrators"
)

const (
	testAdminEmail    = "admin@test.com"
	testAdminPassword = "TestPass123!x"
	testCSRFKey       = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
	AdminID string
}

// fakeBackendServer stands in for the remote coaching API so the apps can be
// exercised without network access.
func fakeBackendServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login/start", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/v1/auth/login/verify", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Code string `json:"code"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Code != "123456" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": "invalid code"}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"session_token": "backend-token-abc",
			"user_id":       "user-7",
		})
	})
	mux.HandleFunc("GET /api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": "user-7", "phone": "+27821234567", "name": "Thandi", "status": "active",
		})
	})
	mux.HandleFunc("GET /api/v1/me/krs", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	})
	mux.HandleFunc("GET /api/v1/me/touchpoints", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	})
	mux.HandleFunc("GET /api/v1/me/library", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	})
	mux.HandleFunc("POST /api/v1/telemetry/page-views", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	for _, p := range []string{
		"GET /api/v1/kb-snippets",
		"GET /api/v1/library",
		"GET /api/v1/prompt-templates",
		"GET /api/v1/messaging/templates",
		"GET /api/v1/script-runs",
	} {
		mux.HandleFunc(p, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "[]")
		})
	}
	mux.HandleFunc("GET /api/v1/reports/usage", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{}")
	})
	mux.HandleFunc("GET /api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{
				{"id": "user-7", "phone": "+27821234567", "name": "Thandi", "status": "active", "coaching_plan": "standard"},
			},
			"total": 1,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestApp creates a fully wired app with a temp SQLite DB and starts an
// HTTP server serving either the admin console or the coaching dashboard.
func newTestApp(t *testing.T, kind string) *testApp {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := storage.MigrateDB(db, dbPath); err != nil {
		t.Fatalf("failed to migrate test DB: %v", err)
	}

	acctStore := accountStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:  acctStore,
		AuditStore:    auditStore.NewSQLiteStore(db),
		OutboxStore:   outboxStore.NewSQLiteStore(db),
		FeedbackStore: feedbackStore.NewSQLiteStore(db),
	}

	ctx := context.Background()
	adminID, err := orchestrators.ExecuteCreateAccount(ctx, orchestrators.CreateAccountInput{
		Email:                  testAdminEmail,
		Password:               testAdminPassword,
		Role:                   "admin",
		PasswordChangeRequired: false,
	}, orchestrators.CreateAccountDeps{AccountStore: acctStore})
	if err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	be := fakeBackendServer(t)
	client := backend.New(be.URL, "test-admin-token", "op-1")

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	web.RateLimitPerSecond = 1000

	opts := web.Options{
		CSRFKey:   testCSRFKey,
		StaticDir: "internal/adapters/http/static",
		TrustedOrigins: []string{
			fmt.Sprintf("127.0.0.1:%d", port),
			fmt.Sprintf("localhost:%d", port),
		},
	}
	collector := perf.NewCollector(perf.DefaultRingSize)

	var handler http.Handler
	switch kind {
	case "admin":
		handler = web.NewAdminMux(opts, stores, client, collector)
	case "dashboard":
		handler = web.NewDashboardMux(opts, stores, client, collector)
	default:
		t.Fatalf("unknown app kind %q", kind)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: handler,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright unavailable: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
		AdminID: adminID,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login navigates to the login page and logs in as the seeded operator.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=Email]").Fill(testAdminEmail); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=Password]").Fill(testAdminPassword); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/users", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to the user list: %v", err)
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
