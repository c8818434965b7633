package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/adapters/email"
	"coachdesk/internal/adapters/http/middleware"
	"coachdesk/internal/adapters/http/perf"
	"coachdesk/internal/adapters/metrics"
	accountStore "coachdesk/internal/adapters/storage/account"
	auditStore "coachdesk/internal/adapters/storage/audit"
	feedbackStore "coachdesk/internal/adapters/storage/feedback"
	outboxStore "coachdesk/internal/adapters/storage/outbox"
)

// Stores holds the local sqlite side-state. All domain data lives behind the
// backend API and is never stored here.
type Stores struct {
	AccountStore  accountStore.Store
	AuditStore    auditStore.Store
	OutboxStore   outboxStore.Store
	FeedbackStore feedbackStore.Store
}

// Options carries per-app settings the muxes need beyond their dependencies.
type Options struct {
	Production     bool
	CSRFKey        string // hex-encoded, 32 bytes; empty generates one
	PublicURL      string // overrides public-URL resolution when set
	AlertsAddress  string
	TrustedOrigins []string
	StaticDir      string
}

// loadCSRFKey decodes the configured CSRF secret. In production the key MUST
// be set. In development a random key is generated per startup.
func loadCSRFKey(keyHex string, production bool) []byte {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("CSRF key must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if production {
		log.Fatal("CSRF key is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart)")
	return key
}

// Global stores instance (set by NewAdminMux / NewDashboardMux)
var stores *Stores

// Global backend client instance
var backendClient *backend.Client

// Global session store instance
var sessions *middleware.SessionStore

// Global perf collector
var perfCollector *perf.Collector

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// publicURLOverride, when non-empty, wins public-URL resolution.
var publicURLOverride string

// alertsAddress receives feedback and failure notifications.
var alertsAddress string

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

func setupShared(opts Options, s *Stores, client *backend.Client, collector *perf.Collector, cookieName string) {
	stores = s
	backendClient = client
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	publicURLOverride = opts.PublicURL
	alertsAddress = opts.AlertsAddress
	middleware.CookieName = cookieName
	middleware.SecureCookies = opts.Production
}

func buildMux(opts Options, register func(*http.ServeMux)) http.Handler {
	mux := http.NewServeMux()
	staticDir := opts.StaticDir
	if staticDir == "" {
		staticDir = "static"
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.Handle("/metrics", metrics.Handler())
	register(mux)

	csrfKey := loadCSRFKey(opts.CSRFKey, opts.Production)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, opts.TrustedOrigins),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(appName, perfCollector),
	)
}

// appName labels metrics and logs; set by whichever New*Mux runs.
var appName string

// NewAdminMux wires the admin console: operator login, user management,
// content and template administration, reports, audit trail.
func NewAdminMux(opts Options, s *Stores, client *backend.Client, collector *perf.Collector) http.Handler {
	appName = "admin"
	setupShared(opts, s, client, collector, "coachdesk_admin")
	return buildMux(opts, registerAdminRoutes)
}

// NewDashboardMux wires the coaching dashboard: OTP login, KRs, touchpoints,
// library reader, settings, feedback.
func NewDashboardMux(opts Options, s *Stores, client *backend.Client, collector *perf.Collector) http.Handler {
	appName = "dashboard"
	setupShared(opts, s, client, collector, "coachdesk_session")
	return buildMux(opts, registerDashboardRoutes)
}
