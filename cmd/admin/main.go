package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"coachdesk/internal/adapters/backend"
	emailPkg "coachdesk/internal/adapters/email"
	web "coachdesk/internal/adapters/http"
	"coachdesk/internal/adapters/http/perf"
	"coachdesk/internal/adapters/storage"
	accountStore "coachdesk/internal/adapters/storage/account"
	auditStore "coachdesk/internal/adapters/storage/audit"
	feedbackStore "coachdesk/internal/adapters/storage/feedback"
	outboxStore "coachdesk/internal/adapters/storage/outbox"
	"coachdesk/internal/application/orchestrators"
	"coachdesk/internal/config"
	"coachdesk/internal/domain/outbox"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.MigrateDB(db, cfg.DBPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:  acctStore,
		AuditStore:    auditStore.NewSQLiteStore(timedDB),
		OutboxStore:   outboxStore.NewSQLiteStore(timedDB),
		FeedbackStore: feedbackStore.NewSQLiteStore(timedDB),
	}

	// Seed the first operator account when the store is empty.
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	sender := configureEmail(cfg)

	// Outbox worker delivers queued alert emails and retries failures.
	executors := map[string]orchestrators.ActionExecutor{
		outbox.ActionTypeEmail: &orchestrators.EmailExecutor{Sender: sender, ReplyTo: cfg.EmailReplyTo},
	}
	outboxStopCh := make(chan struct{})
	processor := orchestrators.NewOutboxProcessor(stores.OutboxStore, executors)
	orchestrators.StartBackgroundWorker(processor, 1*time.Minute, outboxStopCh)
	defer close(outboxStopCh)

	client := backend.New(cfg.APIBaseURL, cfg.AdminToken, cfg.AdminUserID)

	// Script-failure sweep queues one alert email per failed backend run.
	if cfg.AlertsAddress != "" {
		orchestrators.StartScriptFailureWatcher(cfg.AlertsAddress, orchestrators.AlertScriptFailuresDeps{
			Backend:     client,
			OutboxStore: stores.OutboxStore,
		}, 5*time.Minute, outboxStopCh)
	}

	handler := web.NewAdminMux(web.Options{
		Production:    cfg.IsProduction(),
		CSRFKey:       cfg.CSRFKey,
		PublicURL:     cfg.PublicURL,
		AlertsAddress: cfg.AlertsAddress,
		StaticDir:     "internal/adapters/http/static",
	}, stores, client, collector)

	srv := &http.Server{
		Addr:              cfg.AdminAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("CoachDesk console %s listening on %s (env=%s, schema=%d)", version, cfg.AdminAddr, cfg.Env, storage.LatestSchemaVersion())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// configureEmail selects Resend when a key is configured and the noop
// sender otherwise, and registers the result with the web layer.
func configureEmail(cfg config.Config) emailPkg.Sender {
	var sender emailPkg.Sender
	if cfg.ResendKey != "" {
		sender = emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if cfg.IsProduction() {
			log.Println("WARNING: COACHDESK_RESEND_KEY is not set; email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop; set COACHDESK_RESEND_KEY for real delivery)")
		}
	}
	web.SetEmailSender(sender, cfg.EmailFrom, cfg.EmailReplyTo)
	return sender
}
