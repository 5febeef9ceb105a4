package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"crosspay.org/internal/auth"
	"crosspay.org/internal/config"
	"crosspay.org/internal/httpapi"
	"crosspay.org/internal/obs"
	"crosspay.org/internal/payments"
	"crosspay.org/internal/stream"
)

var (
	version = "0.3.0"
	commit  = "dev"
)

// Built-in operator account so a fresh deployment has an employee able to
// verify and submit payments before any real staff accounts exist.
const (
	seedOperatorUsername = "employee1"
	seedOperatorAccount  = "1234567890"
	seedOperatorPassword = "Employee@123"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var db *sql.DB
	if cfg.PGDSN != "" {
		db, err = sql.Open("pgx", cfg.PGDSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	var (
		credStore auth.Store
		payRepo   payments.Repository
	)
	if db != nil {
		credStore = auth.NewPGStore(db)
		payRepo = payments.NewPGRepo(db)
	} else {
		credStore = auth.NewMemStore()
		payRepo = payments.NewInMemory()
	}

	authn, err := auth.NewService(credStore, cfg.AuthSecret,
		auth.WithTokenTTL(cfg.TokenTTL),
		auth.WithBcryptCost(cfg.BcryptCost),
	)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}

	pay, err := payments.NewService(payRepo, payments.NewCurrencySet(cfg.Currencies))
	if err != nil {
		log.Fatalf("payments service: %v", err)
	}

	if cfg.SeedOperator {
		seedOperator(authn)
	}

	events := stream.New()
	api := httpapi.New(httpapi.ReadyProbe{DB: db}, version, authn, pay, events)
	api.SetRateLimit(cfg.RateMax, cfg.RateWindow)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      0, // /events holds the connection open
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting crosspay-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}

func seedOperator(authn *auth.Service) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := authn.RegisterEmployee(ctx, seedOperatorUsername, seedOperatorAccount, seedOperatorPassword)
	switch {
	case err == nil:
		log.Printf("seeded operator account %q", seedOperatorUsername)
	case errors.Is(err, auth.ErrDuplicateIdentity):
		// already present, nothing to do
	default:
		log.Fatalf("seed operator: %v", err)
	}
}
