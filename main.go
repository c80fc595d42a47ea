package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/nvillanueva/electoral/auth"
	"github.com/nvillanueva/electoral/cliparse"
	"github.com/nvillanueva/electoral/db"
	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/handlers"
	"github.com/nvillanueva/electoral/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the snapshot database
	driver, err := db.DriverFor(cfg.DatabaseType)
	if err != nil {
		slog.Error("bad database type", "error", err)
		os.Exit(1)
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	store := db.New(dbConn)
	if err := store.CreateSchema(); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Restore the engine from the last snapshot, or bootstrap a fresh one
	sys, err := bootstrapEngine(store, cfg)
	if err != nil {
		slog.Error("engine bootstrap failed", "error", err)
		os.Exit(1)
	}

	// Create router
	core := handlers.NewCore(sys, store, cfg)
	mux := router.NewRouter(core)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// bootstrapEngine loads the persisted snapshot if one exists. On a fresh
// deployment it creates the engine with the configured administrator
// identity, minting one (and logging its token) when none is configured.
func bootstrapEngine(store *db.Store, cfg cliparse.Config) (*election.System, error) {
	state, found, err := store.Load()
	if err != nil {
		return nil, err
	}
	if found {
		slog.Info("state snapshot restored",
			"administrator", state.Administrator,
			"elections", len(state.Elections),
		)
		return election.Restore(state, election.SystemClock), nil
	}

	adminID := election.Identity(cfg.AdminAccountID)
	if adminID == "" {
		adminID = auth.NewIdentity()
		token, err := auth.IssueToken(cfg.TokenSecret, adminID)
		if err != nil {
			return nil, err
		}
		// One-time bootstrap credentials; rotate by transferring the role
		slog.Info("administrator account minted", "account_id", adminID, "token", token)
	}
	slog.Info("fresh engine created", "administrator", adminID)
	return election.New(adminID, election.SystemClock), nil
}
