// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/nvillanueva/electoral/cliparse"
	"github.com/nvillanueva/electoral/db"
	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/middleware"
)

// Core bundles the engine, its serialization mutex and the snapshot store.
// The engine itself is single-threaded; the mutex is the host-side
// guarantee that at most one call is in flight at a time.
type Core struct {
	mu    sync.Mutex
	sys   *election.System
	store *db.Store
	cfg   cliparse.Config
}

// NewCore wires an engine to the handlers. store may be nil when snapshot
// persistence is disabled (tests).
func NewCore(sys *election.System, store *db.Store, cfg cliparse.Config) *Core {
	return &Core{sys: sys, store: store, cfg: cfg}
}

// persist snapshots the engine after a successful mutation. Persistence
// failures are logged, not surfaced: the in-memory state is authoritative
// and the operation already succeeded.
func (c *Core) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.sys.Snapshot()); err != nil {
		slog.Warn("failed to persist state snapshot", "error", err)
	}
}

// caller authenticates the request and returns the account identity.
// Writes a 401 and returns false when the token is missing or invalid.
func (c *Core) caller(w http.ResponseWriter, r *http.Request) (election.Identity, bool) {
	id, err := middleware.CallerIdentity(r, c.cfg.TokenSecret)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid bearer token required")
		return "", false
	}
	return id, true
}
