// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the electoral API server.

Electoral manages the full lifecycle of administrator-supervised
elections: user registration with FIFO review queues, per-election
voter/candidate admission, a timed voting window with one-vote-per-voter
tallying, memoized final results, and read-only reporting (participation
percentages and tie-aware rankings).

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=elections.db TOKEN_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3419 -d elections.db -t sqlite --token-secret ...

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: the core lifecycle engine (registry, admission, tally, results)
  - report: read-only reporting aggregator
  - handlers: HTTP request handlers (registry, elections, voting, reports)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, bearer identity extraction
  - models: request/response types
  - auth: identity issuance and token validation
  - db: engine state snapshot persistence (postgres or sqlite)
  - cliparse: configuration parsing

All engine access is serialized behind a single mutex: at most one
operation is in flight at a time, so the engine itself stays free of
locking and every call either completes or fails atomically.

See package documentation for each component.
*/
package main
