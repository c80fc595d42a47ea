// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nvillanueva/electoral/election"
)

// Store persists the engine state as one JSON snapshot row. The engine is
// authoritative in memory; the snapshot exists so a restart resumes where
// the last successful mutation left off.
type Store struct {
	db *sql.DB
}

// DriverFor maps the configured database type to its sql driver name.
func DriverFor(databaseType string) (string, error) {
	switch databaseType {
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// New wraps an open connection. Call CreateSchema before first use.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateSchema creates the snapshot table. Safe to call multiple times -
// uses IF NOT EXISTS. The statement is portable across postgres and
// sqlite, as are the $1 placeholders used below.
func (s *Store) CreateSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS engine_state (
		    id INTEGER PRIMARY KEY CHECK (id = 1),
		    payload TEXT NOT NULL,
		    updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save overwrites the snapshot row with the given state.
func (s *Store) Save(state election.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO engine_state (id, payload, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET payload = $1, updated_at = $2
	`, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Load reads the snapshot row. The second return value is false when no
// snapshot has been written yet.
func (s *Store) Load() (election.State, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM engine_state WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return election.State{}, false, nil
	}
	if err != nil {
		return election.State{}, false, fmt.Errorf("failed to load state: %w", err)
	}
	var state election.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return election.State{}, false, fmt.Errorf("failed to decode state: %w", err)
	}
	return state, true, nil
}
