// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db persists engine state snapshots through database/sql, backed
// by postgres (lib/pq) or sqlite (modernc.org/sqlite) depending on
// configuration.
package db
