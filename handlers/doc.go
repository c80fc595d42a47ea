// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers implements the HTTP handlers: account and registration
// management, election lifecycle, vote casting, and result/report queries.
// Every handler serializes engine access through one shared mutex and maps
// engine sentinels to HTTP statuses in a single place.
package handlers
