// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides request logging, CORS, JSON helpers, and
// bearer-identity extraction shared by every handler.
package middleware
