// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router defines the HTTP route table using Go 1.22+ method
// patterns.
package router
