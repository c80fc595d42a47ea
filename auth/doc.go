// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth is the caller identity provider: it mints opaque account
// identities and binds them to signed bearer tokens. The engine never sees
// tokens, only identities.
package auth
