// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report builds read-only reports over a closed election: the
// voter roster joined with profiles, turnout percentages, and the ranked
// outcome with tie detection. It depends only on the Reader capability,
// never on engine storage.
package report
