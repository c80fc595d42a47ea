// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "time"

// DateLayout is the human date-time format accepted for election windows.
const DateLayout = "02-01-2006 15:04"

// ParseDate parses a "dd-mm-YYYY HH:MM" string as UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
