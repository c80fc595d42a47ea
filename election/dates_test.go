// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"standard", "01-06-2026 09:30", time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC), false},
		{"end of year", "31-12-2026 23:59", time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC), false},
		{"iso order rejected", "2026-06-01 09:30", time.Time{}, true},
		{"missing time", "01-06-2026", time.Time{}, true},
		{"day out of range", "32-01-2026 09:30", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
