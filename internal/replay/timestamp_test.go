package replay

import (
	"testing"
)

func TestOffsetMs_BasicOffset(t *testing.T) {
	got, err := OffsetMs("2025-01-01T00:00:05Z", "2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("OffsetMs: %v", err)
	}
	if got != 5000 {
		t.Errorf("offset = %d, want 5000", got)
	}
}

func TestOffsetMs_TimezoneNormalization(t *testing.T) {
	// A bare timestamp is UTC; the result must match the explicit-Z form.
	tests := []struct {
		name    string
		event   string
		start   string
	}{
		{"both bare", "2025-01-01T00:00:05", "2025-01-01T00:00:00"},
		{"both explicit", "2025-01-01T00:00:05Z", "2025-01-01T00:00:00Z"},
		{"mixed bare event", "2025-01-01T00:00:05", "2025-01-01T00:00:00Z"},
		{"mixed bare start", "2025-01-01T00:00:05Z", "2025-01-01T00:00:00"},
		{"offset suffix", "2025-01-01T00:00:05+00:00", "2025-01-01T00:00:00+00:00"},
		{"short offset", "2025-01-01T00:00:05+00", "2025-01-01T00:00:00+00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OffsetMs(tt.event, tt.start)
			if err != nil {
				t.Fatalf("OffsetMs(%q, %q): %v", tt.event, tt.start, err)
			}
			if got != 5000 {
				t.Errorf("offset = %d, want 5000", got)
			}
		})
	}
}

func TestOffsetMs_FractionalSeconds(t *testing.T) {
	got, err := OffsetMs("2025-01-01T00:00:01.250Z", "2025-01-01T00:00:00.000Z")
	if err != nil {
		t.Fatalf("OffsetMs: %v", err)
	}
	if got != 1250 {
		t.Errorf("offset = %d, want 1250", got)
	}
}

func TestOffsetMs_SpaceSeparator(t *testing.T) {
	// Postgres-style timestamps use a space between date and time.
	got, err := OffsetMs("2025-01-01 00:00:05", "2025-01-01 00:00:00")
	if err != nil {
		t.Fatalf("OffsetMs: %v", err)
	}
	if got != 5000 {
		t.Errorf("offset = %d, want 5000", got)
	}
}

func TestOffsetMs_NegativeOffset(t *testing.T) {
	// Events recorded before session start yield negative offsets; the
	// caller decides what to do with them.
	got, err := OffsetMs("2024-12-31T23:59:59Z", "2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("OffsetMs: %v", err)
	}
	if got != -1000 {
		t.Errorf("offset = %d, want -1000", got)
	}
}

func TestOffsetMs_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		event string
		start string
	}{
		{"garbage event", "not-a-time", "2025-01-01T00:00:00Z"},
		{"garbage start", "2025-01-01T00:00:05Z", "nope"},
		{"empty event", "", "2025-01-01T00:00:00Z"},
		{"empty start", "2025-01-01T00:00:05Z", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := OffsetMs(tt.event, tt.start); err == nil {
				t.Errorf("OffsetMs(%q, %q): expected error", tt.event, tt.start)
			}
		})
	}
}
