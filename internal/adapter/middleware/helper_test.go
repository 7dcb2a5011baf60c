package middleware

import (
	"strings"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	valid := []string{
		"550e8400-e29b-41d4-a716-446655440000",     // uuid v4
		strings.Repeat("a", 32),                    // 32-hex
		"  550e8400-e29b-41d4-a716-446655440000  ", // trimmed
		"3F9A6A1B3D544FBE8B3A6B3E8D6B2C88",         // lowercased before match
	}
	for _, s := range valid {
		if !validReqID(s) {
			t.Errorf("validReqID(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "deadbeef", "not-a-uuid", strings.Repeat("g", 32)}
	for _, s := range invalid {
		if validReqID(s) {
			t.Errorf("validReqID(%q) = true, want false", s)
		}
	}
}

func TestParseAxRequestAt(t *testing.T) {
	// epoch seconds
	got, err := parseAxRequestAt("1736123456")
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	if got.Unix() != 1736123456 {
		t.Fatalf("epoch seconds = %v", got)
	}

	// epoch milliseconds
	got, err = parseAxRequestAt("1736123456789")
	if err != nil {
		t.Fatalf("epoch ms: %v", err)
	}
	if got.UnixMilli() != 1736123456789 {
		t.Fatalf("epoch ms = %v", got)
	}

	// RFC3339 with zone, normalized to UTC
	got, err = parseAxRequestAt("2026-08-30T10:00:00+03:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if got.Location() != time.UTC || got.Hour() != 7 {
		t.Fatalf("rfc3339 normalized = %v", got)
	}

	// rejected inputs
	for _, s := range []string{"", "not-a-time", "2026-08-30T10:00:00"} {
		if _, err := parseAxRequestAt(s); err == nil {
			t.Errorf("parseAxRequestAt(%q): expected error", s)
		}
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/drens", "abc")
	want := "idemp:feffi:post:/drens:abc"
	if got != want {
		t.Fatalf("buildKey = %q, want %q", got, want)
	}
}
