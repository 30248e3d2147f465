package id

import (
	"strings"
	"testing"
)

func TestGetUUID(t *testing.T) {
	a := GetUUID()
	b := GetUUID()
	if a == b {
		t.Errorf("expected distinct UUIDs, got %s twice", a)
	}
	if len(a) != 36 {
		t.Errorf("expected 36-char UUID, got %d chars", len(a))
	}
}

func TestGetUUIDWithoutDashes(t *testing.T) {
	u := GetUUIDWithoutDashes()
	if strings.Contains(u, "-") {
		t.Errorf("expected no dashes, got %s", u)
	}
	if len(u) != 32 {
		t.Errorf("expected 32 chars, got %d", len(u))
	}
}

func TestShortId(t *testing.T) {
	if ShortId() == "" {
		t.Error("expected non-empty short id")
	}
}

func TestGetULID(t *testing.T) {
	u := GetULID()
	if len(u) != 26 {
		t.Errorf("expected 26-char ULID, got %d chars", len(u))
	}
}
