package cron

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.running {
		t.Error("New() cron should not be running")
	}
	if c.location == nil {
		t.Error("New() cron should have a location")
	}
}

func TestNewWithLocation(t *testing.T) {
	c := NewWithLocation(time.UTC)
	if c.location != time.UTC {
		t.Errorf("NewWithLocation() location = %v, want UTC", c.location)
	}
}

func TestAddFunc(t *testing.T) {
	c := New()

	if err := c.AddFunc("* * * * * *", func() {}, "test-job"); err != nil {
		t.Fatalf("AddFunc() error = %v", err)
	}

	entries := c.Entries()
	if len(entries) != 1 {
		t.Fatalf("Entries() length = %d, want 1", len(entries))
	}
	if entries[0].Name != "test-job" {
		t.Errorf("entry name = %q, want %q", entries[0].Name, "test-job")
	}
}

func TestAddFuncDuplicateName(t *testing.T) {
	c := New()

	if err := c.AddFunc("* * * * * *", func() {}, "dup"); err != nil {
		t.Fatalf("AddFunc() error = %v", err)
	}
	if err := c.AddFunc("* * * * * *", func() {}, "dup"); err != ErrDuplicateJob {
		t.Errorf("AddFunc() duplicate error = %v, want ErrDuplicateJob", err)
	}
}

func TestStartStopIdempotent(t *testing.T) {
	c := New()
	c.Start()
	c.Start()
	if !c.running {
		t.Error("cron should be running after Start()")
	}
	c.Stop()
	c.Stop()
	if c.running {
		t.Error("cron should not be running after Stop()")
	}
}
