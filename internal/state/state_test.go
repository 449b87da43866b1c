package state

import (
	"testing"
	"time"
)

func TestLoadMissingReturnsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s := Load()
	if s.LastFolder != "" || s.LastOutput != "" {
		t.Errorf("Load() = %+v, want empty", s)
	}
}

func TestRemember(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	before := time.Now().Add(-time.Second)
	if err := Remember("/work/proj", "/tmp/graph.dot"); err != nil {
		t.Fatal(err)
	}

	s := Load()
	if s.LastFolder != "/work/proj" {
		t.Errorf("LastFolder = %q", s.LastFolder)
	}
	if s.LastOutput != "/tmp/graph.dot" {
		t.Errorf("LastOutput = %q", s.LastOutput)
	}
	if s.UpdatedAt.Before(before) {
		t.Errorf("UpdatedAt = %v, not refreshed", s.UpdatedAt)
	}
}

func TestRememberOverwrites(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Remember("/first", "/first.dot"); err != nil {
		t.Fatal(err)
	}
	if err := Remember("/second", "/second.dot"); err != nil {
		t.Fatal(err)
	}

	s := Load()
	if s.LastFolder != "/second" || s.LastOutput != "/second.dot" {
		t.Errorf("Load() = %+v, want the second run", s)
	}
}
