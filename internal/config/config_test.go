package config

import (
	"strings"
	"testing"
)

func TestLoad_Default(t *testing.T) {
	t.Setenv(EnvDatabasePath, "")

	cfg := Load("")
	if cfg.DatabasePath != DefaultDatabasePath {
		t.Errorf("database path = %s", cfg.DatabasePath)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(EnvDatabasePath, "/data/apis.db")

	cfg := Load("")
	if cfg.DatabasePath != "/data/apis.db" {
		t.Errorf("database path = %s", cfg.DatabasePath)
	}
}

func TestLoad_FlagWinsOverEnvironment(t *testing.T) {
	t.Setenv(EnvDatabasePath, "/data/apis.db")

	cfg := Load("/flag/apis.db")
	if cfg.DatabasePath != "/flag/apis.db" {
		t.Errorf("database path = %s", cfg.DatabasePath)
	}
}

func TestDatabaseNotFoundError(t *testing.T) {
	err := &DatabaseNotFoundError{Path: "/missing/apis.db"}

	msg := err.Error()
	if !strings.HasPrefix(msg, "Search database not found: /missing/apis.db") {
		t.Errorf("message = %q", msg)
	}
	if !strings.Contains(msg, RebuildCommand) {
		t.Errorf("rebuild command missing: %q", msg)
	}
}
