/*
Package config resolves the location of the search database artifact and
related settings.

The database is a read-only SQLite file built by the 'index' subcommand from
an Authlete OpenAPI document. Resolution order for its path:

 1. explicit --db flag
 2. AUTHLETE_SEARCH_DB environment variable
 3. resources/authlete_apis.db relative to the working directory
*/
package config

import (
	"os"
	"path/filepath"
)

// DefaultDatabasePath is where the index subcommand writes the search
// database and where the server looks for it by default.
const DefaultDatabasePath = "resources/authlete_apis.db"

// EnvDatabasePath overrides the database location when set.
const EnvDatabasePath = "AUTHLETE_SEARCH_DB"

// RebuildCommand is the command that regenerates the search database. It is
// included in not-found errors so the remediation is actionable.
const RebuildCommand = "authlete-mcp index --spec <openapi.yaml>"

// Config holds runtime settings for the search server.
type Config struct {
	// DatabasePath is the location of the SQLite search database.
	DatabasePath string

	// HistoryPath is the location of the search analytics database.
	// Empty disables analytics recording.
	HistoryPath string
}

// Load builds a Config from the environment and the given flag value.
// flagPath wins over the environment; both win over the default.
func Load(flagPath string) *Config {
	dbPath := DefaultDatabasePath
	if env := os.Getenv(EnvDatabasePath); env != "" {
		dbPath = env
	}
	if flagPath != "" {
		dbPath = flagPath
	}

	return &Config{
		DatabasePath: dbPath,
		HistoryPath:  defaultHistoryPath(),
	}
}

// defaultHistoryPath returns ~/.authlete-mcp/history.db, or empty when the
// home directory cannot be determined (analytics then stay disabled).
func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".authlete-mcp", "history.db")
}
