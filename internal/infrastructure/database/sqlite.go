package database

import (
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/shared/config"
)

const memoryPath = ":memory:"

type sqliteDialect struct{}

func (sqliteDialect) Backend() Backend {
	return BackendSQLite
}

func (sqliteDialect) Rebind(query string, nargs int) (string, error) {
	return bindPlaceholders(query, nargs, nil)
}

func (sqliteDialect) InsertQuery(query string) (string, bool) {
	return query, false
}

func (sqliteDialect) Dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	return sqlite.Open(sqliteDSN(cfg.Path))
}

// sqliteDSN enables foreign keys (needed for comment cascades) and a busy
// timeout on every connection.
func sqliteDSN(path string) string {
	if path == "" {
		path = memoryPath
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// ensureSQLiteDir creates the directory holding the database file.
func ensureSQLiteDir(path string) error {
	if path == "" || path == memoryPath || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
