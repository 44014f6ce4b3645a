package database

import (
	"gorm.io/gorm"

	"helpdesk/internal/shared/config"
)

// dialect is the per-backend part of a Store.
type dialect interface {
	Backend() Backend
	// Rebind converts '?' placeholders to the native form.
	Rebind(query string, nargs int) (string, error)
	// InsertQuery rewrites an INSERT so the new id can be read back.
	// returnsID reports whether the rewritten statement yields the id as a
	// single-row result instead of through LastInsertId.
	InsertQuery(query string) (rewritten string, returnsID bool)
	Dialector(cfg *config.DatabaseConfig) gorm.Dialector
}

func dialectFor(b Backend) dialect {
	switch b {
	case BackendPostgres:
		return postgresDialect{}
	case BackendSQLServer:
		return sqlServerDialect{}
	case BackendMySQL:
		return mysqlDialect{}
	default:
		return sqliteDialect{}
	}
}
