package database

import (
	"strconv"
	"strings"

	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"

	"helpdesk/internal/shared/config"
)

type sqlServerDialect struct{}

func (sqlServerDialect) Backend() Backend {
	return BackendSQLServer
}

func (sqlServerDialect) Rebind(query string, nargs int) (string, error) {
	return bindPlaceholders(query, nargs, func(n int) string {
		return "@p" + strconv.Itoa(n)
	})
}

// InsertQuery appends SCOPE_IDENTITY(), which only sees ids generated in
// the same batch.
func (sqlServerDialect) InsertQuery(query string) (string, bool) {
	q := strings.TrimRight(strings.TrimSpace(query), ";")
	return "SET NOCOUNT ON; " + q + "; SELECT CAST(SCOPE_IDENTITY() AS BIGINT) AS id", true
}

func (sqlServerDialect) Dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	return sqlserver.Open(cfg.SQLServerDSN())
}
