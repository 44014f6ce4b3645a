package database

import (
	"strconv"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"helpdesk/internal/shared/config"
)

type postgresDialect struct{}

func (postgresDialect) Backend() Backend {
	return BackendPostgres
}

func (postgresDialect) Rebind(query string, nargs int) (string, error) {
	return bindPlaceholders(query, nargs, func(n int) string {
		return "$" + strconv.Itoa(n)
	})
}

func (postgresDialect) InsertQuery(query string) (string, bool) {
	if strings.Contains(strings.ToUpper(query), "RETURNING") {
		return query, true
	}
	return strings.TrimRight(strings.TrimSpace(query), ";") + " RETURNING id", true
}

func (postgresDialect) Dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	return postgres.New(postgres.Config{
		DSN: cfg.PostgresDSN(),
	})
}
