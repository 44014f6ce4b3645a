package database

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"helpdesk/internal/shared/config"
)

type mysqlDialect struct{}

func (mysqlDialect) Backend() Backend {
	return BackendMySQL
}

func (mysqlDialect) Rebind(query string, nargs int) (string, error) {
	return bindPlaceholders(query, nargs, nil)
}

func (mysqlDialect) InsertQuery(query string) (string, bool) {
	return query, false
}

func (mysqlDialect) Dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	return mysql.New(mysql.Config{
		DSN:                       cfg.MySQLDSN(),
		SkipInitializeWithVersion: true,
	})
}
