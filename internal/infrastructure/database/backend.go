package database

import "strings"

// Backend identifies one of the supported SQL engines.
type Backend string

const (
	BackendSQLite    Backend = "sqlite"
	BackendPostgres  Backend = "postgres"
	BackendSQLServer Backend = "sqlserver"
	BackendMySQL     Backend = "mysql"
)

// ParseBackend maps a configured database type, including its aliases, to a
// Backend. Unknown values select SQLite and report ok=false.
func ParseBackend(s string) (b Backend, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return BackendSQLite, true
	case "postgres", "postgresql", "pg":
		return BackendPostgres, true
	case "sqlserver", "mssql", "azure-sql", "azuresql":
		return BackendSQLServer, true
	case "mysql", "mariadb":
		return BackendMySQL, true
	default:
		return BackendSQLite, false
	}
}

func (b Backend) String() string {
	return string(b)
}
