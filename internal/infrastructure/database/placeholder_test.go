package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	query := "SELECT * FROM tickets WHERE status = ? AND title <> 'why?' AND priority = ?"

	tests := []struct {
		name    string
		dialect dialect
		want    string
	}{
		{"sqlite keeps markers", sqliteDialect{}, query},
		{"mysql keeps markers", mysqlDialect{}, query},
		{"postgres numbers markers", postgresDialect{},
			"SELECT * FROM tickets WHERE status = $1 AND title <> 'why?' AND priority = $2"},
		{"sqlserver names markers", sqlServerDialect{},
			"SELECT * FROM tickets WHERE status = @p1 AND title <> 'why?' AND priority = @p2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dialect.Rebind(query, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRebind_EscapedQuoteInLiteral(t *testing.T) {
	got, err := postgresDialect{}.Rebind("UPDATE tickets SET title = 'it''s ?' WHERE id = ?", 1)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE tickets SET title = 'it''s ?' WHERE id = $1", got)
}

func TestRebind_CountMismatch(t *testing.T) {
	for _, d := range []dialect{sqliteDialect{}, postgresDialect{}, sqlServerDialect{}, mysqlDialect{}} {
		_, err := d.Rebind("SELECT * FROM users WHERE id = ? AND active = ?", 1)
		assert.Error(t, err, d.Backend())

		_, err = d.Rebind("SELECT * FROM users", 1)
		assert.Error(t, err, d.Backend())
	}
}

func TestInsertQuery(t *testing.T) {
	insert := "INSERT INTO tickets (title) VALUES (?)"

	q, returnsID := postgresDialect{}.InsertQuery(insert)
	assert.True(t, returnsID)
	assert.Equal(t, insert+" RETURNING id", q)

	q, returnsID = postgresDialect{}.InsertQuery(insert + " RETURNING id")
	assert.True(t, returnsID)
	assert.Equal(t, insert+" RETURNING id", q)

	q, returnsID = sqlServerDialect{}.InsertQuery(insert + ";")
	assert.True(t, returnsID)
	assert.Equal(t, "SET NOCOUNT ON; "+insert+"; SELECT CAST(SCOPE_IDENTITY() AS BIGINT) AS id", q)

	for _, d := range []dialect{sqliteDialect{}, mysqlDialect{}} {
		q, returnsID = d.InsertQuery(insert)
		assert.False(t, returnsID)
		assert.Equal(t, insert, q)
	}
}

func TestIsInsert(t *testing.T) {
	assert.True(t, isInsert("  insert into users (username) values (?)"))
	assert.True(t, isInsert("INSERT INTO users DEFAULT VALUES"))
	assert.False(t, isInsert("UPDATE users SET active = 0"))
	assert.False(t, isInsert("SELECT 1"))
}

func TestParseBackend(t *testing.T) {
	cases := []struct {
		in   string
		want Backend
		ok   bool
	}{
		{"", BackendSQLite, true},
		{"sqlite", BackendSQLite, true},
		{"postgresql", BackendPostgres, true},
		{"Postgres", BackendPostgres, true},
		{"mssql", BackendSQLServer, true},
		{"azure-sql", BackendSQLServer, true},
		{"mysql", BackendMySQL, true},
		{"oracle", BackendSQLite, false},
	}
	for _, c := range cases {
		got, ok := ParseBackend(c.in)
		assert.Equal(t, c.want, got, c.in)
		assert.Equal(t, c.ok, ok, c.in)
	}
}
