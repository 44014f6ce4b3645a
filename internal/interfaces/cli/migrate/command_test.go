package migrate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dbPath string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database:\n  type: sqlite\n  path: " + dbPath + "\n" +
		"auth:\n  password:\n    bcrypt_cost: 4\n" +
		"logger:\n  output_path: stderr\n" +
		"bootstrap:\n  admin_username: admin\n  admin_email: admin@company.com\n  admin_password: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitDB_IsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tickets.db")
	cfgPath := writeConfig(t, dbPath)

	run := func() string {
		var out bytes.Buffer
		cmd := NewInitDBCommand()
		cmd.SetArgs([]string{"--config", cfgPath})
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	first := run()
	assert.Contains(t, first, "Created super admin")
	assert.Contains(t, first, "Generated password:")
	assert.FileExists(t, dbPath)

	second := run()
	assert.NotContains(t, second, "Created super admin")
	assert.Contains(t, second, "Schema is up to date")
}

func TestStatus_ReportsSQLite(t *testing.T) {
	cfgPath := writeConfig(t, filepath.Join(t.TempDir(), "tickets.db"))

	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetArgs([]string{"status", "--config", cfgPath})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Active backend:     sqlite")
	assert.Contains(t, out.String(), "Connection:         ok")
}
