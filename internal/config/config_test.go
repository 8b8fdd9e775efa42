package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears every variable the package reads and returns args that point
// the dotenv and config lookups into an empty temp dir.
func isolate(t *testing.T) (dir string, args []string) {
	t.Helper()
	for _, k := range []string{"CONFIG", "DATABASE_DRIVER", "DATABASE_FILE", "DATABASE_DSN",
		"LOG_LEVEL", "LOG_FILE", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(k, "")
	}
	dir = t.TempDir()
	return dir, []string{"-env", filepath.Join(dir, ".env"), "-c", filepath.Join(dir, "config.json")}
}

func TestParseArgs_Defaults(t *testing.T) {
	_, args := isolate(t)

	opts, err := ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, CommandShell, opts.Command)
	assert.Equal(t, "sqlite", opts.Driver)
	assert.Equal(t, "comicdb.db", opts.DatabaseFile)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Equal(t, "admin", opts.AdminUsername)
	assert.Empty(t, opts.AdminPassword)
}

func TestParseArgs_Flags(t *testing.T) {
	_, args := isolate(t)
	args = append(args, "-cmd", "add-admin", "-d", "other.db", "-login", "root", "-password", "adminpw", "-log-level", "debug")

	opts, err := ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, CommandAddAdmin, opts.Command)
	assert.Equal(t, "other.db", opts.DatabaseFile)
	assert.Equal(t, "root", opts.AdminUsername)
	assert.Equal(t, "adminpw", opts.AdminPassword)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestParseArgs_JSONFileThenEnv(t *testing.T) {
	dir, args := isolate(t)
	cfg := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"database_file":"from-file.db","log_level":"warn","admin_username":"boss"}`), 0o600))
	t.Setenv("LOG_LEVEL", "error")

	opts, err := ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", opts.DatabaseFile)
	assert.Equal(t, "boss", opts.AdminUsername)
	assert.Equal(t, "error", opts.LogLevel, "environment wins over the config file")
}

func TestParseArgs_YAMLFile(t *testing.T) {
	dir, _ := isolate(t)
	cfg := filepath.Join(dir, "comickeeper.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("driver: postgres\ndatabase_dsn: postgres://localhost/comics\nlog_file: app.log\n"), 0o600))

	opts, err := ParseArgs([]string{"-env", filepath.Join(dir, ".env"), "-config", cfg})
	require.NoError(t, err)
	assert.Equal(t, "postgres", opts.Driver)
	assert.Equal(t, "postgres://localhost/comics", opts.DatabaseDSN)
	assert.Equal(t, "app.log", opts.LogFile)
}

func TestParseArgs_ConfigFromEnv(t *testing.T) {
	dir, _ := isolate(t)
	cfg := filepath.Join(dir, "elsewhere.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("database_file: elsewhere.db\n"), 0o600))
	t.Setenv("CONFIG", cfg)

	opts, err := ParseArgs([]string{"-env", filepath.Join(dir, ".env")})
	require.NoError(t, err)
	assert.Equal(t, "elsewhere.db", opts.DatabaseFile)
}

func TestParseArgs_DotEnv(t *testing.T) {
	dir, args := isolate(t)
	os.Unsetenv("ADMIN_PASSWORD")
	os.Unsetenv("DATABASE_FILE")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADMIN_PASSWORD=secret\nDATABASE_FILE=dotenv.db\n"), 0o600))

	opts, err := ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, "secret", opts.AdminPassword)
	assert.Equal(t, "dotenv.db", opts.DatabaseFile)
}

func TestParseArgs_BadConfigFile(t *testing.T) {
	dir, args := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600))

	_, err := ParseArgs(args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"shell on sqlite", Options{Command: CommandShell, Driver: "sqlite", DatabaseFile: "x.db"}, false},
		{"unknown command", Options{Command: "serve", Driver: "sqlite", DatabaseFile: "x.db"}, true},
		{"unknown driver", Options{Command: CommandShell, Driver: "oracle"}, true},
		{"postgres without dsn", Options{Command: CommandShell, Driver: "postgres"}, true},
		{"add-admin without password", Options{Command: CommandAddAdmin, Driver: "sqlite", DatabaseFile: "x.db", AdminUsername: "root"}, true},
		{"reset", Options{Command: CommandReset, Driver: "sqlite", DatabaseFile: "x.db"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
