package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	l, err := LoadConfig("")
	require.NoError(t, err)

	cf := l.Config()
	require.Equal(t, DriverSqlite, cf.DbDriver)
	require.Equal(t, "restaurante.db", cf.SqlitePath)
	require.Equal(t, "info", cf.LogLevel)
	require.True(t, cf.ClearScreen)
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	l, err := LoadConfig(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	require.Equal(t, DriverSqlite, l.Config().DbDriver)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "DB_DRIVER=postgres\nPOSTGRES_HOST=db\nPOSTGRES_DB=lab\nLOG_LEVEL=debug\nCLEAR_SCREEN=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l, err := LoadConfig(path)
	require.NoError(t, err)

	cf := l.Config()
	require.Equal(t, DriverPostgres, cf.DbDriver)
	require.Equal(t, "db", cf.DbHost)
	require.Equal(t, "lab", cf.DbName)
	require.Equal(t, "5432", cf.DbPort)
	require.Equal(t, "debug", cf.LogLevel)
	require.False(t, cf.ClearScreen)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	l, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "warn", l.Config().LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cf      Config
		wantErr bool
	}{
		{name: "sqlite ok", cf: Config{DbDriver: DriverSqlite, SqlitePath: ":memory:"}},
		{name: "sqlite without path", cf: Config{DbDriver: DriverSqlite}, wantErr: true},
		{name: "postgres ok", cf: Config{DbDriver: DriverPostgres, DbHost: "localhost", DbName: "lab"}},
		{name: "postgres without host", cf: Config{DbDriver: DriverPostgres, DbName: "lab"}, wantErr: true},
		{name: "mysql ok", cf: Config{DbDriver: DriverMysql, MysqlDsn: "root:pw@tcp(localhost:3306)/lab?parseTime=True"}},
		{name: "mysql without dsn", cf: Config{DbDriver: DriverMysql}, wantErr: true},
		{name: "unknown driver", cf: Config{DbDriver: "oracle"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cf.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
