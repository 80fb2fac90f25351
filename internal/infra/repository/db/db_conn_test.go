package db

import (
	"testing"

	"github.com/RoyceAzure/lab/restaurant/internal/config"
	"github.com/stretchr/testify/require"
)

func TestGetSqliteConn(t *testing.T) {
	db, err := GetSqliteConn(":memory:")
	require.NoError(t, err)
	require.NotNil(t, db)

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	require.Equal(t, 1, fk)
}

func TestOpen(t *testing.T) {
	db, err := Open(&config.Config{DbDriver: config.DriverSqlite, SqlitePath: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, NewDbDao(db).InitMigrate())
	// 冪等性
	require.NoError(t, NewDbDao(db).InitMigrate())

	_, err = Open(&config.Config{DbDriver: "oracle"})
	require.Error(t, err)
}
