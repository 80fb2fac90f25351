package db

import (
	"fmt"
	"strings"

	"github.com/RoyceAzure/lab/restaurant/internal/config"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		// 終端機畫面不輸出 sql log
		Logger: logger.Default.LogMode(logger.Silent),
	}
}

func GetDbConn(dbname, host, port, user, pas string) (*gorm.DB, error) {
	// 資料來源名稱 (DSN)
	dsn := fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable", user, pas, host, port, dbname)

	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetSqliteConn opens a sqlite file, or a private in-memory database for ":memory:".
// The pool is pinned to one connection: single writer, and in-memory data lives per connection.
func GetSqliteConn(path string) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// GetMysqlConn dsn 需帶 parseTime=True, 否則 datetime 欄位無法掃描成 time.Time
func GetMysqlConn(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), gormConfig())
}

func Open(cf *config.Config) (*gorm.DB, error) {
	switch cf.DbDriver {
	case config.DriverPostgres:
		return GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	case config.DriverSqlite:
		return GetSqliteConn(cf.SqlitePath)
	case config.DriverMysql:
		return GetMysqlConn(cf.MysqlDsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cf.DbDriver)
	}
}
