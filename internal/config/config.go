package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMysql    = "mysql"
)

type Config struct {
	DbDriver    string `mapstructure:"DB_DRIVER"`
	SqlitePath  string `mapstructure:"SQLITE_PATH"`
	DbName      string `mapstructure:"POSTGRES_DB"`
	DbHost      string `mapstructure:"POSTGRES_HOST"`
	DbPort      string `mapstructure:"POSTGRES_PORT"`
	DbUser      string `mapstructure:"POSTGRES_USER"`
	DbPas       string `mapstructure:"POSTGRES_PASSWORD"`
	MysqlDsn    string `mapstructure:"MYSQL_DSN"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFile     string `mapstructure:"LOG_FILE"`
	SeedFile    string `mapstructure:"SEED_FILE"`
	ClearScreen bool   `mapstructure:"CLEAR_SCREEN"`
}

var defaults = map[string]any{
	"DB_DRIVER":         DriverSqlite,
	"SQLITE_PATH":       "restaurante.db",
	"POSTGRES_DB":       "restaurant",
	"POSTGRES_HOST":     "localhost",
	"POSTGRES_PORT":     "5432",
	"POSTGRES_USER":     "postgres",
	"POSTGRES_PASSWORD": "",
	"MYSQL_DSN":         "",
	"LOG_LEVEL":         "info",
	"LOG_FILE":          "restaurante.log",
	"SEED_FILE":         "",
	"CLEAR_SCREEN":      true,
}

/*
Loader 持有自己的 viper instance
不使用全域 singleton, 由 appcontext 負責傳遞
*/
type Loader struct {
	v    *viper.Viper
	path string
	mu   sync.RWMutex
	cf   *Config
}

// LoadConfig reads path when it exists; environment variables always override the file.
// An empty or missing path yields defaults plus environment.
func LoadConfig(path string) (*Loader, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	l := &Loader{v: v}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if strings.HasSuffix(path, ".env") {
				v.SetConfigType("env")
			}
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			l.path = path
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	cf, err := l.unmarshal()
	if err != nil {
		return nil, err
	}
	l.cf = cf
	return l, nil
}

func (l *Loader) unmarshal() (*Config, error) {
	cf := &Config{}
	if err := l.v.Unmarshal(cf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return cf, nil
}

func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cf
}

// Watch 監聽設定檔異動, 重新讀取成功後呼叫 fn
// 沒有設定檔時不做任何事
func (l *Loader) Watch(fn func(*Config)) {
	if l.path == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cf, err := l.unmarshal()
		if err != nil {
			return
		}
		l.mu.Lock()
		l.cf = cf
		l.mu.Unlock()
		if fn != nil {
			fn(cf)
		}
	})
	l.v.WatchConfig()
}

func (c *Config) Validate() error {
	switch c.DbDriver {
	case DriverSqlite:
		if c.SqlitePath == "" {
			return errors.New("SQLITE_PATH is required for sqlite driver")
		}
	case DriverPostgres:
		if c.DbHost == "" || c.DbName == "" {
			return errors.New("POSTGRES_HOST and POSTGRES_DB are required for postgres driver")
		}
	case DriverMysql:
		if c.MysqlDsn == "" {
			return errors.New("MYSQL_DSN is required for mysql driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DbDriver)
	}
	return nil
}
