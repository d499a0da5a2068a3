// Package config provides application configuration loaded from environment
// variables and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
	"github.com/ahmed-elbehidy/bill-management-system/validation"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultConfigFile is read when present and BILLS_CONFIG is unset.
const DefaultConfigFile = "config.yaml"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
	Log      LogConfig
	Menu     []models.MenuItem
}

// ServerConfig holds the local UI listener settings.
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// Addr returns host:port.
func (s ServerConfig) Addr() string { return s.Host + ":" + s.Port }

// DatabaseConfig holds the sqlite file settings.
type DatabaseConfig struct {
	Path  string
	Debug bool
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev bool
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("database.path", "bills.db")
	v.SetDefault("database.debug", false)
	v.SetDefault("app.dev", false)
	v.SetDefault("log.level", "info")
}

// Load reads configuration. Precedence: env var > config file > default.
// Env names are the upper-cased keys with dots replaced by underscores
// (SERVER_PORT, DATABASE_PATH, ...); PORT and DB_DEBUG are accepted too.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("database.debug", "DATABASE_DEBUG", "DB_DEBUG")
	_ = v.BindEnv("app.dev", "APP_DEV", "DEV")

	if path := os.Getenv("BILLS_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	} else if fi, err := os.Stat(DefaultConfigFile); err == nil && !fi.IsDir() {
		v.SetConfigFile(DefaultConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", DefaultConfigFile)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("server.host"),
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetInt("server.read_timeout"),
			WriteTimeout: v.GetInt("server.write_timeout"),
			IdleTimeout:  v.GetInt("server.idle_timeout"),
		},
		Database: DatabaseConfig{
			Path:  v.GetString("database.path"),
			Debug: v.GetBool("database.debug"),
		},
		App: AppConfig{Dev: v.GetBool("app.dev")},
		Log: LogConfig{Level: v.GetString("log.level")},
	}

	var menu []models.MenuItem
	if err := v.UnmarshalKey("menu", &menu); err != nil {
		return nil, errors.Wrap(err, "invalid menu")
	}
	if len(menu) == 0 {
		menu = models.DefaultMenu()
	}
	if err := ValidateMenu(menu); err != nil {
		return nil, err
	}
	cfg.Menu = menu
	return cfg, nil
}

// ValidateMenu checks that every item has a name, names are unique and prices
// are not negative.
func ValidateMenu(items []models.MenuItem) error {
	viol := validation.Violations{}
	seen := map[string]bool{}
	for i, it := range items {
		field := fmt.Sprintf("menu[%d]", i)
		validation.Required(field+".name", it.Name, viol)
		validation.Unique(field+".name", it.Name, seen, viol)
		validation.NonNegativeFloat(field+".price", it.UnitPrice, viol)
	}
	if viol.Empty() {
		return nil
	}
	keys := make([]string, 0, len(viol))
	for k := range viol {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+viol[k])
	}
	return errors.Errorf("invalid menu: %s", strings.Join(parts, ", "))
}
