// Package config holds trailmap settings loaded through viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/trailmap/internal/scheduler"
	"github.com/spf13/viper"
)

const (
	BackendSQLite = "sqlite"
	BackendDir    = "dir"

	// EnvPrefix is prepended to upper-cased keys, e.g. TRAILMAP_STORE_DB_PATH.
	EnvPrefix = "TRAILMAP"
)

// Config is the full settings tree.
type Config struct {
	Store    StoreConfig    `mapstructure:"store" yaml:"store"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Schedule ScheduleConfig `mapstructure:"schedule" yaml:"schedule"`
}

// StoreConfig selects where projects and tasks live.
type StoreConfig struct {
	// Backend is "sqlite" or "dir".
	Backend string `mapstructure:"backend" yaml:"backend"`
	DBPath  string `mapstructure:"db_path" yaml:"db_path"`
	// RootDir holds one folder per project when Backend is "dir".
	RootDir string `mapstructure:"root_dir" yaml:"root_dir"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ScheduleConfig is the repetition interval table in days.
type ScheduleConfig struct {
	Intervals []int `mapstructure:"intervals" yaml:"intervals"`
}

// RepetitionSchedule converts the configured table for the scheduler.
func (c *Config) RepetitionSchedule() scheduler.Schedule {
	return scheduler.Schedule{Intervals: append([]int(nil), c.Schedule.Intervals...)}
}

// Default returns the built-in settings.
func Default() *Config {
	dir := ConfigDir()
	return &Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
			DBPath:  filepath.Join(dir, "trailmap.db"),
			RootDir: filepath.Join(dir, "projects"),
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Schedule: ScheduleConfig{
			Intervals: scheduler.DefaultSchedule().Intervals,
		},
	}
}

// SetDefaults registers defaults on v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("store.backend", defaults.Store.Backend)
	v.SetDefault("store.db_path", defaults.Store.DBPath)
	v.SetDefault("store.root_dir", defaults.Store.RootDir)

	v.SetDefault("server.addr", defaults.Server.Addr)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetDefault("schedule.intervals", defaults.Schedule.Intervals)
}

// New returns a viper instance with defaults, env binding and, when present,
// the config file. An explicit path must exist; the default file is optional.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		return v, nil
	}

	if _, err := os.Stat(ConfigFile()); err != nil {
		return v, nil
	}
	v.SetConfigFile(ConfigFile())
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

// Load reads the configuration from v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the trailmap home, ~/.trailmap.
func ConfigDir() string {
	if dir := os.Getenv("TRAILMAP_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trailmap"
	}
	return filepath.Join(home, ".trailmap")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
