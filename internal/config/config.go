package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "GOAL"

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Goal   GoalConfig   `mapstructure:"goal"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	PublicDir       string        `mapstructure:"public_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type GoalConfig struct {
	Default string `mapstructure:"default"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig mirrors the log section of the config file.
type LogConfig struct {
	Level      string `mapstructure:"level"`     // trace, debug, info, warn, error
	JSON       bool   `mapstructure:"json"`      // raw JSON instead of console output
	Mode       string `mapstructure:"mode"`      // console, file, both
	FilePath   string `mapstructure:"file_path"` // used in file and both modes
	MaxSize    int    `mapstructure:"max_size"`  // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.public_dir", "public")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("goal.default", "Learn DevOps")

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.mode", "console")
	v.SetDefault("log.file_path", "logs/goal-server.log")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// findConfigFile looks for goal-server.{yaml,yml,json,toml} in the usual places.
func findConfigFile() string {
	searchPaths := []string{
		".",
		"./configs",
		"$HOME/.config/goal-server",
	}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, dir := range searchPaths {
		for _, ext := range extensions {
			f := os.ExpandEnv(filepath.Join(dir, "goal-server."+ext))
			if _, err := os.Stat(f); err == nil {
				return f
			}
		}
	}
	return ""
}

// Load reads defaults, an optional config file and GOAL_* environment
// variables, in increasing order of precedence. An empty path triggers the
// default search, and finding nothing there is not an error. An explicit
// path that cannot be read is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: decode defaults: %v", err))
	}
	return &cfg
}
