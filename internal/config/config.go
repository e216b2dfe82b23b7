// Package config resolves runtime settings from defaults, an optional
// cpe.yaml, CPE_* environment variables and command-line flags, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/store"
)

// Keys understood in the config file and as CPE_<KEY> variables
// (dots become underscores).
const (
	KeyDB          = "db"
	KeyEndpoint    = "endpoint"
	KeyTimeout     = "timeout"
	KeyMinLoading  = "min_loading"
	KeyAutoAdvance = "auto_advance"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyLogFile     = "log.file"
)

// Config is the resolved configuration.
type Config struct {
	// DB is the SQLite database path.
	DB string

	// Endpoint is the base URL the evaluation service is mounted under.
	Endpoint string

	// Timeout bounds one evaluation request.
	Timeout time.Duration

	// MinLoading is the shortest time the results loading view is shown.
	MinLoading time.Duration

	// AutoAdvance is the pause before a completed quiz step moves on.
	AutoAdvance time.Duration

	Log LogConfig
}

type LogConfig struct {
	Level  string
	Format string
	// File defaults to cpe.log next to the database.
	File string
}

// New returns a viper instance with defaults and environment binding set
// up. Callers bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	def := evaluation.DefaultConfig()

	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyEndpoint, def.BaseURL)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyMinLoading, 10*time.Second)
	v.SetDefault(KeyAutoAdvance, time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix("CPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and returns the resolved, validated config.
// An explicit configFile must exist; otherwise a missing cpe.yaml is fine.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("cpe")
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DB:          v.GetString(KeyDB),
		Endpoint:    v.GetString(KeyEndpoint),
		Timeout:     v.GetDuration(KeyTimeout),
		MinLoading:  v.GetDuration(KeyMinLoading),
		AutoAdvance: v.GetDuration(KeyAutoAdvance),
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   v.GetString(KeyLogFile),
		},
	}

	if cfg.DB == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DB = p
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(filepath.Dir(cfg.DB), "cpe.log")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the endpoint and durations.
func (c Config) Validate() error {
	var errs []error
	if err := c.Evaluation().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.MinLoading < 0 {
		errs = append(errs, fmt.Errorf("min_loading must not be negative, got %s", c.MinLoading))
	}
	if c.AutoAdvance < 0 {
		errs = append(errs, fmt.Errorf("auto_advance must not be negative, got %s", c.AutoAdvance))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Evaluation returns the evaluation client settings.
func (c Config) Evaluation() evaluation.Config {
	ec := evaluation.DefaultConfig()
	ec.BaseURL = c.Endpoint
	ec.Timeout = c.Timeout
	return ec
}

func searchPaths() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "cpe"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "cpe"))
	}
	return append(dirs, ".")
}
