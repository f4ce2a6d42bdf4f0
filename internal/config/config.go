// Package config loads buildterm settings from defaults, an optional
// buildterm.yaml, .env files, BUILDTERM_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by the loader. Environment variables use the BUILDTERM_
// prefix with dots replaced by underscores (log.level -> BUILDTERM_LOG_LEVEL).
const (
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
	KeyExitDelay    = "exit.delay"
	KeyHistoryDSN   = "history.dsn"
	KeyHistoryLimit = "history.limit"
	KeyBackendURL   = "backend.url"
	KeyBackendToken = "backend.token"
	KeyServeAddr    = "serve.addr"
	KeyEnvironment  = "environment"
)

const (
	envPrefix = "BUILDTERM"
	fileName  = "buildterm"
)

// Config is the resolved configuration.
type Config struct {
	LogLevel     string
	LogFile      string
	ExitDelay    time.Duration
	HistoryDSN   string
	HistoryLimit int
	BackendURL   string
	BackendToken string
	ServeAddr    string
	Environment  string
}

// New returns a viper instance with defaults, the env binding and the
// config file search path set. With no dirs it searches
// $HOME/.config/buildterm and the working directory.
func New(dirs ...string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyExitDelay, time.Second)
	v.SetDefault(KeyHistoryDSN, "")
	v.SetDefault(KeyHistoryLimit, 500)
	v.SetDefault(KeyBackendURL, "")
	v.SetDefault(KeyBackendToken, "")
	v.SetDefault(KeyServeAddr, "127.0.0.1:8080")
	v.SetDefault(KeyEnvironment, "")

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if len(dirs) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".config", "buildterm"))
		}
		dirs = append(dirs, ".")
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv exports the variables of each .env file that exists into the
// process environment. Variables already set are left alone.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and decodes v.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return Decode(v)
}

// Decode converts the current values of v into a validated Config.
func Decode(v *viper.Viper) (Config, error) {
	c := Config{
		LogLevel:     v.GetString(KeyLogLevel),
		LogFile:      v.GetString(KeyLogFile),
		ExitDelay:    v.GetDuration(KeyExitDelay),
		HistoryDSN:   v.GetString(KeyHistoryDSN),
		HistoryLimit: v.GetInt(KeyHistoryLimit),
		BackendURL:   v.GetString(KeyBackendURL),
		BackendToken: v.GetString(KeyBackendToken),
		ServeAddr:    v.GetString(KeyServeAddr),
		Environment:  v.GetString(KeyEnvironment),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.ExitDelay < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyExitDelay, c.ExitDelay)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%s must not be negative, got %d", KeyHistoryLimit, c.HistoryLimit)
	}
	return nil
}

// Watch calls onChange with the re-decoded config every time the config
// file in use is written. It does nothing when no file was loaded.
func Watch(v *viper.Viper, onChange func(Config, error)) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(Decode(v))
	})
	v.WatchConfig()
	return true
}
