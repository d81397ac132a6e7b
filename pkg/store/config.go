package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/weddingbook/pkg/wedding"
)

// Config keys.
const (
	KeyPath        = "path"
	KeyLogLevel    = "log-level"
	KeyKeepPending = "keep-pending"
	KeyDateLayout  = "date-layout"
)

// envKeyReplacer maps keep-pending onto WEDDINGBOOK_KEEP_PENDING.
var envKeyReplacer = strings.NewReplacer("-", "_")

// Config is what the rest of the program needs from the settings.
type Config interface {
	BasePath() string
}

// Settings is the resolved configuration.
type Settings struct {
	Path        string     `json:"path"`
	LogLevel    slog.Level `json:"logLevel"`
	KeepPending bool       `json:"keepPending"`
	DateLayout  string     `json:"dateLayout"`
}

// BasePath is the diskv directory.
func (s *Settings) BasePath() string {
	return s.Path
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPath, "~/.weddingbook.db")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyKeepPending, false)
	v.SetDefault(KeyDateLayout, wedding.LayoutCanonical)
}

// LoadConfig reads .weddingbook.yaml from $WEDDINGBOOK_CONFIG_PATH, the
// working directory or the home directory, with WEDDINGBOOK_* environment
// overrides. A missing file is not an error.
func LoadConfig() (*Settings, error) {
	v := viper.GetViper()
	SetDefaults(v)
	v.SetConfigName(".weddingbook") // .yaml is implicit
	v.SetEnvPrefix("WEDDINGBOOK")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if override := os.Getenv("WEDDINGBOOK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper resolves the settings held by v.
func FromViper(v *viper.Viper) (*Settings, error) {
	path, err := homedir.Expand(v.GetString(KeyPath))
	if err != nil {
		return nil, fmt.Errorf("store: expanding %s: %w", KeyPath, err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("store: %s: %w", KeyLogLevel, err)
	}

	return &Settings{
		Path:        path,
		LogLevel:    level,
		KeepPending: v.GetBool(KeyKeepPending),
		DateLayout:  v.GetString(KeyDateLayout),
	}, nil
}
