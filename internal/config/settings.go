package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/muurk/odintv/internal/navigator"
)

// EnvPrefix is the prefix for environment overrides, e.g. ODINTV_REMOTE_PORT
const EnvPrefix = "ODINTV"

// Settings is the complete application configuration
type Settings struct {
	Log     LogSettings     `mapstructure:"log"`
	Gemini  GeminiSettings  `mapstructure:"gemini"`
	Player  PlayerSettings  `mapstructure:"player"`
	Remote  RemoteSettings  `mapstructure:"remote"`
	Catalog CatalogSettings `mapstructure:"catalog"`
}

// LogSettings controls the zap logger
type LogSettings struct {
	Level string `mapstructure:"level"` // empty = silent
	File  string `mapstructure:"file"`  // log file used while the TUI is running
}

// GeminiSettings configures the trending/detection provider
type GeminiSettings struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PlayerSettings configures the simulated player
type PlayerSettings struct {
	DefaultQuality string        `mapstructure:"default_quality"`
	AutoHide       time.Duration `mapstructure:"autohide"`
}

// RemoteSettings configures the remote-control key server
type RemoteSettings struct {
	Enabled   bool   `mapstructure:"enabled"`
	Port      int    `mapstructure:"port"`
	Advertise bool   `mapstructure:"advertise"`
	Name      string `mapstructure:"name"`
}

// CatalogSettings configures the speed-dial catalog source
type CatalogSettings struct {
	Path  string `mapstructure:"path"` // user catalog; missing file means built-in defaults
	Watch bool   `mapstructure:"watch"`
}

// LoadOptions controls where Load reads from
type LoadOptions struct {
	// ConfigFile is an explicit settings file. It must exist when set.
	ConfigFile string

	// Flags are bound on top of file and environment values.
	// Keys are looked up through FlagKeys.
	Flags *pflag.FlagSet
}

// FlagKeys maps CLI flag names to settings keys
var FlagKeys = map[string]string{
	"log-level":    "log.level",
	"quality":      "player.default_quality",
	"remote":       "remote.enabled",
	"remote-port":  "remote.port",
	"no-advertise": "remote.no_advertise",
	"catalog":      "catalog.path",
	"api-key":      "gemini.api_key",
	"model":        "gemini.model",
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", filepath.Join(dir, logFileName))
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-3-flash-preview")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.timeout", "15s")
	v.SetDefault("player.default_quality", string(navigator.DefaultQuality))
	v.SetDefault("player.autohide", "5s")
	v.SetDefault("remote.enabled", false)
	v.SetDefault("remote.port", 8765)
	v.SetDefault("remote.advertise", true)
	v.SetDefault("remote.no_advertise", false)
	v.SetDefault("remote.name", defaultReceiverName())
	v.SetDefault("catalog.path", filepath.Join(dir, catalogName))
	v.SetDefault("catalog.watch", true)
}

func defaultReceiverName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "Odin TV"
	}
	return "Odin TV (" + host + ")"
}

// Load reads settings from defaults, the settings file, ODINTV_* environment
// variables and finally command-line flags, in increasing priority.
// A missing default settings file is not an error.
func Load(opts LoadOptions) (Settings, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return Settings{}, err
	}

	v := viper.New()
	setDefaults(v, dir)

	v.SetConfigType(configType)
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}

	if v.GetBool("remote.no_advertise") {
		s.Remote.Advertise = false
	}
	if s.Gemini.APIKey == "" {
		s.Gemini.APIKey = firstEnv("GEMINI_API_KEY", "API_KEY")
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}

// Validate checks values that would otherwise fail late at runtime
func (s Settings) Validate() error {
	if _, ok := navigator.ParseQuality(s.Player.DefaultQuality); !ok {
		return fmt.Errorf("invalid player.default_quality %q (valid: %v)", s.Player.DefaultQuality, navigator.QualityOptions())
	}
	if s.Player.AutoHide < 0 {
		return fmt.Errorf("player.autohide must not be negative, got %s", s.Player.AutoHide)
	}
	if s.Remote.Port < 1 || s.Remote.Port > 65535 {
		return fmt.Errorf("remote.port must be between 1-65535, got %d", s.Remote.Port)
	}
	if s.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive, got %s", s.Gemini.Timeout)
	}
	return nil
}

// Quality returns the validated default player quality
func (s Settings) Quality() navigator.Quality {
	q, ok := navigator.ParseQuality(s.Player.DefaultQuality)
	if !ok {
		return navigator.DefaultQuality
	}
	return q
}

// WriteDefault writes a settings file holding every default value to path.
// It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, dir)
	v.SetConfigType(configType)

	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
