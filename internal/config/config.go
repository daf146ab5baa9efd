package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Log     LogConfig
	Metrics MetricsConfig
	Data    DataConfig
	// Keys overrides the default key list per action, e.g. [keys] threshold-save = ["ctrl+s"].
	Keys    map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language    string
	Theme       string
	StartScreen string `mapstructure:"start_screen"`
	StartSensor string `mapstructure:"start_sensor"`
}

// LogConfig points the file logger somewhere. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// MetricsConfig enables the prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string
}

// DataConfig optionally replaces the embedded sample dataset.
type DataConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix SMARTFARM_.
// An explicit path that cannot be read is an error; a missing default file is not.
func Load(path string) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("ui.language", "English")
	v.SetDefault("ui.theme", "light")
	v.SetDefault("ui.start_screen", "")
	v.SetDefault("ui.start_sensor", "")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "smartfarm", "smartfarm.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("data.path", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SMARTFARM_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "smartfarm"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SMARTFARM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
