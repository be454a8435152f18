// Package config loads the einsolid settings: initial slider values, slider
// limits, chart size and logging.
//
// Sources, lowest precedence first:
//  1. built-in defaults (see Default)
//  2. TOML file at $EINSOLID_CONFIG, else <user config dir>/einsolid/config.toml
//  3. EINSOLID_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvConfigPath names the variable that points at an explicit config file.
const EnvConfigPath = "EINSOLID_CONFIG"

// Config holds application configuration.
type Config struct {
	Solids SolidsConfig `mapstructure:"solids"`
	Limits LimitsConfig `mapstructure:"limits"`
	Chart  ChartConfig  `mapstructure:"chart"`
	Log    LogConfig    `mapstructure:"log"`
}

// SolidsConfig holds the initial parameters of the two solids.
type SolidsConfig struct {
	QTotal int `mapstructure:"q_total" env:"EINSOLID_Q_TOTAL"`
	NA     int `mapstructure:"n_a" env:"EINSOLID_N_A"`
	NB     int `mapstructure:"n_b" env:"EINSOLID_N_B"`
}

// LimitsConfig bounds the interactive sliders.
type LimitsConfig struct {
	QMin    int `mapstructure:"q_min" env:"EINSOLID_Q_MIN"`
	QMax    int `mapstructure:"q_max" env:"EINSOLID_Q_MAX"`
	NMin    int `mapstructure:"n_min" env:"EINSOLID_N_MIN"`
	NMax    int `mapstructure:"n_max" env:"EINSOLID_N_MAX"`
	Step    int `mapstructure:"step" env:"EINSOLID_STEP"`
	BigStep int `mapstructure:"big_step" env:"EINSOLID_BIG_STEP"`
}

// ChartConfig holds presentation settings.
type ChartConfig struct {
	Height int  `mapstructure:"height" env:"EINSOLID_CHART_HEIGHT"`
	Memo   bool `mapstructure:"memo" env:"EINSOLID_CHART_MEMO"`
}

// LogConfig holds slog settings. An empty Path means "no log file".
type LogConfig struct {
	Level string `mapstructure:"level" env:"EINSOLID_LOG_LEVEL"`
	Path  string `mapstructure:"path" env:"EINSOLID_LOG_PATH"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solids: SolidsConfig{QTotal: 20, NA: 10, NB: 10},
		Limits: LimitsConfig{QMin: 1, QMax: 100, NMin: 1, NMax: 300, Step: 1, BigStep: 10},
		Chart:  ChartConfig{Height: 16, Memo: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads defaults, the optional config file and the environment.
// A missing default-location file is not an error; a missing file named by
// EINSOLID_CONFIG is.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetConfigType("toml")

	if path := os.Getenv(EnvConfigPath); path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("user config dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(dir, "einsolid"))
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// setDefaults registers every key so the file and env layers can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("solids.q_total", d.Solids.QTotal)
	v.SetDefault("solids.n_a", d.Solids.NA)
	v.SetDefault("solids.n_b", d.Solids.NB)
	v.SetDefault("limits.q_min", d.Limits.QMin)
	v.SetDefault("limits.q_max", d.Limits.QMax)
	v.SetDefault("limits.n_min", d.Limits.NMin)
	v.SetDefault("limits.n_max", d.Limits.NMax)
	v.SetDefault("limits.step", d.Limits.Step)
	v.SetDefault("limits.big_step", d.Limits.BigStep)
	v.SetDefault("chart.height", d.Chart.Height)
	v.SetDefault("chart.memo", d.Chart.Memo)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.path", d.Log.Path)
}
