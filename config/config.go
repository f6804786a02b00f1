// Package config loads the trix-hub YAML configuration, layering a file
// over built-in defaults so a missing config still yields a runnable setup.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ulfmagnetics/trix-hub/provider"
)

// MatrixConfig describes the target display and how to reach it.
type MatrixConfig struct {
	Server    string `yaml:"server"` // base URL of trix-server; empty = file sink
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TimeoutMS int    `yaml:"timeout_ms"`
	OutputDir string `yaml:"output_dir"`
	SaveDebug bool   `yaml:"save_debug"`
}

// Timeout returns the request timeout as a duration.
func (m MatrixConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutMS) * time.Millisecond
}

// LocationConfig pins the weather provider to a place.
type LocationConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Name      string  `yaml:"name"`
}

// TimeProviderConfig configures the clock provider.
type TimeProviderConfig struct {
	Enabled   bool `yaml:"enabled"`
	Format12h bool `yaml:"format_12h"`
}

// WeatherProviderConfig configures the Open-Meteo provider.
type WeatherProviderConfig struct {
	Enabled       bool                 `yaml:"enabled"`
	Location      LocationConfig       `yaml:"location"`
	Units         string               `yaml:"units"`
	ForecastHours int                  `yaml:"forecast_interval_hours"`
	CacheSeconds  int                  `yaml:"cache_duration"`
	Conditions    *provider.Conditions `yaml:"conditions,omitempty"`
}

// CacheFor returns the configured cache window as a duration.
func (w WeatherProviderConfig) CacheFor() time.Duration {
	return time.Duration(w.CacheSeconds) * time.Second
}

// ImagesProviderConfig configures the directory-cycling image provider.
type ImagesProviderConfig struct {
	Enabled    bool                 `yaml:"enabled"`
	Dir        string               `yaml:"dir"`
	Conditions *provider.Conditions `yaml:"conditions,omitempty"`
}

// ProvidersConfig groups per-provider settings.
type ProvidersConfig struct {
	Time    TimeProviderConfig    `yaml:"time"`
	Weather WeatherProviderConfig `yaml:"weather"`
	Images  ImagesProviderConfig  `yaml:"images"`
}

// UIConfig drives the terminal preview.
type UIConfig struct {
	// Color selects the preview encoding: auto, truecolor, or 256.
	Color     string `yaml:"color"`
	RefreshMS int    `yaml:"refresh_ms"`
}

// Refresh returns the preview refresh interval, clamped to a sane floor.
func (u UIConfig) Refresh() time.Duration {
	d := time.Duration(u.RefreshMS) * time.Millisecond
	if d < 100*time.Millisecond {
		d = time.Second
	}
	return d
}

// Config is the full application configuration.
type Config struct {
	Matrix    MatrixConfig    `yaml:"matrix"`
	Providers ProvidersConfig `yaml:"providers"`
	UI        UIConfig        `yaml:"ui"`
}

// Default returns the built-in configuration: a 64x32 panel on the default
// trix-server hostname, time and weather providers enabled.
func Default() Config {
	return Config{
		Matrix: MatrixConfig{
			Server:    "http://trix-server.local",
			Width:     64,
			Height:    32,
			TimeoutMS: 5000,
			OutputDir: "output",
		},
		Providers: ProvidersConfig{
			Time: TimeProviderConfig{
				Enabled:   true,
				Format12h: true,
			},
			Weather: WeatherProviderConfig{
				Enabled: true,
				Location: LocationConfig{
					Latitude:  40.0,
					Longitude: -80.0,
					Name:      "Pittsburgh, PA",
				},
				Units:         "fahrenheit",
				ForecastHours: 3,
				CacheSeconds:  600,
			},
			Images: ImagesProviderConfig{
				Enabled: false,
				Dir:     "images",
			},
		},
		UI: UIConfig{
			Color:     "auto",
			RefreshMS: 1000,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error, it
// just means defaults; a file that exists but will not parse is.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
