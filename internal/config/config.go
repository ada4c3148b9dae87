// Package config loads the settings of the command line tool.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/askiada/go-autodraw/pkg/autodraw/api"
)

const envPrefix = "AUTODRAW"

// Config maps the autodraw.yml file.
type Config struct {
	API struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"api"`
	Auth struct {
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"auth"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Output struct {
		SVG       string `mapstructure:"svg"`
		DOT       string `mapstructure:"dot"`
		Terminal  bool   `mapstructure:"terminal"`
		DebugDump bool   `mapstructure:"debug_dump"`
	} `mapstructure:"output"`
	Watch struct {
		Interval      time.Duration `mapstructure:"interval"`
		UntilComplete bool          `mapstructure:"until_complete"`
	} `mapstructure:"watch"`
	// Palette overrides the colour of draw classes, e.g. past: "#00ff00".
	Palette map[string]string `mapstructure:"palette"`
}

// Load reads path, or autodraw.yml in the current directory when path is empty. A missing
// default file is not an error. Every key can be overridden from the environment, e.g.
// AUTODRAW_API_BASE_URL overrides api.base_url.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("autodraw")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", api.DefaultBaseURL)
	v.SetDefault("api.timeout", api.DefaultTimeout)
	v.SetDefault("auth.username", "")
	v.SetDefault("auth.password", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.svg", "autodraw.svg")
	v.SetDefault("output.dot", "")
	v.SetDefault("output.terminal", true)
	v.SetDefault("output.debug_dump", true)
	v.SetDefault("watch.interval", 5*time.Second)
	v.SetDefault("watch.until_complete", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "unable to read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.API.Timeout <= 0 {
		return errors.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}

	if c.Watch.Interval <= 0 {
		return errors.Errorf("watch.interval must be positive, got %s", c.Watch.Interval)
	}

	return nil
}
