package main

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds the settings of the satzbau binary.
type Config struct {
	// Addr is the listen address of the API server.
	Addr string `mapstructure:"addr"`
	// Lexicon is the path to a TOML lexicon; empty for none.
	Lexicon string `mapstructure:"lexicon"`
	// Watch reloads the lexicon when the file changes.
	Watch bool `mapstructure:"watch"`
	// ShutdownTimeout bounds the graceful shutdown of the server.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`

	Log struct {
		Level string `mapstructure:"level"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("lexicon", "")
	v.SetDefault("watch", true)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

// newViper returns a viper instance with defaults, SATZBAU_ environment
// variables and, if configFile is set, the TOML file.
func newViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SATZBAU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", configFile)
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &c, nil
}
