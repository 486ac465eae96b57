package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trickstertwo/pluginlog/console"
)

const envPrefix = "PLUGINLOG"

// Config holds the CLI settings. Precedence: flags, PLUGINLOG_* env, config file, defaults.
type Config struct {
	Channel   string            `mapstructure:"channel"`
	Level     string            `mapstructure:"level"`
	Backend   string            `mapstructure:"backend"` // console, zap or zerolog
	Color     console.ColorMode `mapstructure:"-"`
	Verbosity console.Verbosity `mapstructure:"-"`
}

var backends = map[string]bool{"console": true, "zap": true, "zerolog": true}

// loadConfig parses args and returns the config plus the positional arguments.
func loadConfig(args []string, stderr io.Writer) (Config, []string, error) {
	fs := pflag.NewFlagSet("pluginlog", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringP("channel", "c", "plugin", "channel name prefixed to every message")
	fs.StringP("level", "l", "info", "severity: debug, info, notice, warning, error, critical, alert, emergency")
	fs.String("backend", "console", "sink backend: console, zap or zerolog")
	fs.String("color", "auto", "color mode: auto, always or never")
	fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.CountP("verbose", "v", "increase verbosity (-v, -vv, -vvv)")
	fs.BoolP("quiet", "q", false, "suppress all output")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, errors.Wrap(err, "parse flags")
	}

	v := viper.New()
	v.SetDefault("verbosity", "normal")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"channel", "level", "backend", "color"} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return Config{}, nil, errors.Wrapf(err, "bind flag %q", key)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, nil, errors.Wrap(err, "decode config")
	}

	cfg.Backend = strings.ToLower(cfg.Backend)
	if !backends[cfg.Backend] {
		return Config{}, nil, errors.Errorf("unknown backend %q", cfg.Backend)
	}

	color, err := console.ParseColorMode(v.GetString("color"))
	if err != nil {
		return Config{}, nil, err
	}
	cfg.Color = color

	verbosity, err := console.ParseVerbosity(v.GetString("verbosity"))
	if err != nil {
		return Config{}, nil, errors.Wrap(err, "verbosity")
	}
	if n, _ := fs.GetCount("verbose"); n > 0 {
		verbosity = console.Normal + console.Verbosity(min(n, 3))
	}
	if q, _ := fs.GetBool("quiet"); q {
		verbosity = console.Quiet
	}
	cfg.Verbosity = verbosity

	return cfg, fs.Args(), nil
}
