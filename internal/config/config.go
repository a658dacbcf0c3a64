// Package config loads the editor's runtime settings from the environment
// and the command line.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	EnvColor     = "GEDIT_COLOR"
	EnvLogLevel  = "GEDIT_LOG_LEVEL"
	EnvLogFormat = "GEDIT_LOG_FORMAT"
	EnvBanner    = "GEDIT_BANNER"
	EnvAssumeYes = "GEDIT_ASSUME_YES"
)

type Config struct {
	// Color renders the grid with ANSI 24-bit colour.
	Color bool

	// LogLevel is any level understood by logrus.ParseLevel.
	LogLevel string

	// LogFormat is "text" or "json".
	LogFormat string

	// Banner prints the welcome banner on start.
	Banner bool

	// AssumeYes skips the prompt before replacing an existing image.
	AssumeYes bool
}

func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Banner:    true,
	}
}

// Load reads an optional .env file from the working directory, applies
// GEDIT_* environment variables over the defaults, then parses args
// (without the program name). Flags win over the environment.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return load(args, os.LookupEnv, os.Stderr)
}

func load(args []string, lookup func(string) (string, bool), output io.Writer) (Config, error) {
	cfg := Default()

	if err := fromEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("gedit", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "render the image with ANSI colours")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text or json)")
	fs.BoolVar(&cfg.Banner, "banner", cfg.Banner, "print the welcome banner")
	fs.BoolVar(&cfg.AssumeYes, "yes", cfg.AssumeYes, "replace an existing image without asking")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return cfg, cfg.Validate()
}

func fromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{EnvColor, &cfg.Color},
		{EnvBanner, &cfg.Banner},
		{EnvAssumeYes, &cfg.AssumeYes},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", b.key, v, err)
		}
		*b.dst = parsed
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	return nil
}

func (cfg Config) Validate() error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q, expected text or json", cfg.LogFormat)
	}
	return nil
}

// Logger builds a logger writing to w as configured.
func (cfg Config) Logger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
