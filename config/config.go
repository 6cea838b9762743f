// Package config loads Logger settings from a yaml file and AVLOG_*
// environment variables and builds the matching handler stack.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
	"github.com/philipp01105/avlog/handler"
	"github.com/philipp01105/avlog/handler/consolehandler"
	"github.com/philipp01105/avlog/handler/filehandler"
	"github.com/philipp01105/avlog/handler/promhandler"
	"github.com/philipp01105/avlog/logger"
)

// Config holds Logger settings. Environment variables override values
// read from a file.
type Config struct {
	// Level is a level name or number (quiet, panic, ..., trace)
	Level string `yaml:"level" env:"AVLOG_LEVEL" env-default:"info"`

	// SkipRepeated collapses runs of identical lines
	SkipRepeated bool `yaml:"skipRepeated" env:"AVLOG_SKIP_REPEATED"`

	// Color is auto, always or never; console output only
	Color string `yaml:"color" env:"AVLOG_COLOR" env-default:"auto"`

	// Output is stderr, stdout or file
	Output string `yaml:"output" env:"AVLOG_OUTPUT" env-default:"stderr"`

	// Format is text or json
	Format string `yaml:"format" env:"AVLOG_FORMAT" env-default:"text"`

	// FilePath is the log file path (required if output=file)
	FilePath string `yaml:"filePath" env:"AVLOG_FILE_PATH"`

	// MaxSize is the log file size in MB that triggers rotation
	MaxSize int `yaml:"maxSize" env:"AVLOG_MAX_SIZE" env-default:"100"`

	// MaxBackups is the number of rotated files to keep
	MaxBackups int `yaml:"maxBackups" env:"AVLOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge is the number of days to keep rotated files
	MaxAge int `yaml:"maxAge" env:"AVLOG_MAX_AGE" env-default:"7"`

	// Compress gzips rotated files
	Compress bool `yaml:"compress" env:"AVLOG_COMPRESS"`

	// Async queues console output on a background goroutine
	Async bool `yaml:"async" env:"AVLOG_ASYNC"`

	// BufferSize is the async queue length
	BufferSize int `yaml:"bufferSize" env:"AVLOG_BUFFER_SIZE" env-default:"1000"`
}

// Load reads path (yaml, json, toml or env file) and then the environment.
// With an empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error
	if _, perr := core.ParseLevel(c.Level); perr != nil {
		err = multierr.Append(err, perr)
	}
	if _, perr := consolehandler.ParseColorMode(c.Color); perr != nil {
		err = multierr.Append(err, perr)
	}
	switch strings.ToLower(c.Output) {
	case "stderr", "stdout":
	case "file":
		if c.FilePath == "" {
			err = multierr.Append(err, errors.New("output=file requires a file path"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("invalid output %q", c.Output))
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("invalid format %q", c.Format))
	}
	if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
		err = multierr.Append(err, errors.New("rotation limits must not be negative"))
	}
	if c.Async && c.BufferSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("invalid buffer size %d", c.BufferSize))
	}
	return err
}

// Flags returns the Logger flags selected by c.
func (c *Config) Flags() core.Flags {
	var f core.Flags
	if c.SkipRepeated {
		f |= core.SkipRepeated
	}
	return f
}

// NewHandler builds the sink described by c. A non-nil reg wraps it in
// a Prometheus counting handler.
func (c *Config) NewHandler(reg prometheus.Registerer) (handler.Handler, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var f formatter.Formatter
	if strings.EqualFold(c.Format, "json") {
		f = formatter.NewJSONFormatter(formatter.Config{})
	} else {
		f = formatter.NewTextFormatter(formatter.Config{Sanitize: true})
	}

	var h handler.Handler
	switch strings.ToLower(c.Output) {
	case "file":
		fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:   c.FilePath,
			Formatter:  f,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		})
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		h = fh
	default:
		w := os.Stderr
		if strings.EqualFold(c.Output, "stdout") {
			w = os.Stdout
		}
		mode, _ := consolehandler.ParseColorMode(c.Color)
		h = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:     w,
			Formatter:  f,
			Color:      mode,
			Async:      c.Async,
			BufferSize: c.BufferSize,
		})
	}

	if reg == nil {
		return h, nil
	}
	ph, err := promhandler.New(h, reg)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("register metrics: %w", err), h.Close())
	}
	return ph, nil
}

// NewLogger builds a Logger with the level, flags and handler from c.
func NewLogger(c *Config, reg prometheus.Registerer) (*logger.Logger, error) {
	h, err := c.NewHandler(reg)
	if err != nil {
		return nil, err
	}
	level, _ := core.ParseLevel(c.Level)
	return logger.NewBuilder().
		WithHandler(h).
		WithLevel(level).
		WithFlags(c.Flags()).
		Build(), nil
}
