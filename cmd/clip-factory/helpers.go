package main

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ogolknev/clip-factory/internal/config"
	"github.com/ogolknev/clip-factory/internal/logging"
	"github.com/ogolknev/clip-factory/internal/reporter"
)

// commandContext carries the persistent flags and lazily loaded
// configuration shared by all subcommands.
type commandContext struct {
	configPath string
	verbose    bool
	jsonEvents bool
	logDir     string
	noLog      bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

// loadConfig builds the effective configuration: defaults, then the TOML
// file if given, then environment overrides. Validation is left to the
// command after it applies its own flag overrides.
func (c *commandContext) loadConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg := config.Default()
		if c.configPath != "" {
			if err := config.LoadFile(c.configPath, cfg); err != nil {
				c.configErr = err
				return
			}
		}
		config.ApplyEnv(cfg)
		if c.logDir != "" {
			cfg.LogDir = c.logDir
		}
		cfg.Verbose = c.verbose
		cfg.NoLog = c.noLog
		c.config = cfg
	})
	return c.config, c.configErr
}

// newReporter selects terminal or NDJSON progress output.
func (c *commandContext) newReporter() reporter.Reporter {
	if c.jsonEvents {
		return reporter.NewJSONReporter()
	}
	return reporter.NewTerminalReporter()
}

// setupLogger creates the run log file. The default log directory is a
// "logs" directory next to the input file.
func (c *commandContext) setupLogger(inputPath string) (*logging.Logger, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	logDir := cfg.LogDir
	if logDir == "" {
		logDir = filepath.Join(filepath.Dir(inputPath), "logs")
	}
	return logging.Setup(logDir, cfg.Verbose, cfg.NoLog)
}

// openOutput returns the writer for a scene document: stdout when path
// is empty or "-", a file otherwise.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
