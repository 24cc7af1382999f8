package main

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/hupe1980/tsigo"
	"github.com/hupe1980/tsigo/mesh"
)

// commandContext carries lazily resolved state shared by all subcommands:
// the configuration file and the stderr logger.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     Config
	configErr  error

	loggerOnce sync.Once
	logger     *log.Logger
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = loadConfig(path)
	})
	return c.config, c.configErr
}

// log returns the process-wide stderr logger. Verbosity comes from the
// --verbose flag, falling back to the configured level.
func (c *commandContext) log() *log.Logger {
	c.loggerOnce.Do(func() {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Prefix:          "tsitool",
		})

		level := log.InfoLevel
		if cfg, err := c.ensureConfig(); err == nil {
			if parsed, err := log.ParseLevel(cfg.Logging.Level); err == nil {
				level = parsed
			}
		}
		if c.verboseFlag != nil && *c.verboseFlag {
			level = log.DebugLevel
		}
		logger.SetLevel(level)

		c.logger = logger
	})
	return c.logger
}

// meshLogger adapts the CLI logger for the tsigo file helpers, which speak
// slog. The charmbracelet logger doubles as an slog.Handler.
func (c *commandContext) meshLogger() *tsigo.Logger {
	return tsigo.NewLogger(c.log())
}

// writeMesh writes m to path, compression detected from the extension, level
// taken from the configuration.
func (c *commandContext) writeMesh(path string, m *mesh.Mesh) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	return tsigo.WriteFile(path, m,
		tsigo.WithCompressionLevel(cfg.Output.CompressionLevel),
		tsigo.WithLogger(c.meshLogger()),
	)
}
