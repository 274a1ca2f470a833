package app

import (
	"io"
	"log/slog"

	"github.com/vk/composego/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer // emitted configuration
	logger *slog.Logger
	loader config.Loader
}

// NewApp is the constructor for the main application. The emitted
// configuration goes to outW; logs go to logW so that piping the tool's
// output stays clean.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: loader,
	}
}
