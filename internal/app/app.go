// Package app wires configuration, loading, strategy execution and
// reporting into the giftcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/giftcalc/internal/config"
	"github.com/agbru/giftcalc/internal/giftcost"
	"github.com/agbru/giftcalc/internal/logging"
	"github.com/agbru/giftcalc/internal/ui"
)

// Application represents the giftcalc application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *giftcost.Registry
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom strategy Registry for the application.
func WithRegistry(r *giftcost.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = giftcost.NewDefaultRegistry()
	}

	programName := "giftcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	if a.Logger == nil {
		noColor := ui.GetCurrentTheme().Name == ui.NoColorTheme.Name
		a.Logger = logging.NewConsoleLogger(a.ErrWriter, "giftcalc", noColor)
	}

	return a.runSum(ctx, out)
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
