package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/agbru/fibkm/internal/cli"
	"github.com/agbru/fibkm/internal/config"
	"github.com/agbru/fibkm/internal/conversion"
	apperrors "github.com/agbru/fibkm/internal/errors"
	"github.com/agbru/fibkm/internal/logging"
	"github.com/agbru/fibkm/internal/metrics"
	"github.com/agbru/fibkm/internal/tui"
	"github.com/agbru/fibkm/internal/ui"
)

// defaultProgramName is used when the argument vector is empty.
const defaultProgramName = "fibkm"

// defaultExplorerMiles is where the explorer starts without a distance.
const defaultExplorerMiles = 10

// Application represents the fibkm application instance.
type Application struct {
	Config    config.AppConfig
	Factory   conversion.ConverterFactory
	Recorder  *metrics.Recorder
	Logger    logging.Logger
	ErrWriter io.Writer

	programName string
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom ConverterFactory for the application. When the
// factory exposes its Subject, the application's observers are registered
// on it.
func WithFactory(f conversion.ConverterFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the console logger written to the error stream.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := defaultProgramName
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:      cfg,
		Recorder:    metrics.NewRecorder(),
		ErrWriter:   errWriter,
		programName: programName,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, programName, cfg.Verbose)
	}

	observers := []conversion.Observer{app.Recorder}
	// The explorer owns the terminal; log lines would tear its screen.
	if cfg.Mode() != config.ModeTUI {
		observers = append(observers, conversion.NewLoggingObserver(app.Logger))
	}
	if app.Factory == nil {
		app.Factory = conversion.NewDefaultFactory(conversion.WithObservers(observers...))
	} else if s, ok := app.Factory.(interface{ Subject() *conversion.Subject }); ok {
		for _, o := range observers {
			s.Subject().Register(o)
		}
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	outFile, _ := out.(*os.File)
	ui.InitTheme(a.Config.NoColor, outFile)

	mode := a.Config.Mode()
	a.Logger.Debug("starting", logging.String("mode", mode.String()), logging.String("method", a.Config.Method))

	switch mode {
	case config.ModeHelp:
		config.PrintUsage(a.programName, out)
		return apperrors.ExitSuccess
	case config.ModeCompletion:
		return a.runCompletion(out)
	}

	f, err := cli.NewFormatter(a.Config.Precision, a.Config.Locale)
	if err != nil {
		return a.handleError(err)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var code int
	switch mode {
	case config.ModeTUI:
		return a.runTUI(ctx, f)
	case config.ModeFibonacci:
		code = a.runFibonacci(out, f)
	case config.ModeBasic:
		code = a.runBasic(ctx, out, f)
	case config.ModeDistances:
		code = a.runDistances(ctx, out, f)
	case config.ModeCompare:
		code = a.runCompare(ctx, out, f)
	case config.ModeSweep:
		code = a.runSweep(ctx, out, f)
	}

	if code == apperrors.ExitSuccess && a.Config.Details && !a.Config.JSONOutput {
		a.printDetails(out, f)
	}
	return code
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		return a.handleError(err)
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive explorer at the first distance given, if
// any.
func (a *Application) runTUI(ctx context.Context, f cli.Formatter) int {
	start := float64(defaultExplorerMiles)
	if len(a.Config.Args) > 0 {
		miles, err := cli.ParseMiles(a.Config.Args[0])
		if err != nil {
			return a.handleError(err)
		}
		start = miles
	}
	return tui.Run(ctx, a.Factory.All(), f, start, Version)
}

// handleError reports err on the error stream and returns its exit code.
func (a *Application) handleError(err error) int {
	a.Logger.Debug("run failed", logging.Err(err))
	return apperrors.HandleError(err, a.ErrWriter, ui.ColorProvider{})
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
