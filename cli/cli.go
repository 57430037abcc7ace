// Package cli is mathpad's command surface. The default command opens the
// interactive widget; eval and convert run one-shot from scripts.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"mathpad/config"
)

// CLI is the top-level command-line interface for mathpad.
type CLI struct {
	Config   string    `help:"Configuration file (YAML)." short:"c" type:"path"`
	LogLevel string    `help:"Log level." default:"warn" enum:"debug,info,warn,error"`
	LogFile  string    `help:"Write logs to this file instead of stderr." type:"path"`
	Plot     plotFlags `embed:"" prefix:"plot-"`

	Ui      uiCmd      `cmd:"" default:"withargs" help:"Open the interactive widget."`
	Eval    evalCmd    `cmd:"" help:"Evaluate expressions and print the results."`
	Convert convertCmd `cmd:"" help:"Convert an amount between currencies."`
}

// plotFlags override the configured sampling grid. Unset flags leave the
// configuration value in place.
type plotFlags struct {
	Min   *float64 `help:"Lower bound of the plot domain."`
	Max   *float64 `help:"Upper bound of the plot domain."`
	Steps *int     `help:"Number of sampling steps across the domain."`
}

func (f plotFlags) apply(cfg *config.Config) {
	if f.Min != nil {
		cfg.Plot.Min = *f.Min
	}
	if f.Max != nil {
		cfg.Plot.Max = *f.Max
	}
	if f.Steps != nil {
		cfg.Plot.Steps = *f.Steps
	}
}

// Kit carries the resolved runtime handed to commands.
type Kit struct {
	Ctx    context.Context
	Config config.Config
	Log    *slog.Logger
	Stdout io.Writer
}

// Run executes the mathpad CLI with the given context and arguments. The
// exit function is called on usage errors; output goes to stdout.
func Run(ctx context.Context, exit func(code int), stdout io.Writer, args ...string) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("mathpad"),
		kong.Description("A function plotter, calculator, and currency converter for the terminal."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)
	if err != nil {
		return err
	}
	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	cli.Plot.apply(&cfg)

	logger, closeLog, err := cli.logger(ktx.Command())
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	kit := &Kit{Ctx: ctx, Config: cfg, Log: logger, Stdout: stdout}
	return ktx.Run(kit)
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// logger builds the process logger from flags. While the widget owns the
// terminal, logs go to the file if one was given and are dropped otherwise;
// one-shot commands log to stderr.
func (c *CLI) logger(command string) (*slog.Logger, func(), error) {
	var w io.Writer
	cleanup := func() {}
	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		cleanup = func() { f.Close() }
	case command == "ui":
		w = io.Discard
	default:
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levels[c.LogLevel]})
	return slog.New(h), cleanup, nil
}
