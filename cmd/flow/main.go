// Command flow runs layout scenarios through the flow engine.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flow/internal/config"
)

const version = "0.1.0"

// initializeAppContext prepares logging after the command line has been
// parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := envFromContext(ctx)

	conf := config.Console(cmd.Bool("debug"))
	if path := cmd.String("log"); path != "" {
		conf = conf.WithFile(path, cmd.Bool("log-append"))
	}
	log, closeLog, err := conf.Prepare()
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	e.log, e.closeLog = log, closeLog

	e.log.Debug("Program started", zap.Strings("args", cmd.Args().Slice()), zap.String("ver", version), zap.String("runtime", runtime.Version()))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	e := envFromContext(ctx)
	e.log.Debug("Program ended", zap.Duration("elapsed", e.uptime()))
	if e.closeLog == nil {
		return nil
	}
	if err := e.closeLog(); err != nil {
		return fmt.Errorf("unable to close log: %w", err)
	}
	return nil
}

// Errors from subcommands are logged here; main reports only what the log
// could not.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	if e := envFromContext(ctx); e.closeLog != nil {
		e.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "flow",
		Usage:           "lays out items described by scenario files using a streaming flow layout",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log engine decisions (wraps, alignment, auto-size) to the console"},
			&cli.StringFlag{Name: "log", Usage: "also write the log to `FILE`"},
			&cli.BoolFlag{Name: "log-append", Usage: "append to the log file instead of overwriting it"},
		},
		Commands: []*cli.Command{
			{
				Name:      "place",
				Usage:     "Lays out scenario file(s) and prints every frame",
				Action:    runPlace,
				ArgsUsage: "FILE|DIR|DIR/... ...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: formatText,
						Usage: "output `FORMAT` (text, json or yaml)"},
				},
			},
			{
				Name:      "check",
				Usage:     "Validates scenario file(s), reporting settings the engine would work around",
				Action:    runCheck,
				ArgsUsage: "FILE|DIR|DIR/... ...",
			},
			{
				Name:   "defaults",
				Usage:  "Prints the default scenario (YAML)",
				Action: runDefaults,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
