package main

import (
	"context"
	"fmt"
	"runtime"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flow/internal/scenario"
)

// runCheck implements the check subcommand. Unlike place it treats settings
// the engine would work around as failures.
func runCheck(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	files, err := collectScenarioFiles(cmd.Args().Slice())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no scenario files found")
	}

	reports := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			s, err := scenario.Load(path)
			if err != nil {
				reports[i] = err
				return nil
			}
			reports[i] = s.Problems()
			return nil
		})
	}
	_ = g.Wait()

	w := cmd.Root().Writer
	var failed int
	for i, path := range files {
		problems := multierr.Errors(reports[i])
		if len(problems) == 0 {
			fmt.Fprintf(w, "%s: ok\n", path)
			continue
		}
		failed++
		for _, p := range problems {
			fmt.Fprintf(w, "%s: %v\n", path, p)
		}
	}

	e.log.Debug("Checked scenarios", zap.Int("files", len(files)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d file(s) had problems", failed)
	}
	return nil
}

func runDefaults(_ context.Context, cmd *cli.Command) error {
	s, err := scenario.Parse(nil)
	if err != nil {
		return fmt.Errorf("unable to prepare default scenario: %w", err)
	}
	data, err := scenario.Dump(s)
	if err != nil {
		return err
	}
	_, err = cmd.Root().Writer.Write(data)
	return err
}
