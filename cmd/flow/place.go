package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flow/internal/scenario"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

type result struct {
	File   string           `json:"file" yaml:"file"`
	Frames []scenario.Frame `json:"frames" yaml:"frames"`
}

func runPlace(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	format := cmd.String("format")
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown output format %q, try %v", format, formats)
	}
	files, err := collectScenarioFiles(cmd.Args().Slice())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no scenario files found")
	}

	results := make([]result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			log := e.log.With(zap.String("file", path))
			for _, p := range multierr.Errors(s.Problems()) {
				log.Warn("Scenario problem, continuing with best-effort layout", zap.Error(p))
			}
			results[i] = result{File: path, Frames: s.Run(log)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	e.log.Debug("Placed scenarios", zap.Int("files", len(files)), zap.String("format", format))
	return writeResults(cmd.Root().Writer, format, results)
}

func writeResults(w io.Writer, format string, results []result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeText(w, results)
}

func writeText(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range results {
		for n, f := range r.Frames {
			fmt.Fprintf(tw, "%s frame %d: container %dx%d, bounds %dx%d\n",
				r.File, n, f.Container.Width, f.Container.Height, f.Bounds.Width, f.Bounds.Height)
			fmt.Fprintln(tw, "NAME\tX\tY\tWIDTH\tHEIGHT\t")
			for _, p := range f.Items {
				if !p.Placed {
					fmt.Fprintf(tw, "%s\t-\t-\t%d\t%d\t\n", p.Name, p.Width, p.Height)
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", p.Name, p.X, p.Y, p.Width, p.Height)
			}
			fmt.Fprintln(tw)
		}
	}
	return tw.Flush()
}
