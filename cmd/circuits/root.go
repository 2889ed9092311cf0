package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/mjedwabn/circuits/query"
	"github.com/mjedwabn/circuits/spatial"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// stdinPath selects standard input for --input.
const stdinPath = "-"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	input      string
	method     string
	workers    int
	jsonOut    bool
	cpuProfile string
	verbose    bool

	log     *slog.Logger
	profile interface{ Stop() }
}

// stopProfile flushes the CPU profile if one is running.
func (o *rootOptions) stopProfile() {
	if o.profile != nil {
		o.profile.Stop()
		o.profile = nil
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "circuits",
		Short:         "Connect 3-D junction points into circuits by ascending distance",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if opts.workers < 1 {
				return fmt.Errorf("--workers must be ≥ 1, got %d", opts.workers)
			}
			if opts.cpuProfile != "" {
				opts.profile = profile.Start(profile.CPUProfile, profile.ProfilePath(opts.cpuProfile), profile.Quiet)
				opts.log.Debug("cpu profiling", "dir", opts.cpuProfile)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.input, "input", "i", stdinPath, "Point file, one x,y,z per line (- for stdin)")
	cmd.PersistentFlags().StringVar(&opts.method, "method", query.MethodDisjointSet,
		fmt.Sprintf("Circuit tracker: %s or %s", query.MethodDisjointSet, query.MethodPartition))
	cmd.PersistentFlags().IntVar(&opts.workers, "workers", 1, "Goroutines computing pair distances")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Output as JSON")
	cmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile into this directory")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	cmd.AddCommand(newTopCmd(opts), newThresholdCmd(opts), newSolveCmd(opts))

	// cobra skips PersistentPostRun when RunE fails, so each command stops the profile itself.
	for _, sub := range cmd.Commands() {
		runE := sub.RunE
		sub.RunE = func(c *cobra.Command, args []string) error {
			defer opts.stopProfile()
			return runE(c, args)
		}
	}

	return cmd
}

// loadPoints reads the point set named by --input.
func (o *rootOptions) loadPoints(cmd *cobra.Command) ([]spatial.Point, error) {
	var (
		points []spatial.Point
		err    error
	)
	if o.input == stdinPath {
		points, err = spatial.Parse(cmd.InOrStdin())
	} else {
		points, err = spatial.Load(o.input)
	}
	if err != nil {
		return nil, fmt.Errorf("loading points: %w", err)
	}
	o.log.Debug("points loaded", "input", o.input, "count", len(points))

	return points, nil
}

// queryOptions maps the persistent flags onto query options.
func (o *rootOptions) queryOptions() []query.Option {
	return []query.Option{query.WithMethod(o.method), query.WithWorkers(o.workers)}
}

// emit writes v as indented JSON when --json is set, otherwise the text line.
func (o *rootOptions) emit(w io.Writer, v any, text string) error {
	if o.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
