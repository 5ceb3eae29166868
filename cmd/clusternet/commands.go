package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clusternet/builder"
	"github.com/katalvlaran/clusternet/internal/config"
	"github.com/katalvlaran/clusternet/metrics"
	"github.com/katalvlaran/clusternet/report"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		family   builder.Family
		clusters int
		matrix   bool
		edges    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build one topology and print its matrix and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkClusters(clusters); err != nil {
				return err
			}
			out := a.cfg.Output
			if cmd.Flags().Changed("matrix") {
				out.Matrix = matrix
			}
			if cmd.Flags().Changed("edges") {
				out.Edges = edges
			}

			return a.generate(cmd.OutOrStdout(), config.Run{Family: family.String(), Clusters: clusters}, out)
		},
	}
	addFamilyFlags(cmd, &family, &clusters)
	cmd.Flags().BoolVar(&matrix, "matrix", false, "print the adjacency matrix")
	cmd.Flags().BoolVar(&edges, "edges", false, "print the classified edge list")

	return cmd
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		family   builder.Family
		clusters int
		format   string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print metrics for every scale 1..clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkClusters(clusters); err != nil {
				return err
			}
			out := a.cfg.Output
			if cmd.Flags().Changed("format") {
				out.Format = format
			}
			if out.Format != config.FormatText && out.Format != config.FormatCSV {
				return fmt.Errorf("--format=%q: %w", format, config.ErrInvalidConfig)
			}

			return a.sweep(cmd.OutOrStdout(), config.Run{Family: family.String(), Clusters: clusters, Sweep: true}, out)
		},
	}
	addFamilyFlags(cmd, &family, &clusters)
	cmd.Flags().StringVar(&format, "format", config.FormatText, "output format: text|csv")

	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute every run listed in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.cfg.Runs) == 0 {
				return fmt.Errorf("no runs configured (use --config): %w", config.ErrInvalidConfig)
			}
			if err := a.runAll(cmd.OutOrStdout(), a.cfg); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if a.configPath == "" {
				return fmt.Errorf("--watch requires --config: %w", config.ErrInvalidConfig)
			}

			err := config.Watch(cmd.Context(), a.configPath, a.log, func(c *config.Config) {
				a.cfg = c
				if err := a.runAll(cmd.OutOrStdout(), c); err != nil {
					a.log.Error("run failed", slog.Any("err", err))
				}
			})
			if cmd.Context().Err() != nil {
				return nil
			}

			return err
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run whenever the configuration file changes")

	return cmd
}

func newFamiliesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the supported topology families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, f := range builder.Families() {
				if _, err := fmt.Fprintf(w, "%-5s cluster size %d, %d internal links\n",
					f, f.ClusterSize(), len(f.InternalEdges())); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// runAll executes every configured run in order.
func (a *app) runAll(w io.Writer, cfg *config.Config) error {
	for i, r := range cfg.Runs {
		a.log.Info("run", slog.Int("index", i), slog.String("family", r.Family),
			slog.Int("clusters", r.Clusters), slog.Bool("sweep", r.Sweep))
		var err error
		if r.Sweep {
			err = a.sweep(w, r, cfg.Output)
		} else {
			err = a.generate(w, r, cfg.Output)
		}
		if err != nil {
			return fmt.Errorf("run %d (%s/%d): %w", i, r.Family, r.Clusters, err)
		}
	}

	return nil
}

// generate builds one topology and prints it.
func (a *app) generate(w io.Writer, r config.Run, out config.Output) error {
	family, err := r.FamilyValue()
	if err != nil {
		return err
	}
	opts, err := a.metricsOptions()
	if err != nil {
		return err
	}
	top, err := builder.Generate(family, r.Clusters, builder.WithLogger(a.log))
	if err != nil {
		return err
	}
	m, err := metrics.Compute(top.Adjacency(), opts...)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "%s, %d clusters\n", family, r.Clusters); err != nil {
		return err
	}
	if out.Matrix {
		if err = report.WriteMatrix(w, top.Adjacency()); err != nil {
			return err
		}
	}
	if out.Edges {
		if err = report.WriteEdges(w, top.Edges()); err != nil {
			return err
		}
	}

	return report.WriteMetrics(w, m)
}

// sweep prints metrics for scales 1..r.Clusters.
func (a *app) sweep(w io.Writer, r config.Run, out config.Output) error {
	family, err := r.FamilyValue()
	if err != nil {
		return err
	}
	opts, err := a.metricsOptions()
	if err != nil {
		return err
	}
	rows, err := metrics.Sweep(family, r.Clusters, opts...)
	if err != nil {
		return err
	}
	if out.Format == config.FormatCSV {
		return report.WriteSweepCSV(w, family, rows)
	}

	return report.WriteSweepTable(w, family, rows)
}
