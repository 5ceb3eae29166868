package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/clusternet/builder"
	"github.com/katalvlaran/clusternet/internal/config"
	"github.com/katalvlaran/clusternet/internal/logging"
	"github.com/katalvlaran/clusternet/metrics"
)

// app holds state shared by every sub-command after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	noColor    bool
	engine     string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "clusternet",
		Short:         "Cluster topology generator and metrics calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable coloured log output")
	pf.StringVar(&a.engine, "engine", "", "all-pairs engine: floyd-warshall|bfs (overrides config)")

	root.AddCommand(
		newGenerateCmd(a),
		newSweepCmd(a),
		newRunCmd(a),
		newFamiliesCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}
	if flags.Changed("engine") {
		cfg.Engine = a.engine
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.log, err = logging.Install(cmd.ErrOrStderr(), cfg.LogLevel, cfg.NoColor)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("configuration loaded",
		slog.String("path", a.configPath),
		slog.String("engine", cfg.Engine),
		slog.Int("runs", len(cfg.Runs)))

	return nil
}

// metricsOptions translates the configuration into metrics options.
func (a *app) metricsOptions() ([]metrics.Option, error) {
	engine, err := metrics.ParseEngine(a.cfg.Engine)
	if err != nil {
		return nil, err
	}

	return []metrics.Option{metrics.WithEngine(engine), metrics.WithLogger(a.log)}, nil
}

// familyFlag is a pflag.Value backed by builder.Family.
type familyFlag struct{ f *builder.Family }

func (v familyFlag) String() string {
	if v.f == nil {
		return ""
	}
	return v.f.String()
}

func (v familyFlag) Set(s string) error { return v.f.UnmarshalText([]byte(s)) }

func (familyFlag) Type() string { return "family" }

// addFamilyFlags registers --family and --clusters, both required.
func addFamilyFlags(cmd *cobra.Command, f *builder.Family, clusters *int) {
	cmd.Flags().Var(familyFlag{f}, "family", "topology family: star|ring|grid")
	cmd.Flags().IntVar(clusters, "clusters", 1, fmt.Sprintf("number of clusters (1..%d)", config.MaxClusters))
	_ = cmd.MarkFlagRequired("family")
}

func checkClusters(n int) error {
	if n < builder.MinClusters || n > config.MaxClusters {
		return fmt.Errorf("--clusters=%d outside [%d,%d]: %w",
			n, builder.MinClusters, config.MaxClusters, builder.ErrInvalidArgument)
	}

	return nil
}
