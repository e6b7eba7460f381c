package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/discountroute/config"
)

// Flag names shared by every subcommand.
const (
	flagConfig      = "config"
	flagStart       = "start"
	flagEnd         = "end"
	flagLenient     = "lenient"
	flagEnumeration = "enumeration"
	flagWorkers     = "workers"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagColor       = "color"
	flagDOT         = "dot"
	flagMetricsFile = "metrics-file"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "discountroute",
		Short:         "Cheapest route with and without a one-edge discount",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	def := config.Default()
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "YAML run configuration")
	pf.Int(flagStart, 0, "override the start node of the problem file")
	pf.Int(flagEnd, 0, "override the end node of the problem file")
	pf.Bool(flagLenient, false, "accept asymmetric weight matrices")
	pf.String(flagEnumeration, def.Enumeration, "candidate order: ordered-pairs or upper-triangle")
	pf.Int(flagWorkers, def.Workers, "trials evaluated concurrently")
	pf.String(flagLogLevel, def.Log.Level, "log level")
	pf.String(flagLogFormat, def.Log.Format, "log format: text or json")

	solveCmd := &cobra.Command{
		Use:   "solve <input>",
		Short: "Print the baseline and discounted routes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), args[0])
			if err != nil {
				return err
			}
			return solve(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	sf := solveCmd.Flags()
	sf.Bool(flagColor, false, "style the output with terminal colors")
	sf.String(flagDOT, "", "also write the DOT rendering to this file")
	sf.String(flagMetricsFile, "", "write Prometheus metrics to this file")

	dotCmd := &cobra.Command{
		Use:   "dot <input>",
		Short: "Print the graph with both routes highlighted in Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), args[0])
			if err != nil {
				return err
			}
			return dot(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.AddCommand(solveCmd, dotCmd)

	return root
}

// resolveConfig layers the config file and explicitly set flags over the defaults.
func resolveConfig(fs *pflag.FlagSet, input string) (config.Config, error) {
	cfg := config.Default()
	if path, _ := fs.GetString(flagConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	cfg.Input = input

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case flagStart:
			v, _ := fs.GetInt(flagStart)
			cfg.Start = &v
		case flagEnd:
			v, _ := fs.GetInt(flagEnd)
			cfg.End = &v
		case flagLenient:
			cfg.Lenient, _ = fs.GetBool(flagLenient)
		case flagEnumeration:
			cfg.Enumeration = f.Value.String()
		case flagWorkers:
			cfg.Workers, _ = fs.GetInt(flagWorkers)
		case flagLogLevel:
			cfg.Log.Level = f.Value.String()
		case flagLogFormat:
			cfg.Log.Format = f.Value.String()
		case flagColor:
			cfg.Output.Color, _ = fs.GetBool(flagColor)
		case flagDOT:
			cfg.Output.DOT = f.Value.String()
		case flagMetricsFile:
			cfg.Output.MetricsFile = f.Value.String()
		}
	})

	return cfg, cfg.Validate()
}
