package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dyne/strtasks/internal/config"
	"github.com/dyne/strtasks/internal/log"
	"github.com/dyne/strtasks/internal/pipeline"
	"github.com/dyne/strtasks/internal/rect"
	"github.com/dyne/strtasks/internal/rot13"
	"github.com/dyne/strtasks/internal/strtask"
	"github.com/dyne/strtasks/internal/transform"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	Verbose bool
	Config  string
	Plugins []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootOpts := &globalOptions{}
	root := &cobra.Command{
		Use:           "strtasks",
		Short:         "Small text transformations: ROT13, box drawing, trimming, casing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&rootOpts.Verbose, "verbose", false, "enable debug logging")
	root.PersistentFlags().StringVar(&rootOpts.Config, "config", "", "step configuration file")
	root.PersistentFlags().StringSliceVar(&rootOpts.Plugins, "plugin", nil, "plugin .so path (repeatable)")

	root.AddCommand(rot13Cmd())
	root.AddCommand(rectCmd())
	root.AddCommand(cardCmd())
	root.AddCommand(applyCmd(rootOpts))
	root.AddCommand(planCmd(rootOpts))
	root.AddCommand(listCmd(rootOpts))
	return root
}

func newLogger(cmd *cobra.Command, opts *globalOptions) *log.Logger {
	level := log.LevelInfo
	if opts.Verbose {
		level = log.LevelDebug
	}
	return log.New(level, cmd.ErrOrStderr())
}

func rot13Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rot13 [text...]",
		Short: "Encode or decode text with ROT13 (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				_, err := fmt.Fprintln(out, rot13.Transform(strings.Join(args, " ")))
				return err
			}
			p, err := pipeline.Build(config.FromTypes([]string{"rot13"}), nil)
			if err != nil {
				return err
			}
			return p.Run(cmd.Context(), cmd.InOrStdin(), out)
		},
	}
}

func rectCmd() *cobra.Command {
	var width, height int
	var border string
	cmd := &cobra.Command{
		Use:   "rect",
		Short: "Draw a rectangle outline",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := rect.BorderByName(border)
			if err != nil {
				return err
			}
			s, err := rect.RenderBorder(width, height, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "outer width in cells (>= 2)")
	cmd.Flags().IntVar(&height, "height", 0, "outer height in rows (>= 2)")
	cmd.Flags().StringVar(&border, "border", "normal", "border style ("+strings.Join(rect.BorderNames(), "|")+")")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func cardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card <card>",
		Short: "Print the deck index of a playing card, e.g. 10♥",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strtask.CardID(args[0])
			if id < 0 {
				return fmt.Errorf("unknown card: %s", args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}

func buildPipeline(cmd *cobra.Command, opts *globalOptions, steps []string) (*pipeline.Pipeline, *log.Logger, error) {
	if err := transform.LoadPlugins(opts.Plugins); err != nil {
		return nil, nil, err
	}
	logger := newLogger(cmd, opts)
	var cfg *config.Config
	if len(steps) > 0 {
		cfg = config.FromTypes(steps)
	} else {
		var err error
		cfg, err = config.Load(opts.Config)
		if err != nil {
			return nil, nil, err
		}
	}
	p, err := pipeline.Build(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return p, logger, nil
}

func applyCmd(rootOpts *globalOptions) *cobra.Command {
	var steps []string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run the configured steps over each line of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, logger, err := buildPipeline(cmd, rootOpts, steps)
			if err != nil {
				return err
			}
			if p.Len() == 0 {
				logger.Infof("no steps configured, copying input unchanged")
			}
			return p.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVar(&steps, "step", nil, "transformer type (repeatable, overrides --config)")
	return cmd
}

func planCmd(rootOpts *globalOptions) *cobra.Command {
	var steps []string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the configured steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := buildPipeline(cmd, rootOpts, steps)
			if err != nil {
				return err
			}
			return p.Plan(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVar(&steps, "step", nil, "transformer type (repeatable, overrides --config)")
	return cmd
}

func listCmd(rootOpts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transformer types",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := transform.LoadPlugins(rootOpts.Plugins); err != nil {
				return err
			}
			for _, name := range transform.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
