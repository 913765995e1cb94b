package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bank-interior/config"
)

type options struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "bankviz",
		Short:         "Procedural bank branch interior viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.load()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "branch YAML file (built-in branch when empty)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")

	rootCmd.AddCommand(viewCmd(opts))
	rootCmd.AddCommand(exportCmd(opts))
	rootCmd.AddCommand(censusCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bankviz:", err)
		os.Exit(1)
	}
}

func (o *options) load() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if o.configPath == "" {
		o.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

func viewCmd(opts *options) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window and orbit the branch (1/2/3 presets, R reset, Esc quit)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runView(opts, view)
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "start from a preset: top, side or iso")
	return cmd
}

func exportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export [out.glb|out.gltf]",
		Short: "Write the built branch to glTF",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(opts, args[0])
		},
	}
}

func censusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "census",
		Short: "Print how many of each element the branch contains",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCensus(opts)
		},
	}
}
