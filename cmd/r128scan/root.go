// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/r128scan"
	"github.com/ik5/r128scan/internal/config"
	"github.com/ik5/r128scan/internal/logging"
)

type scanFlags struct {
	config    string
	rangeLRA  bool
	tagGain   bool
	truePeak  bool
	jobs      int
	output    string
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	var flags scanFlags

	rootCmd := &cobra.Command{
		Use:   "r128scan [flags] FILE...",
		Short: "Measure EBU R128 loudness and ReplayGain values of audio files",
		Long: `r128scan measures the integrated loudness of every file and of all files
together as one album. With -t it prints one ReplayGain line per file:
track gain, track peak, album gain and album peak, relative to -18 LUFS.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runScan(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	f.BoolVarP(&flags.rangeLRA, "range", "r", false, "Calculate loudness range")
	f.BoolVarP(&flags.tagGain, "tag-gain", "t", false, "Print ReplayGain track and album values")
	f.BoolVarP(&flags.truePeak, "true-peak", "p", false, "Use 4x oversampled true peak")
	f.IntVarP(&flags.jobs, "jobs", "j", 0, "Files analyzed in parallel (0 = one per CPU)")
	f.StringVarP(&flags.output, "output", "o", "", "Result format: auto, lines, table or json")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: auto, console or json")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command, flags scanFlags) (*config.Config, error) {
	cfg, _, _, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("range") {
		cfg.CalculateRange = flags.rangeLRA
	}
	if f.Changed("tag-gain") {
		cfg.TagGain = flags.tagGain
	}
	if f.Changed("true-peak") {
		cfg.TruePeak = flags.truePeak
	}
	if f.Changed("jobs") {
		cfg.Concurrency = flags.jobs
	}
	if f.Changed("output") {
		cfg.Output = normalizeFlag(flags.output)
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = normalizeFlag(flags.logLevel)
	}
	if f.Changed("log-format") {
		cfg.Logging.Format = normalizeFlag(flags.logFormat)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalizeFlag folds a choice flag the same way config values are folded.
func normalizeFlag(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func runScan(stdout, stderr io.Writer, cfg *config.Config, paths []string) error {
	logger, err := logging.NewFromConfig(cfg, stderr)
	if err != nil {
		return err
	}

	report, scanErr := r128scan.Scan(paths, cfg.Batch(), logger)
	if report == nil {
		return scanErr
	}

	if err := writeReport(stdout, stderr, cfg, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return scanErr
}

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a sample configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return err
				}
			}
			if err := config.CreateSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(initCmd)

	return configCmd
}
