// SPDX-License-Identifier: MIT
// Package: tsgen/cmd/tsgen
//
// root.go — root command, config loading and logger lifetime.

package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsgen/config"
	"github.com/katalvlaran/tsgen/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfgFile  string
	logLevel string

	cfg *config.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tsgen",
		Short: "Synthetic time series generator",
		Long: `tsgen builds composite time series out of parameterised components.

A series spec (YAML) lists components by kind with their option values and
instance seeds; generate prints the resulting series as JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/tsgen/config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(
		a.kindsCmd(),
		a.describeCmd(),
		a.generateCmd(),
		a.validateCmd(),
	)
	// cobra skips post-run hooks when RunE fails, so the logger is closed
	// by each subcommand itself.
	for _, c := range root.Commands() {
		c.RunE = a.closing(c.RunE)
	}
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		v.Set("logging.level", a.logLevel)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return err
	}
	a.log = log.With("command", cmd.Name())
	a.log.Debug("config loaded", "file", v.ConfigFileUsed())
	return nil
}

// closing wraps run so the logger is closed whether or not run fails.
func (a *app) closing(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		return errors.Join(err, a.teardown())
	}
}

func (a *app) teardown() error {
	if a.log == nil {
		return nil
	}
	err := a.log.Close()
	a.log = nil
	return err
}

// writeJSON prints v indented, followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
