// SPDX-License-Identifier: MIT

// Package cli wires the apcover sub-commands: generate, solve and bench.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries state shared by all sub-commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	log        *logrus.Logger
}

// NewRootCommand returns the apcover command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "apcover",
		Short: "Greedy Wi-Fi access point placement",
		Long: `apcover picks a small set of access points whose coverage includes every room,
using the greedy set-cover approximation. It can also generate random
instances and time the solver on growing instance sizes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(a.logLevel, a.logFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		newGenerateCommand(a),
		newSolveCommand(a),
		newBenchCommand(a),
	)

	return rootCmd
}
