package main

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	log     *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qbfmt",
		Short: "Compile a JSON query description into dialect-specific SQL",
		Long: `qbfmt reads a JSON-described query — table, columns, WHERE predicates,
ordering, pagination — from stdin or a file and prints the SQL a
github.com/corvuslabs/sqlqb Compiler would produce for a chosen dialect.

It exists to exercise the library the way an application would; the query
builder and compiler themselves have no CLI, no flags, and no I/O.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a qbfmt config file (YAML)")
	root.AddCommand(newCompileCmd())
	return root
}

// Execute runs the qbfmt root command, using logger for startup/failure
// diagnostics.
func Execute(logger *zap.Logger) error {
	log = logger
	return newRootCmd().Execute()
}
