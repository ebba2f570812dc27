// Package main provides the dizin schema tool: it checks schema files
// for definition errors and dumps the resolved catalog in canonical
// RFC 4512 form.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:           "dizin",
		Short:         "Directory schema tool",
		Long:          "dizin loads, validates and renders directory schema definitions.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newDumpCmd())
	return cmd
}
