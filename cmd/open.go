package main

import (
	"github.com/ManouchehrRasoulli/notefs/pkg/opener"
	"github.com/spf13/cobra"
)

var openCommand = &cobra.Command{
	Use:   "open <path>",
	Short: "Show a path in the system file manager",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return opener.NewOpener(current.cfg.Opener.Command, current.lg).Open(args[0])
	},
}
