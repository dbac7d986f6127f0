package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"
)

// Exit terminates the process with the given status.
func Exit(status int) {
	os.Exit(status)
}

// GetRunFn adapts a RunE style function for use as cobra.Command.Run: any
// returned error is logged via the command context logger and the process
// exits non-zero.
func GetRunFn(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(cmd, args); err != nil {
			logger := log.MustLogger(cmd.Context())
			logger.Error("Failed", "err", err)
			Exit(1)
		}
	}
}
