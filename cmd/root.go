package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	slogxtCobra "github.com/fornellas/slogxt/cobra"
	"github.com/fornellas/slogxt/log"
)

func getCmdChainStr(cmd *cobra.Command) string {
	cmdChain := []string{cmd.Name()}
	for {
		parentCmd := cmd.Parent()
		if parentCmd == nil {
			break
		}
		cmdChain = append([]string{parentCmd.Name()}, cmdChain...)
		cmd = parentCmd
	}
	return "⚙️ " + strings.Join(cmdChain, " ")
}

var RootCmd = &cobra.Command{
	Use:   "gct",
	Short: "G-Code coordinate transformer",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Environment Flags
		// Inspired by https://github.com/spf13/viper/issues/671#issuecomment-671067523
		v := viper.New()
		v.SetEnvPrefix("GCT")
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()
		var flagErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed && v.IsSet(f.Name) {
				if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil && flagErr == nil {
					flagErr = err
				}
			}
		})
		if flagErr != nil {
			return flagErr
		}

		// Logging
		logger := slogxtCobra.GetLogger(cmd.OutOrStderr()).
			WithGroup(getCmdChainStr(cmd))
		ctx := log.WithLogger(cmd.Context(), logger)
		cmd.SetContext(ctx)

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			logger := log.MustLogger(cmd.Context())
			logger.Error("Failed to display help", "err", err)
		}
		Exit(1)
	},
}

var resetFlagsFns = []func(){
	func() { slogxtCobra.Reset() },
}

func ResetFlags() {
	for _, resetFlagFn := range resetFlagsFns {
		resetFlagFn()
	}
}

func init() {
	slogxtCobra.AddLoggerFlags(RootCmd)
}
