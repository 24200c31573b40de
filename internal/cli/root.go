// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vcm",
		Short: "VCM - voice configuration migration between administrative domains",
		Long: `VCM is a CLI tool for copying telephony routing configuration (dialplans,
voice routes, voice policies, PSTN usages, gateways and translation rules)
from a source administrative domain into a target one. Re-running against a
partially populated target is safe: existing entities are updated in place.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewCopyCmd())

	return rootCmd
}
