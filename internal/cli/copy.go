package cli

import (
	"github.com/spf13/cobra"
)

type CopyOptions struct {
	KeepExisting   bool
	OverrideDomain string
}

func NewCopyCmd() *cobra.Command {
	opts := &CopyOptions{}

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the source voice configuration into the target domain",
		RunE: func(c *cobra.Command, args []string) error {
			return runCopy(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.KeepExisting, "keep-existing", "k", false, "Keep the existing target configuration instead of erasing it first")
	cmd.Flags().StringVarP(&opts.OverrideDomain, "override-domain", "d", "", "Administrative domain override for target authentication")

	return cmd
}
