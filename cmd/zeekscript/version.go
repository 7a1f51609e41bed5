package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the module's release version, supplementing a feature
// the Python original exposes as zeekscript.__version__.
const Version = "0.1.0"

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the zeekscript version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
