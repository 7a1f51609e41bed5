package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zeekscript",
	Short: "Format and inspect Zeek scripts",
	Long: `zeekscript provides two features:
- Rewrites Zeek scripts into their canonical, one-true-style layout.
- Dumps a Zeek script's parse tree, for debugging the grammar or the
  formatter itself.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and returns any error it produced,
// already printed to stderr once here so subcommands never need to
// print their own top-level failure.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if err.Error() != "" {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		return err
	}
	return nil
}
