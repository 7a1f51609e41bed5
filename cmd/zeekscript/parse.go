package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeek/zeekscript/internal/ztszeek"
	"github.com/zeek/zeekscript/script"
)

var parseFlags = struct {
	concrete *bool
	quiet    *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse [file]",
		Short:   "Dump a Zeek script's parse tree",
		Example: `  zeekscript parse -c policy/site.zeek`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runParse,
	}
	parseFlags.concrete = cmd.Flags().BoolP("concrete", "c", false, "interleave comments and blank lines into the dump")
	parseFlags.quiet = cmd.Flags().BoolP("quiet", "q", false, "suppress the dump, keep only the exit code")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	sc := script.New(script.NewPath(path), ztszeek.Parser{})
	ok, err := sc.Parse()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return errExitCode(1)
	}

	if !*parseFlags.quiet {
		if werr := sc.WriteTree(cmd.OutOrStdout(), *parseFlags.concrete); werr != nil {
			return errExitCode(1)
		}
	}

	if !ok {
		diag := sc.GetError()
		if !*parseFlags.quiet && diag.Msg != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), diag.String())
		}
		return errExitCode(2)
	}
	return nil
}

// errExitCode is a sentinel error type main.go reads the exit code
// off of, since Execute's "print once" contract otherwise assumes
// every failure is the generic exit(1).
type errExitCode int

func (e errExitCode) Error() string { return "" }

func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := err.(errExitCode); ok {
		return int(code)
	}
	return 1
}
