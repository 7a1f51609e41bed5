package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/zeek/zeekscript/internal/ztszeek"
	"github.com/zeek/zeekscript/script"
)

var formatFlags = struct {
	inplace       *bool
	recursive     *bool
	noLinebreaks  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "format [files...]",
		Short:   "Rewrite Zeek scripts into their canonical layout",
		Example: `  zeekscript format -i -r policy/`,
		RunE:    runFormat,
	}
	formatFlags.inplace = cmd.Flags().BoolP("inplace", "i", false, "rewrite files in place instead of printing to stdout")
	formatFlags.recursive = cmd.Flags().BoolP("recursive", "r", false, "recurse into directories (requires -i)")
	formatFlags.noLinebreaks = cmd.Flags().Bool("no-linebreaks", false, "disable the line-wrapping pass (diagnostic aid)")
	rootCmd.AddCommand(cmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	inplace := *formatFlags.inplace
	recursive := *formatFlags.recursive
	linebreaks := !*formatFlags.noLinebreaks

	if recursive && !inplace {
		return fmt.Errorf("-r/--recursive requires -i/--inplace")
	}
	if len(args) > 1 && !inplace {
		return fmt.Errorf("multiple files require -i/--inplace")
	}

	files, err := expandFormatArgs(args, recursive)
	if err != nil {
		return err
	}

	if !inplace {
		path := "-"
		if len(files) == 1 {
			path = files[0]
		}
		return formatOne(cmd, path, linebreaks, os.Stdout)
	}

	var processed, failed int
	var batchErr error
	for _, path := range files {
		processed++
		if ferr := formatInPlace(path, linebreaks); ferr != nil {
			failed++
			batchErr = multierr.Append(batchErr, ferr)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, ferr)
		}
	}

	printSummary(cmd, processed, failed)
	if failed > 0 {
		return errSilent{multierr.Append(batchErr, fmt.Errorf("%d file(s) failed", failed))}
	}
	return nil
}

// errSilent carries a non-nil error for cobra's exit-code plumbing
// without SilenceErrors re-printing it (the batch loop above already
// printed each file's own diagnostic).
type errSilent struct{ err error }

func (e errSilent) Error() string { return "" }
func (e errSilent) Unwrap() error { return e.err }

func expandFormatArgs(args []string, recursive bool) ([]string, error) {
	if len(args) == 0 {
		return []string{"-"}, nil
	}

	var out []string
	for _, a := range args {
		if a == "-" {
			out = append(out, a)
			continue
		}
		info, err := os.Stat(a)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, a)
			continue
		}
		if !recursive {
			fmt.Fprintf(os.Stderr, "%s: is a directory, skipping (use -r)\n", a)
			continue
		}
		err = filepath.Walk(a, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && filepath.Ext(p) == ".zeek" {
				out = append(out, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func formatOne(cmd *cobra.Command, path string, linebreaks bool, w *os.File) error {
	sc := script.New(script.NewPath(path), ztszeek.Parser{})
	if _, err := sc.Parse(); err != nil {
		return err
	}
	return sc.Format(w, linebreaks)
}

func formatInPlace(path string, linebreaks bool) error {
	sc := script.New(script.NewPath(path), ztszeek.Parser{})
	if _, err := sc.Parse(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".zeekscript-fmt-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := sc.Format(tmp, linebreaks); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	if sc.HasError() {
		diag := sc.GetError()
		return fmt.Errorf("%s", diag.String())
	}
	return nil
}

func printSummary(cmd *cobra.Command, processed, failed int) {
	plural := func(n int) string {
		if n == 1 {
			return ""
		}
		return "s"
	}
	line := fmt.Sprintf("%d file%s processed, %d error%s", processed, plural(processed), failed, plural(failed))

	useColor := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !useColor {
		color.NoColor = true
	}
	if failed > 0 {
		color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), line)
	} else {
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), line)
	}
}
