//go:build windows

package output

import "os"

// redirectStdoutToDevNull is a no-op on windows: the POSIX SIGPIPE
// suppression trick in spec.md §5 does not apply there.
func redirectStdoutToDevNull() {}

func defaultExitProcess(code int) {
	os.Exit(code)
}
