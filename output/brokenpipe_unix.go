//go:build !windows

package output

import (
	"os"
	"syscall"
)

// redirectStdoutToDevNull swallows the SIGPIPE a second write to a
// closed stdout would raise, by pointing fd 1 at /dev/null
// (spec.md §5, §7 "Broken pipe on stdout").
func redirectStdoutToDevNull() {
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return
	}
	defer devnull.Close()
	syscall.Dup2(int(devnull.Fd()), int(os.Stdout.Fd()))
}

func defaultExitProcess(code int) {
	os.Exit(code)
}
