package output

import (
	"errors"
	"io/fs"
	"syscall"
)

// exitProcess is a package variable so tests can intercept process
// termination instead of actually exiting.
var exitProcess = defaultExitProcess

func isBrokenPipe(err error) bool {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return errors.Is(err, syscall.EPIPE)
}
