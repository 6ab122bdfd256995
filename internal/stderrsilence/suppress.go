package stderrsilence

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Suppress runs fn with the process-level standard-error file descriptor
// redirected to the null device, restoring the original descriptor before
// returning. Restoration happens even when fn returns an error or panics.
// Descriptor operations that fail are reported, not swallowed.
func Suppress(fn func() error) (err error) {
	stderrFd := int(os.Stderr.Fd())

	savedFd, err := unix.Dup(stderrFd)
	if err != nil {
		return fmt.Errorf("saving stderr descriptor: %w", err)
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		_ = unix.Close(savedFd)
		return fmt.Errorf("opening %s: %w", os.DevNull, err)
	}

	_ = os.Stderr.Sync()
	if err := unix.Dup3(int(devNull.Fd()), stderrFd, 0); err != nil {
		_ = devNull.Close()
		_ = unix.Close(savedFd)
		return fmt.Errorf("redirecting stderr: %w", err)
	}

	defer func() {
		_ = os.Stderr.Sync()
		restoreErr := unix.Dup3(savedFd, stderrFd, 0)
		_ = unix.Close(savedFd)
		_ = devNull.Close()
		if err == nil && restoreErr != nil {
			err = fmt.Errorf("restoring stderr: %w", restoreErr)
		}
	}()

	return fn()
}
