//go:build unix

package printer

import (
	"io"

	"golang.org/x/sys/unix"
)

func (SyncFlush) Flush(w io.Writer) error {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return ErrFlushUnsupported
	}

	return unix.Fsync(int(f.Fd()))
}
