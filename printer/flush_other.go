//go:build !unix

package printer

import "io"

func (SyncFlush) Flush(w io.Writer) error {
	f, ok := w.(interface{ Sync() error })
	if !ok {
		return ErrFlushUnsupported
	}

	return f.Sync()
}
