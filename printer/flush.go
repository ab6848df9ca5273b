package printer

import (
	"io"
	"os"
)

// Flusher is a flush strategy. It is passed as a type parameter and used
// through its zero value, so implementations carry no state.
type Flusher interface {
	Flush(w io.Writer) error
}

// NativeFlush calls the channel's own Flush method. An [*os.File] is
// unbuffered and needs no flush; see [SyncFlush] to force it to disk.
type NativeFlush struct{}

func (NativeFlush) Flush(w io.Writer) error {
	switch f := w.(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case interface{ Flush() }:
		f.Flush()
		return nil
	case *os.File:
		return nil
	default:
		return ErrFlushUnsupported
	}
}

// NoFlush never touches the channel.
type NoFlush struct{}

func (NoFlush) Flush(io.Writer) error { return nil }

// SyncFlush commits a file channel to stable storage. Channels without a
// file descriptor get [ErrFlushUnsupported].
type SyncFlush struct{}
