package printer

import (
	"fmt"
	"io"
)

// ValueWriter is implemented by channels that format values themselves.
// Channels without it get values through [fmt.Fprint].
type ValueWriter interface {
	WriteValue(v any) error
}

type sepState bool

const (
	awaitingSep sepState = false
	readyForSep sepState = true
)

// Emit writes the printable values of args to the channel of o, then the
// terminator, then flushes with F when o asks for it. Options in args are
// skipped and [Nothing] resets the separator state. The first error of the
// channel or of F is returned as is.
func Emit[F Flusher](o Options, args []any) error {
	w := o.Channel()
	state := awaitingSep

	for _, arg := range args {
		switch Classify(arg) {
		case ClassOption:
			continue
		case ClassNothing:
			state = awaitingSep
			continue
		}

		if state == readyForSep && !IsNothing(o.Sep) {
			if err := writeValue(w, o.Sep); err != nil {
				return err
			}
		}

		if err := writeValue(w, arg); err != nil {
			return err
		}

		state = readyForSep
	}

	if !IsNothing(o.End) {
		if err := writeValue(w, o.End); err != nil {
			return err
		}
	}

	if !o.ShouldFlush() {
		return nil
	}

	var flusher F

	return flusher.Flush(w)
}

func writeValue(w io.Writer, v any) error {
	if vw, ok := w.(ValueWriter); ok {
		return vw.WriteValue(v)
	}

	_, err := fmt.Fprint(w, v)

	return err
}
