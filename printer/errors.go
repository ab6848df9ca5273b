package printer

import (
	"errors"
	"fmt"

	"kwprint/options"
)

// ErrFlushUnsupported is returned by a [Flusher] when the channel offers no
// way to flush it.
var ErrFlushUnsupported = errors.New("printer: channel does not support flushing")

// DuplicateError is the panic value of a call that binds one option slot
// more than once.
type DuplicateError struct {
	Field options.FieldEnum
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("`%s` keyword argument passed multiple times to print()", e.Field.Keyword())
}
