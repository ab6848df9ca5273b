package printer

import (
	"io"

	"kwprint/options"
)

// Option is implemented by every tag and binding of this package.
type Option interface {
	// Field returns the option slot the tag or binding targets.
	Field() options.FieldEnum
}

// SepTag is the type of [Sep].
type SepTag struct{}

// SepBinding binds the separator to Value.
type SepBinding struct{ Value any }

// EndTag is the type of [End].
type EndTag struct{}

// EndBinding binds the terminator to Value.
type EndBinding struct{ Value any }

// FileTag is the type of [File].
type FileTag struct{}

// FileBinding binds the channel to Writer. A nil Writer means [os.Stdout].
type FileBinding struct{ Writer io.Writer }

// FlushTag is the type of [Flush].
type FlushTag struct{}

// FlushBinding binds the flush flag to Value.
type FlushBinding struct{ Value bool }

// Tags. Used bare, Sep and End bind [Nothing] and Flush binds true.
// A bare File binds nothing and is only elided from the output.
var (
	Sep   SepTag
	End   EndTag
	File  FileTag
	Flush FlushTag
)

// Is binds the separator to v.
func (SepTag) Is(v any) SepBinding { return SepBinding{Value: v} }

// Is binds the terminator to v.
func (EndTag) Is(v any) EndBinding { return EndBinding{Value: v} }

// Is binds the channel to w. The writer is borrowed, never closed.
func (FileTag) Is(w io.Writer) FileBinding { return FileBinding{Writer: w} }

// Is binds the flush flag to b.
func (FlushTag) Is(b bool) FlushBinding { return FlushBinding{Value: b} }

// Field returns the option slot the tag or binding targets.
func (SepTag) Field() options.FieldEnum       { return options.FieldSep }
func (SepBinding) Field() options.FieldEnum   { return options.FieldSep }
func (EndTag) Field() options.FieldEnum       { return options.FieldEnd }
func (EndBinding) Field() options.FieldEnum   { return options.FieldEnd }
func (FileTag) Field() options.FieldEnum      { return options.FieldFile }
func (FileBinding) Field() options.FieldEnum  { return options.FieldFile }
func (FlushTag) Field() options.FieldEnum     { return options.FieldFlush }
func (FlushBinding) Field() options.FieldEnum { return options.FieldFlush }
