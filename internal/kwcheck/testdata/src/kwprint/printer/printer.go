package printer

import "io"

type NothingType struct{}

var Nothing NothingType

type SepTag struct{}
type SepBinding struct{ Value any }
type EndTag struct{}
type EndBinding struct{ Value any }
type FileTag struct{}
type FileBinding struct{ Writer io.Writer }
type FlushTag struct{}
type FlushBinding struct{ Value bool }

var (
	Sep   SepTag
	End   EndTag
	File  FileTag
	Flush FlushTag
)

func (SepTag) Is(v any) SepBinding         { return SepBinding{Value: v} }
func (EndTag) Is(v any) EndBinding         { return EndBinding{Value: v} }
func (FileTag) Is(w io.Writer) FileBinding { return FileBinding{Writer: w} }
func (FlushTag) Is(b bool) FlushBinding    { return FlushBinding{Value: b} }

type Defaults struct{ Sep, End any }

type Flusher interface{ Flush(w io.Writer) error }

type NativeFlush struct{}

func (NativeFlush) Flush(io.Writer) error { return nil }

func Print(args ...any) error                            { return nil }
func RawPrint(args ...any) error                         { return nil }
func PrintWith[F Flusher](args ...any) error             { return nil }
func PrintFrom[F Flusher](d Defaults, args ...any) error { return nil }
func Fold(d Defaults, args []any) Defaults               { return d }
