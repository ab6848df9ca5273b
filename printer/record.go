package printer

import (
	"io"
	"os"

	"kwprint/options"
)

// Defaults are the option values an entry point starts from.
// A nil Sep or End means [Nothing]; a nil File means [os.Stdout].
type Defaults struct {
	Sep  any
	End  any
	File io.Writer
}

var (
	printDefaults = Defaults{Sep: " ", End: "\n"}
	rawDefaults   = Defaults{Sep: Nothing, End: Nothing}
	noEndDefaults = Defaults{Sep: " ", End: Nothing}
)

// PrintDefaults returns the defaults of [Print].
func PrintDefaults() Defaults { return printDefaults }

// RawDefaults returns the defaults of [RawPrint].
func RawDefaults() Defaults { return rawDefaults }

// NoEndDefaults returns the defaults of [PrintNoEnd].
func NoEndDefaults() Defaults { return noEndDefaults }

// Options returns a record holding d with no slot bound.
func (d Defaults) Options() Options {
	o := Options{Sep: d.Sep, End: d.End, File: d.File}
	if o.Sep == nil {
		o.Sep = Nothing
	}

	if o.End == nil {
		o.End = Nothing
	}

	return o
}

// Options is the resolved option record of one call.
// It is built by [Fold] and consumed once by [Emit].
type Options struct {
	Sep   any
	End   any
	File  io.Writer
	Flush bool

	set options.FieldEnum
}

// Set returns the slots bound explicitly by the call.
func (o Options) Set() options.FieldEnum { return o.set }

// IsSet reports whether slot f was bound explicitly.
func (o Options) IsSet(f options.FieldEnum) bool { return o.set.Has(f) }

// Channel returns the writer the call prints to.
func (o Options) Channel() io.Writer {
	if o.File == nil {
		return os.Stdout
	}

	return o.File
}

// ShouldFlush reports whether the call asked for a flush.
// Without any flush binding this is always false.
func (o Options) ShouldFlush() bool {
	return o.set.Has(options.FieldFlush) && o.Flush
}

// Merge folds arg into the record. Bindings and bare tags fill their slot,
// any other value leaves the record unchanged. Binding a slot twice panics
// with a [*DuplicateError].
func (o Options) Merge(arg any) Options {
	switch a := arg.(type) {
	case SepBinding:
		o.claim(options.FieldSep)
		o.Sep = a.Value
	case SepTag:
		return o.Merge(a.Is(Nothing))
	case EndBinding:
		o.claim(options.FieldEnd)
		o.End = a.Value
	case EndTag:
		return o.Merge(a.Is(Nothing))
	case FileBinding:
		o.claim(options.FieldFile)
		o.File = a.Writer
	case FlushBinding:
		o.claim(options.FieldFlush)
		o.Flush = a.Value
	case FlushTag:
		return o.Merge(a.Is(true))
	}

	return o
}

func (o *Options) claim(f options.FieldEnum) {
	if o.set.Has(f) {
		panic(&DuplicateError{Field: f})
	}

	o.set = o.set.With(f)
}

// Fold merges args left to right into the options of d.
func Fold(d Defaults, args []any) Options {
	o := d.Options()
	for _, arg := range args {
		o = o.Merge(arg)
	}

	return o
}
