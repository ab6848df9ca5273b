package profile

import (
	"io"

	"kwprint/options"
	"kwprint/printer"
)

// Bases.
const (
	BasePrint = "print"
	BaseRaw   = "raw"
	BaseNoEnd = "noend"
)

// Targets.
const (
	TargetStdout = "stdout"
	TargetStderr = "stderr"
)

// SupportedVersion is the only profile file version understood.
const SupportedVersion = "1"

// File is the root structure of a profile file.
type File struct {
	Version  string    `yaml:"version"`
	Profiles []Profile `yaml:"profiles"`
}

// Profile is a named set of print defaults.
type Profile struct {
	Name   string  `yaml:"name"`
	Base   string  `yaml:"base,omitempty"`
	Sep    *string `yaml:"sep,omitempty"`
	End    *string `yaml:"end,omitempty"`
	Target string  `yaml:"target,omitempty"`
	Flush  bool    `yaml:"flush,omitempty"`
}

// Streams are the writers the targets of a profile resolve to.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Lookup returns the profile with the given name.
func (f *File) Lookup(name string) (Profile, bool) {
	for _, p := range f.Profiles {
		if p.Name == name {
			return p, true
		}
	}

	return Profile{}, false
}

// Defaults returns the printer defaults described by p.
func (p Profile) Defaults(s Streams) printer.Defaults {
	var d printer.Defaults

	switch p.Base {
	case BaseRaw:
		d = printer.RawDefaults()
	case BaseNoEnd:
		d = printer.NoEndDefaults()
	default:
		d = printer.PrintDefaults()
	}

	if p.Sep != nil {
		d.Sep = *p.Sep
	}

	if p.End != nil {
		d.End = *p.End
	}

	if p.Target == TargetStderr {
		d.File = s.Stderr
	} else {
		d.File = s.Stdout
	}

	return d
}

// Print prints args starting from the defaults of p. A flush profile adds a
// bare flush tag unless args already bind flush.
func (p Profile) Print(s Streams, args ...any) error {
	if p.Flush && !bindsFlush(args) {
		// clip so a spread caller slice is never written to
		args = append(args[:len(args):len(args)], printer.Flush)
	}

	return printer.PrintFrom[printer.NativeFlush](p.Defaults(s), args...)
}

func bindsFlush(args []any) bool {
	for _, arg := range args {
		if printer.Classify(arg) != printer.ClassOption {
			continue
		}

		if opt, ok := arg.(printer.Option); ok && opt.Field() == options.FieldFlush {
			return true
		}
	}

	return false
}
