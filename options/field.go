package options

// FieldEnum is a set of option slots of a print call.
type FieldEnum int

const (
	FieldSep   FieldEnum = 1 << iota // separator written between printable values
	FieldEnd                         // terminator written after the last value
	FieldFile                        // channel every write goes to
	FieldFlush                       // whether the channel is flushed after the terminator

	FieldAll  FieldEnum = (1 << iota) - 1 // all slots combined
	FieldNone FieldEnum = 0               // no slots selected
)

// Has reports whether every slot of other is present in f.
func (f FieldEnum) Has(other FieldEnum) bool {
	return other != FieldNone && f&other == other
}

// With returns f with the slots of other added.
func (f FieldEnum) With(other FieldEnum) FieldEnum {
	return f | other
}

// Keyword returns the keyword name of a single slot, as callers spell it.
func (f FieldEnum) Keyword() string {
	switch f {
	case FieldSep:
		return "sep"
	case FieldEnd:
		return "end"
	case FieldFile:
		return "file"
	case FieldFlush:
		return "flush"
	default:
		return ""
	}
}

// Fields splits f into its single slots, in declaration order.
func (f FieldEnum) Fields() []FieldEnum {
	var out []FieldEnum
	for _, one := range []FieldEnum{FieldSep, FieldEnd, FieldFile, FieldFlush} {
		if f.Has(one) {
			out = append(out, one)
		}
	}

	return out
}

// String returns the keywords of all slots joined by "|", or "none".
func (f FieldEnum) String() string {
	fields := f.Fields()
	if len(fields) == 0 {
		return "none"
	}

	s := fields[0].Keyword()
	for _, one := range fields[1:] {
		s += "|" + one.Keyword()
	}

	return s
}
