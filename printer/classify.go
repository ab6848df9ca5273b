package printer

//go:generate go tool stringer -type=ClassEnum -output=class_string.go

// ClassEnum tells how the printing algorithm treats an argument.
type ClassEnum int

const (
	_ ClassEnum = iota // skip zero value, use it as an invalid class

	ClassData    // written to the channel
	ClassOption  // tag or binding, elided
	ClassNothing // the sentinel, elided and resets the separator
)

// Classify returns the class of arg. Only the concrete tag and binding types
// of this package are options; pointers to them are ordinary data.
func Classify(arg any) ClassEnum {
	switch arg.(type) {
	case NothingType:
		return ClassNothing
	case SepTag, SepBinding, EndTag, EndBinding, FileTag, FileBinding, FlushTag, FlushBinding:
		return ClassOption
	default:
		return ClassData
	}
}
