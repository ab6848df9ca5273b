package printer

// NothingType is the type of [Nothing].
type NothingType struct{}

// Nothing is the sentinel that is never written to a channel.
// It is equal only to itself.
var Nothing NothingType

// IsNothing reports whether v is the [Nothing] sentinel.
func IsNothing(v any) bool {
	_, ok := v.(NothingType)
	return ok
}
