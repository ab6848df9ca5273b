package printer

// Print writes args separated by " " and followed by "\n".
func Print(args ...any) error {
	return PrintFrom[NativeFlush](printDefaults, args...)
}

// RawPrint writes args with no separator and no terminator unless bound.
func RawPrint(args ...any) error {
	return PrintFrom[NativeFlush](rawDefaults, args...)
}

// PrintNoEnd writes args separated by " " with no terminator unless bound.
func PrintNoEnd(args ...any) error {
	return PrintFrom[NativeFlush](noEndDefaults, args...)
}

// PrintWith is [Print] with flush strategy F.
func PrintWith[F Flusher](args ...any) error {
	return PrintFrom[F](printDefaults, args...)
}

// RawPrintWith is [RawPrint] with flush strategy F.
func RawPrintWith[F Flusher](args ...any) error {
	return PrintFrom[F](rawDefaults, args...)
}

// PrintNoEndWith is [PrintNoEnd] with flush strategy F.
func PrintNoEndWith[F Flusher](args ...any) error {
	return PrintFrom[F](noEndDefaults, args...)
}

// PrintFrom resolves the options of args against d and prints them.
// The options are resolved before anything is written.
func PrintFrom[F Flusher](d Defaults, args ...any) error {
	return Emit[F](Fold(d, args), args)
}
