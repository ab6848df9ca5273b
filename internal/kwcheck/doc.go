// Package kwcheck provides the kwdup analyzer, which reports print calls
// that bind the same keyword option more than once.
//
// The printer package panics on such calls the first time they run. The
// analyzer finds them at build time from the static types of the
// arguments, so a vet step rejects them before they can run:
//
//	printer.Print("a", printer.Sep.Is("+"), printer.Sep)  // `sep` passed twice
//
// Calls that spread a slice (args...) are not checked.
package kwcheck
