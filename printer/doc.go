// Package printer provides a Python-style print call with keyword options
// for Go.
//
// A call mixes printable values with option bindings in any order:
//
//	printer.Print("a", "b")                              // "a b\n"
//	printer.Print("a", "b", printer.Sep.Is("; "))        // "a; b\n"
//	printer.Print("x", printer.End.Is("!"))              // "x!"
//	printer.Print("x", printer.File.Is(os.Stderr), printer.Flush)
//
// # Options
//
// There are four option slots, each with a tag:
//
//   - [Sep]: separator written between printable values (default " ")
//   - [End]: terminator written after the last value (default "\n")
//   - [File]: channel all writes go to (default [os.Stdout])
//   - [Flush]: flush the channel after the terminator (default false)
//
// A tag bound with Is produces a binding. A bare tag is a binding to its
// implicit value: [Sep] and [End] mean [Nothing], [Flush] means true.
// Each slot may be bound at most once per call. Binding it twice is a
// programmer error: the call panics with a [*DuplicateError] before
// anything is written, and the kwvet analyzer reports the same call at
// build time.
//
// # Nothing
//
// [Nothing] is the "print nothing here" marker. As a positional value it is
// never written and suppresses the separator on both sides of it. As the
// value of [Sep] or [End] it suppresses that write entirely, which differs
// from an empty string: an empty separator is still handed to the channel.
//
// # Entry points
//
//   - [Print]: separator " ", terminator "\n"
//   - [RawPrint]: separator and terminator default to [Nothing]
//   - [PrintNoEnd]: separator " ", terminator [Nothing]
//
// Each has a With variant taking a [Flusher] type parameter that selects how
// flushing is done, and [PrintFrom] accepts arbitrary [Defaults].
//
// # Channels
//
// A channel is an [io.Writer] borrowed for the duration of the call; it is
// never closed or buffered by this package. Values are formatted with
// [fmt.Fprint] unless the channel implements [ValueWriter]. Errors returned
// by the channel are returned unchanged and abort the rest of the call.
package printer
