package a

import (
	"io"

	"kwprint/printer"
)

type SepBinding struct{ Value any }

func variadic(args ...any) {}

func calls(w io.Writer, args []any) {
	_ = printer.Print("a", printer.Sep.Is("+"), printer.Sep.Is("-"))        // want "`sep` keyword argument passed multiple times to Print"
	_ = printer.Print(printer.End, "a", printer.End.Is("!"))                // want "`end` keyword argument passed multiple times to Print"
	_ = printer.RawPrint(printer.File.Is(w), printer.File.Is(w))            // want "`file` keyword argument passed multiple times to RawPrint"
	_ = printer.Print(printer.Flush, printer.Flush.Is(true), printer.Flush) // want "`flush` keyword argument passed multiple times" "`flush` keyword argument passed multiple times"

	_ = printer.PrintWith[printer.NativeFlush]("x", printer.Sep, printer.Sep)                // want "`sep` keyword argument passed multiple times to PrintWith"
	_ = printer.PrintFrom[printer.NativeFlush](printer.Defaults{}, printer.End, printer.End) // want "`end` keyword argument passed multiple times to PrintFrom"

	sep := printer.Sep.Is(",")
	_ = printer.Print("a", sep, printer.Sep) // want "`sep` keyword argument passed multiple times to Print"

	// One binding per slot is fine.
	_ = printer.Print("a", printer.Sep, printer.End.Is("!"), printer.File.Is(w), printer.Flush)

	// A bare File binds nothing.
	_ = printer.Print("a", printer.File, printer.File, printer.File.Is(w))

	// Spread calls are not checked.
	_ = printer.Print(append(args, printer.Sep, printer.Sep)...)

	// Only printer calls are checked.
	variadic(printer.Sep, printer.Sep)
	variadic(SepBinding{}, SepBinding{})
	_ = printer.Fold(printer.Defaults{}, []any{printer.Sep, printer.Sep})
}
