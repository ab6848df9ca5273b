package printer_test

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"kwprint/printer"
)

func Example() {
	_ = printer.Print("Hello,", "world!")
	_ = printer.Print(1, "+", 4, "==", 1+4)
	_ = printer.Print(1, 4, printer.Sep.Is("; "))
	_ = printer.Print("a", "", "b", printer.End.Is("\n"), printer.Sep.Is("+"))
	_ = printer.Print("a", printer.Nothing, "b", printer.Sep.Is("+"))
	_ = printer.Print("a", "b", "c", printer.End, printer.Sep)
	_ = printer.Print()
	// Output:
	// Hello, world!
	// 1 + 4 == 5
	// 1; 4
	// a++b
	// ab
	// abc
}

func Example_file() {
	var sb strings.Builder

	_ = printer.Print(1, printer.File.Is(&sb), printer.End.Is("; "))
	_ = printer.Print(4, printer.File.Is(&sb))
	_ = printer.Print(sb.String(), printer.File.Is(os.Stdout), printer.Flush)
	// Output:
	// 1; 4
}

func ExampleRawPrint() {
	_ = printer.RawPrint("x", "y", "z", "\n")
	_ = printer.PrintNoEnd("x", "y", "z")
	fmt.Println()
	// Output:
	// xyz
	// x y z
}

type flushTwice struct{}

func (flushTwice) Flush(w io.Writer) error {
	if err := (printer.NativeFlush{}).Flush(w); err != nil {
		return err
	}

	return printer.NativeFlush{}.Flush(w)
}

func ExamplePrintWith() {
	var sb strings.Builder

	bw := bufio.NewWriter(&sb)
	_ = printer.PrintWith[flushTwice]("flushed", printer.File.Is(bw), printer.Flush)
	fmt.Print(sb.String())
	// Output:
	// flushed
}

func ExampleOptions_Merge() {
	defer func() {
		fmt.Println(recover())
	}()

	_ = printer.Print("a", printer.Sep.Is("+"), printer.Sep.Is("-"))
	// Output:
	// `sep` keyword argument passed multiple times to print()
}
