// Package main provides kwvet, a vet tool that reports print calls binding
// the same keyword option more than once.
//
//	go vet -vettool=$(which kwvet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"kwprint/internal/kwcheck"
)

func main() {
	singlechecker.Main(kwcheck.Analyzer)
}
