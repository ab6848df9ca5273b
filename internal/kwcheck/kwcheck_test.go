package kwcheck_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"kwprint/internal/kwcheck"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), kwcheck.Analyzer, "a")
}
