package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("unused_key", "key is ignored", "csv", "color")
	assert.True(t, d.IsValid())

	d.AddError("unknown_target", `unknown target "printer"`, "csv", "target")
	d.AddError("empty_name", "profile name is empty", "", "")
	assert.False(t, d.IsValid())
	assert.Equal(t, []string{"unknown_target", "empty_name"}, d.Codes())

	assert.EqualError(t, d.Error(),
		`[csv] target: [unknown_target] unknown target "printer"; [empty_name] profile name is empty`)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddWarning("z", "third", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, DiagnosticWarning, a.Warnings[0].Severity)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
