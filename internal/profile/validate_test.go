package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	res := Validate(f)
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Errors(t *testing.T) {
	f, err := Parse([]byte(`
version: "2"
profiles:
  - name: a
  - name: a
  - name: ""
  - name: b
    base: fancy
    target: printer
`))
	require.NoError(t, err)

	res := Validate(f)
	assert.False(t, res.IsValid())
	assert.ElementsMatch(t,
		[]string{"unsupported_version", "duplicate_profile", "empty_name", "unknown_base", "unknown_target"},
		res.Codes())
}

func TestValidate_Warnings(t *testing.T) {
	res := Validate(&File{Version: SupportedVersion})
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "no_profiles", res.Warnings[0].Code)

	res = ValidateProfile(Profile{Name: "r", Base: BaseRaw, Target: TargetStdout})
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "bare_raw", res.Warnings[0].Code)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"profile_file_is_nil"}, res.Codes())
}
