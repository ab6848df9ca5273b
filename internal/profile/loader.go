package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML profile file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = SupportedVersion
	}

	for i := range f.Profiles {
		applyProfileDefaults(&f.Profiles[i])
	}
}

func applyProfileDefaults(p *Profile) {
	if p.Base == "" {
		p.Base = BasePrint
	}

	if p.Target == "" {
		p.Target = TargetStdout
	}
}

// quoted is a string emitted as a double-quoted YAML scalar so that
// escapes and surrounding blanks survive a round trip.
type quoted string

func (q quoted) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Tag:   "!!str",
		Value: string(q),
	}, nil
}

func quote(s *string) *quoted {
	if s == nil {
		return nil
	}

	q := quoted(*s)

	return &q
}

// MarshalYAML writes Sep and End double-quoted.
func (p Profile) MarshalYAML() (any, error) {
	return struct {
		Name   string  `yaml:"name"`
		Base   string  `yaml:"base,omitempty"`
		Sep    *quoted `yaml:"sep,omitempty"`
		End    *quoted `yaml:"end,omitempty"`
		Target string  `yaml:"target,omitempty"`
		Flush  bool    `yaml:"flush,omitempty"`
	}{
		Name:   p.Name,
		Base:   p.Base,
		Sep:    quote(p.Sep),
		End:    quote(p.End),
		Target: p.Target,
		Flush:  p.Flush,
	}, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}

	return nil
}
