package profile

import (
	"fmt"
	"strconv"

	"github.com/xyproto/env/v2"
)

// EnvName is the profile name given to profiles read from the environment.
const EnvName = "env"

// FromEnv reads a profile from environment variables starting with prefix.
func FromEnv(prefix string) (Profile, error) {
	return FromLookup(prefix, func(key string) (string, bool) {
		if !env.Has(key) {
			return "", false
		}

		return env.Str(key), true
	})
}

// FromLookup reads a profile through lookup, which reports whether a
// variable is set. Unset variables keep their defaults.
func FromLookup(prefix string, lookup func(string) (string, bool)) (Profile, error) {
	p := Profile{Name: EnvName}

	if v, ok := lookup(prefix + "_BASE"); ok {
		p.Base = v
	}

	if v, ok := lookup(prefix + "_SEP"); ok {
		p.Sep = &v
	}

	if v, ok := lookup(prefix + "_END"); ok {
		p.End = &v
	}

	if v, ok := lookup(prefix + "_TARGET"); ok {
		p.Target = v
	}

	if v, ok := lookup(prefix + "_FLUSH"); ok && v != "" {
		flush, err := strconv.ParseBool(v)
		if err != nil {
			return Profile{}, fmt.Errorf("invalid %s_FLUSH %q: %w", prefix, v, err)
		}

		p.Flush = flush
	}

	applyProfileDefaults(&p)

	diags := ValidateProfile(p)
	if err := diags.Error(); err != nil {
		return Profile{}, fmt.Errorf("invalid environment profile: %w", err)
	}

	return p, nil
}
