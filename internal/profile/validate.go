package profile

import (
	"fmt"

	"kwprint/internal/diagnostic"
)

// Validate checks a profile file. Profiles are checked after defaults are
// applied, so an empty base or target is an error here.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("profile_file_is_nil", "profile file is nil", "", "")
		return res
	}

	if f.Version != SupportedVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), "", "version")
	}

	if len(f.Profiles) == 0 {
		res.AddWarning("no_profiles", "profile file defines no profiles", "", "profiles")
	}

	seen := map[string]struct{}{}

	for i := range f.Profiles {
		p := f.Profiles[i]
		res.Merge(*ValidateProfile(p))

		if p.Name == "" {
			continue
		}

		if _, ok := seen[p.Name]; ok {
			res.AddError("duplicate_profile", fmt.Sprintf("duplicate profile %q", p.Name), p.Name, "name")
			continue
		}

		seen[p.Name] = struct{}{}
	}

	return res
}

// ValidateProfile checks a single profile.
func ValidateProfile(p Profile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if p.Name == "" {
		res.AddError("empty_name", "profile name is empty", "", "name")
	}

	switch p.Base {
	case BasePrint, BaseRaw, BaseNoEnd:
	default:
		res.AddError("unknown_base", fmt.Sprintf("unknown base %q", p.Base), p.Name, "base")
	}

	switch p.Target {
	case TargetStdout, TargetStderr:
	default:
		res.AddError("unknown_target", fmt.Sprintf("unknown target %q", p.Target), p.Name, "target")
	}

	if p.Base == BaseRaw && p.Sep == nil && p.End == nil {
		res.AddWarning("bare_raw", "raw profile writes values back to back", p.Name, "base")
	}

	return res
}
