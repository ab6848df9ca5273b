// Package profile provides named sets of print defaults loaded from YAML
// files or environment variables.
//
// A profile never changes the package defaults of printer; it produces a
// printer.Defaults value that a call starts from, so every call still
// resolves its own options.
//
// # Schema Overview
//
//	version: "1"
//	profiles:
//	  - name: csv
//	    sep: ","          # separator, missing or null keeps the base value
//	    end: "\n"         # terminator, missing or null keeps the base value
//	  - name: log
//	    base: noend       # print (default) | raw | noend
//	    target: stderr    # stdout (default) | stderr
//	    flush: true       # flush after every call
//
// # Bases
//
// The base selects the entry point a profile starts from:
//   - print: separator " ", terminator "\n"
//   - raw: no separator, no terminator
//   - noend: separator " ", no terminator
//
// # Environment
//
// [FromEnv] reads PREFIX_BASE, PREFIX_SEP, PREFIX_END, PREFIX_TARGET and
// PREFIX_FLUSH. An unset variable keeps the default, a set but empty one
// is an empty string.
package profile
