// Package main provides the CLI entrypoint for kwprint.
//
// kwprint is an echo that prints its arguments through the printer package:
//   - -sep / -nosep and -end / -noend bind the separator and terminator
//   - -raw starts from raw print defaults
//   - -flush and -stderr pick flushing and the channel
//   - -config with -profile, or -env, start from a saved profile
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"kwprint/internal/profile"
	"kwprint/printer"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}

	if err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Error("kwprint failed", "err", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	sep, end     string
	noSep, noEnd bool
	raw, flush   bool
	toStderr     bool
	escapes      bool
	config, name string
	envPrefix    string

	// set when -sep or -end appear on the command line, even if empty
	explicitSep bool
	explicitEnd bool
}

func parseFlags(argv []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("kwprint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c cliFlags

	fs.StringVar(&c.sep, "sep", "", "separator written between arguments")
	fs.BoolVar(&c.noSep, "nosep", false, "write no separator")
	fs.StringVar(&c.end, "end", "", "terminator written after the last argument")
	fs.BoolVar(&c.noEnd, "noend", false, "write no terminator")
	fs.BoolVar(&c.raw, "raw", false, "start from raw print defaults (no separator, no terminator)")
	fs.BoolVar(&c.flush, "flush", false, "flush the output after printing")
	fs.BoolVar(&c.toStderr, "stderr", false, "print to standard error")
	fs.BoolVar(&c.escapes, "e", false, "interpret backslash escapes in -sep and -end")
	fs.StringVar(&c.config, "config", "", "YAML profile file")
	fs.StringVar(&c.name, "profile", "", "profile name in the -config file")
	fs.StringVar(&c.envPrefix, "env", "", "read a profile from PREFIX_* environment variables")

	if err := fs.Parse(argv); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sep":
			c.explicitSep = true
		case "end":
			c.explicitEnd = true
		}
	})

	if c.explicitSep && c.noSep {
		return nil, nil, errors.New("-sep and -nosep are mutually exclusive")
	}

	if c.explicitEnd && c.noEnd {
		return nil, nil, errors.New("-end and -noend are mutually exclusive")
	}

	return &c, fs.Args(), nil
}

func run(argv []string, stdout, stderr io.Writer) error {
	c, rest, err := parseFlags(argv, stderr)
	if err != nil {
		return err
	}

	prof, err := loadProfile(c)
	if err != nil {
		return err
	}

	if c.raw {
		prof.Base = profile.BaseRaw
	}

	args := make([]any, 0, len(rest)+4)
	for _, a := range rest {
		args = append(args, a)
	}

	switch {
	case c.noSep:
		args = append(args, printer.Sep)
	case c.explicitSep:
		sep, err := c.unescape(c.sep)
		if err != nil {
			return fmt.Errorf("invalid -sep: %w", err)
		}

		args = append(args, printer.Sep.Is(sep))
	}

	switch {
	case c.noEnd:
		args = append(args, printer.End)
	case c.explicitEnd:
		end, err := c.unescape(c.end)
		if err != nil {
			return fmt.Errorf("invalid -end: %w", err)
		}

		args = append(args, printer.End.Is(end))
	}

	if c.flush {
		args = append(args, printer.Flush)
	}

	if c.toStderr {
		args = append(args, printer.File.Is(stderr))
	}

	return prof.Print(profile.Streams{Stdout: stdout, Stderr: stderr}, args...)
}

func (c *cliFlags) unescape(s string) (string, error) {
	if !c.escapes {
		return s, nil
	}

	return strconv.Unquote(`"` + s + `"`)
}

func loadProfile(c *cliFlags) (profile.Profile, error) {
	switch {
	case c.config != "" && c.envPrefix != "":
		return profile.Profile{}, errors.New("-config and -env are mutually exclusive")

	case c.config != "":
		if c.name == "" {
			return profile.Profile{}, errors.New("-profile is required with -config")
		}

		f, err := profile.LoadFile(c.config)
		if err != nil {
			return profile.Profile{}, err
		}

		if err := profile.Validate(f).Error(); err != nil {
			return profile.Profile{}, fmt.Errorf("invalid profile file %s: %w", c.config, err)
		}

		p, ok := f.Lookup(c.name)
		if !ok {
			return profile.Profile{}, fmt.Errorf("profile %q not found in %s", c.name, c.config)
		}

		return p, nil

	case c.envPrefix != "":
		return profile.FromEnv(c.envPrefix)

	case c.name != "":
		return profile.Profile{}, errors.New("-profile requires -config")

	default:
		return profile.Profile{Name: "default", Base: profile.BasePrint, Target: profile.TargetStdout}, nil
	}
}
