package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"github.com/alecthomas/kong"
)

// KongLoader is a kong.ConfigurationLoader backed by LoadValueFromReader.
//
//	kong.Parse(&cli, kong.Configuration(config.KongLoader, "~/.config/nulstr/config.yaml"))
func KongLoader(r io.Reader) (kong.Resolver, error) {
	val, err := LoadValueFromReader(r)
	if err != nil {
		return nil, err
	}
	return Resolver(val), nil
}

// File is a kong flag naming a configuration file. Unlike kong.ConfigFlag,
// which hands the loader a bare reader, File loads by extension through
// LoadValue, so .cue files and directories work as well as YAML and JSON.
//
//	Config config.File `help:"Configuration file" short:"c"`
type File string

// BeforeResolve loads the file and adds it as a resolver.
func (File) BeforeResolve(ctx *kong.Context, trace *kong.Path) error {
	path, ok := ctx.FlagValue(trace.Flag).(File)
	if !ok || path == "" {
		return nil
	}
	val, err := LoadValue(kong.ExpandPath(string(path)))
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	ctx.AddResolver(Resolver(val))
	return nil
}

// Resolver returns a kong.Resolver that looks up each flag by name in the
// top level of val. Both "max-length" and "max_length" spellings match.
func Resolver(val cue.Value) kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name}
		if alt := strings.ReplaceAll(flag.Name, "-", "_"); alt != flag.Name {
			names = append(names, alt)
		}

		for _, name := range names {
			v := val.LookupPath(cue.MakePath(cue.Str(name)))
			if !v.Exists() {
				continue
			}
			s, err := scalar(v)
			if err != nil {
				return nil, fmt.Errorf("config key %q: %w", name, err)
			}
			return s, nil
		}
		return nil, nil
	})
}

// scalar renders a concrete CUE scalar as the string kong would have seen
// on the command line.
func scalar(v cue.Value) (string, error) {
	switch v.Kind() {
	case cue.StringKind:
		return v.String()
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case cue.FloatKind, cue.NumberKind:
		f, err := v.Float64()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	default:
		return "", fmt.Errorf("unsupported value kind %v", v.Kind())
	}
}
