// Package config loads nulstr configuration files. YAML, JSON, and CUE are
// all accepted, with CUE as the underlying parser.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"
)

// LoadValueFromReader parses YAML (and therefore JSON) from r into a CUE
// value. Use LoadValue for .cue files.
func LoadValueFromReader(r io.Reader) (cue.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	return buildYAML(cuecontext.New(), "", data)
}

// LoadValue loads a configuration file or directory into a CUE value.
//
// .cue files and directories are loaded as CUE instances, so imports work.
// .yaml, .yml and .json files are parsed as data. Anything else is tried as
// YAML.
func LoadValue(path string) (cue.Value, error) {
	ctx := cuecontext.New()

	info, err := os.Stat(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() || strings.HasSuffix(strings.ToLower(path), ".cue") {
		return loadInstance(ctx, path, info.IsDir())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		val := ctx.CompileBytes(data, cue.Filename(path))
		if err := val.Err(); err != nil {
			return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
		}
		return val, nil
	}
	return buildYAML(ctx, path, data)
}

// LoadFromFile loads path with LoadValue and decodes it into a T. Field
// names come from json struct tags.
//
//	settings, err := config.LoadFromFile[Settings]("nulstr.yaml")
func LoadFromFile[T any](path string) (*T, error) {
	val, err := LoadValue(path)
	if err != nil {
		return nil, err
	}

	var out T
	if err := val.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &out, nil
}

func loadInstance(ctx *cue.Context, path string, isDir bool) (cue.Value, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := &load.Config{
		Dir:       filepath.Dir(absPath),
		DataFiles: true,
	}
	args := []string{absPath}
	if isDir {
		cfg.Dir = absPath
		args = []string{"."}
	}

	instances := load.Instances(args, cfg)
	if len(instances) == 0 {
		return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
	}
	if err := instances[0].Err; err != nil {
		return cue.Value{}, fmt.Errorf("failed to load config: %w", err)
	}

	val := ctx.BuildInstance(instances[0])
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

func buildYAML(ctx *cue.Context, filename string, data []byte) (cue.Value, error) {
	file, err := yaml.Extract(filename, data)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to parse config: %w", err)
	}

	val := ctx.BuildFile(file)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}
