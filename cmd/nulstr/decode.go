package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/epithet-ssh/nulstr/pkg/nulstr"
	"github.com/epithet-ssh/nulstr/pkg/render"
)

// DecodeCLI decodes a file or stdin and prints the records.
type DecodeCLI struct {
	File      string `arg:"" optional:"" help:"File to decode; stdin when omitted or '-'."`
	Unquote   bool   `help:"Input is a Go-quoted string literal, as printed by 'encode --quote'" short:"u"`
	JSON      bool   `help:"Print the records as a JSON array" short:"j" name:"json"`
	Template  string `help:"Mustache template rendered once per record (keys: index, value, length)" short:"t" default:"${default_template}"`
	MaxLength int    `help:"Largest record length to accept; 0 for no limit" env:"NULSTR_MAX_LENGTH" default:"0"`
}

func (d *DecodeCLI) Run(logger *slog.Logger, s *streams) error {
	if d.MaxLength < 0 {
		return fmt.Errorf("--max-length must not be negative, got %d", d.MaxLength)
	}

	// Parse the template first so a typo fails before any output.
	var tmpl *render.Template
	if !d.JSON {
		var err error
		if tmpl, err = render.Parse(d.Template); err != nil {
			return err
		}
	}

	source := d.File
	if source == "" || source == "-" {
		source = "stdin"
	}

	data, err := d.readInput(s.in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	input := string(data)
	if d.Unquote {
		if input, err = strconv.Unquote(strings.TrimSpace(input)); err != nil {
			return fmt.Errorf("%s is not a quoted string: %w", source, err)
		}
	}

	var opts []nulstr.Option
	if d.MaxLength > 0 {
		opts = append(opts, nulstr.MaxLength(d.MaxLength))
	}

	records, err := nulstr.Decode(input, opts...)
	if err != nil {
		var de *nulstr.DecodeError
		if errors.As(err, &de) {
			logger.Debug("decode failed", "offset", de.Offset, "record", de.Record)
		}
		return fmt.Errorf("failed to decode %s: %w", source, err)
	}
	logger.Info("decoded", "records", len(records), "bytes", len(input))

	if d.JSON {
		return json.NewEncoder(s.out).Encode(records)
	}
	return tmpl.Render(s.out, records)
}

func (d *DecodeCLI) readInput(stdin io.Reader) ([]byte, error) {
	if d.File == "" || d.File == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(d.File)
}
