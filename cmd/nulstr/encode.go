package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/epithet-ssh/nulstr/pkg/nulstr"
)

// EncodeCLI encodes its arguments, or stdin lines when there are none.
type EncodeCLI struct {
	Items []string `arg:"" optional:"" help:"Strings to encode. Read from stdin, one per line, when omitted."`
	Quote bool     `help:"Print the encoding as a Go-quoted string literal" short:"q"`
}

func (e *EncodeCLI) Run(logger *slog.Logger, s *streams) error {
	items := e.Items
	if len(items) == 0 {
		lines, err := readLines(s.in)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		items = lines
	}

	for i, item := range items {
		if nulstr.HasSentinel(item) {
			logger.Warn("item contains a NUL byte, encoding is ambiguous", "index", i)
		}
	}

	out := nulstr.Encode(items)
	logger.Info("encoded", "items", len(items), "bytes", len(out))

	if e.Quote {
		out = strconv.Quote(out) + "\n"
	}
	_, err := io.WriteString(s.out, out)
	return err
}

// maxLineLength bounds a single stdin line.
const maxLineLength = 1 << 30

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lines := []string{}
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
