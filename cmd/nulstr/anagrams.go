package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/epithet-ssh/nulstr/pkg/anagram"
)

// AnagramsCLI prints one group of anagrams per line.
type AnagramsCLI struct {
	Words []string `arg:"" optional:"" help:"Lowercase words (a-z, at most 100 letters each)."`
}

func (a *AnagramsCLI) Run(logger *slog.Logger, s *streams) error {
	groups, err := anagram.Group(a.Words)
	if err != nil {
		return err
	}
	logger.Info("grouped", "words", len(a.Words), "groups", len(groups))

	for _, g := range groups {
		if _, err := fmt.Fprintln(s.out, strings.Join(g, " ")); err != nil {
			return err
		}
	}
	return nil
}
