package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/epithet-ssh/nulstr/pkg/topk"
)

// TopkCLI prints the k most frequent numbers, most frequent first.
type TopkCLI struct {
	K    int     `help:"How many values to print" short:"k" required:""`
	Nums []int64 `arg:"" optional:"" help:"Numbers to count."`
}

func (c *TopkCLI) Run(logger *slog.Logger, s *streams) error {
	vals, err := topk.Frequent(c.Nums, c.K)
	if err != nil {
		return err
	}
	logger.Debug("topk", "k", c.K, "inputs", len(c.Nums), "results", len(vals))

	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	_, err = fmt.Fprintln(s.out, strings.Join(parts, " "))
	return err
}
