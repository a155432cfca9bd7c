package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/epithet-ssh/nulstr/internal/logging"
	"github.com/epithet-ssh/nulstr/pkg/config"
	"github.com/epithet-ssh/nulstr/pkg/render"
)

// CLI is the root command.
type CLI struct {
	Verbose int             `help:"Increase log verbosity (-v info, -vv debug)" short:"v" type:"counter"`
	Config  config.File `help:"Configuration file (YAML, JSON or CUE) supplying flag defaults" short:"c"`

	Encode   EncodeCLI   `cmd:"" help:"Encode strings into a single NUL-framed string"`
	Decode   DecodeCLI   `cmd:"" help:"Decode a NUL-framed string back into its strings"`
	Anagrams AnagramsCLI `cmd:"" help:"Group words that are anagrams of each other"`
	Topk     TopkCLI     `cmd:"" name:"topk" help:"Print the k most frequent numbers"`
}

// streams are the command's standard input and output.
type streams struct {
	in  io.Reader
	out io.Writer
}

const defaultConfigPath = "~/.config/nulstr/config.yaml"

// newParser builds the kong parser. YAML config files at configPaths are read
// if they exist; --config adds one more of any supported format.
func newParser(cli *CLI, configPaths []string, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("nulstr"),
		kong.Description("Pack lists of strings into one NUL-framed string and back."),
		kong.UsageOnError(),
		kong.Configuration(config.KongLoader, configPaths...),
		kong.Vars{"default_template": render.DefaultTemplate},
	}, opts...)
	return kong.New(cli, opts...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, []string{defaultConfigPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := logging.New(os.Stderr, cli.Verbose)
	logger.Debug("command", "name", ctx.Command())

	err = ctx.Run(logger, &streams{in: os.Stdin, out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
