package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}
	ctx := context.Background()
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "num2words: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return fmt.Errorf("missing command")
	}
	env, err := readEnv(ctx)
	if err != nil {
		return err
	}
	setupLogging(env.LogLevel)

	sub, rest := args[0], args[1:]
	switch sub {
	case "cardinal", "ordinal", "ordinal-num", "year", "currency":
		cfg, err := parseConvertFlags(sub, rest, env, stderr)
		if err != nil {
			return err
		}
		return runConvert(ctx, cfg, stdout)
	case "lexicon":
		cfg, err := parseLexiconFlags(rest, env, stderr)
		if err != nil {
			return err
		}
		return runLexicon(cfg, stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `num2words - spell numbers as words

usage: num2words <command> [options] <number>...

commands:
  cardinal      Cardinal words ("चार हजार दुई सय बत्तीस").
  ordinal       Ordinal words ("एक सयौँ").
  ordinal-num   Numeric ordinals ("22nd").
  year          Calendar year ("दुई हजार साल").
  currency      Currency amount ("पच्चीस रुपैयाँ पचास पैसा").
  lexicon       Print or validate a YAML lexicon.

environment (also read from .env):
  NUM2WORDS_LANG          default language (en)
  NUM2WORDS_CURRENCY      default currency code (USD)
  NUM2WORDS_LEXICON_DIR   directory of <lang>.yaml lexicons overriding the builtin ones
  NUM2WORDS_LOG_LEVEL     debug, info, warn or error (error)

Use 'num2words <command> -h' for command-specific flags.
`)
}
