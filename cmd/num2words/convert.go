package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/loopcontext/num2words"
)

// convertConfig holds flags for the conversion commands.
type convertConfig struct {
	output     num2words.Output
	lang       string
	currency   string
	lexiconDir string
	numbers    []string
}

func parseConvertFlags(sub string, args []string, env *envConfig, stderr io.Writer) (*convertConfig, error) {
	output, err := num2words.ParseOutput(sub)
	if err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet(sub, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: num2words %s [options] <number>...\n\nFlags:\n", sub)
		fs.PrintDefaults()
	}
	cfg := convertConfig{output: output}
	fs.StringVar(&cfg.lang, "lang", env.Lang, "Language tag or alias (e.g. ne, ne-NP, np, en).")
	fs.StringVar(&cfg.currency, "currency", env.Currency, "ISO 4217 currency code for the currency command.")
	fs.StringVar(&cfg.lexiconDir, "lexicons", env.LexiconDir, "Directory of <lang>.yaml lexicons overriding the builtin ones.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.numbers = fs.Args()
	if len(cfg.numbers) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("%s: at least one number is required", sub)
	}
	return &cfg, nil
}

func runConvert(ctx context.Context, cfg *convertConfig, stdout io.Writer) error {
	cur, err := num2words.ParseCurrency(cfg.currency)
	if err != nil {
		return err
	}
	converter, err := num2words.NewConverter(num2words.Config{
		ResourcePath:    cfg.lexiconDir,
		DefaultLanguage: cfg.lang,
		DefaultCurrency: cur,
		Observer:        logObserver{},
	})
	if err != nil {
		return err
	}
	defer num2words.Close(converter)

	ctx = context.WithValue(ctx, num2words.ContextKey("language"), cfg.lang)
	for _, input := range cfg.numbers {
		n, err := num2words.ParseNumber(input)
		if err != nil {
			return err
		}
		words, err := convertWithCtx(ctx, converter, cfg.output, n)
		if err != nil {
			log.Errorw("conversion failed", "input", input, "output", cfg.output.String(), "lang", cfg.lang, "error", err)
			return err
		}
		log.Debugw("converted", "input", input, "output", cfg.output.String(), "lang", cfg.lang)
		fmt.Fprintln(stdout, words)
	}
	return nil
}

func convertWithCtx(ctx context.Context, converter num2words.Converter, output num2words.Output, n num2words.Number) (string, error) {
	switch output {
	case num2words.OutputOrdinal:
		return converter.OrdinalWithCtx(ctx, n)
	case num2words.OutputOrdinalNum:
		return converter.OrdinalNumWithCtx(ctx, n)
	case num2words.OutputYear:
		return converter.YearWithCtx(ctx, n)
	case num2words.OutputCurrency:
		return converter.CurrencyWithCtx(ctx, n, nil)
	default:
		return converter.CardinalWithCtx(ctx, n)
	}
}
