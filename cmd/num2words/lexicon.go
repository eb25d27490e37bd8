package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/loopcontext/num2words"
	"github.com/loopcontext/num2words/internal/lexicon"
)

// lexiconConfig holds flags for the lexicon command.
type lexiconConfig struct {
	lang  string
	check string
	list  bool
}

func parseLexiconFlags(args []string, env *envConfig, stderr io.Writer) (*lexiconConfig, error) {
	fs := flag.NewFlagSet("lexicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, `usage: num2words lexicon [options]

Without -check, prints the builtin lexicon of -lang as YAML, a starting point
for a NUM2WORDS_LEXICON_DIR override. With -check, validates a lexicon file
against the rules of -lang.

Flags:
`)
		fs.PrintDefaults()
	}
	var cfg lexiconConfig
	fs.StringVar(&cfg.lang, "lang", env.Lang, "Language tag or alias.")
	fs.StringVar(&cfg.check, "check", "", "Lexicon YAML file to validate.")
	fs.BoolVar(&cfg.list, "list", false, "List builtin lexicon languages.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runLexicon(cfg *lexiconConfig, stdout io.Writer) error {
	if cfg.list {
		fmt.Fprintln(stdout, strings.Join(lexicon.BuiltinLangs(), "\n"))
		return nil
	}
	l, err := num2words.ParseLang(cfg.lang)
	if err != nil {
		return err
	}

	if cfg.check != "" {
		data, err := os.ReadFile(cfg.check)
		if err != nil {
			return fmt.Errorf("read lexicon: %w", err)
		}
		if _, err := num2words.LoadLanguage(l, data); err != nil {
			return fmt.Errorf("%s: %w", cfg.check, err)
		}
		fmt.Fprintf(stdout, "%s: valid %s lexicon\n", cfg.check, l)
		return nil
	}

	lex, err := lexicon.Builtin(l.String())
	if err != nil {
		return err
	}
	data, err := lexicon.Marshal(lex)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
