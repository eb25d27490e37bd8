package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loopcontext/num2words"
	"github.com/loopcontext/num2words/internal/lexicon"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_convert(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"cardinal", "-lang", "ne", "4232"}, "चार हजार दुई सय बत्तीस\n"},
		{[]string{"cardinal", "-lang", "ne", "100000", "-42"}, "एक लाख\n- बयालीस\n"},
		{[]string{"ordinal", "-lang", "np", "100"}, "एक सयौँ\n"},
		{[]string{"year", "-lang", "ne-NP", "2000"}, "दुई हजार साल\n"},
		{[]string{"currency", "-lang", "ne", "25.50"}, "पच्चीस रुपैयाँ पचास पैसा\n"},
		{[]string{"currency", "-currency", "gbp", "3.20"}, "three pounds and twenty pence\n"},
		{[]string{"ordinal-num", "22"}, "22nd\n"},
		{[]string{"cardinal", "1_000_000"}, "one million\n"},
	}
	for _, tt := range cases {
		got, err := runCLI(t, tt.args...)
		if err != nil {
			t.Fatalf("run(%v) error = %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("run(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRun_envDefaults(t *testing.T) {
	t.Setenv("NUM2WORDS_LANG", "ne")
	t.Setenv("NUM2WORDS_CURRENCY", "NPR")
	t.Setenv("NUM2WORDS_LOG_LEVEL", "debug")

	got, err := runCLI(t, "currency", "0.05")
	if err != nil {
		t.Fatal(err)
	}
	if got != "पाँच पैसा\n" {
		t.Errorf("currency 0.05 = %q", got)
	}
}

func TestRun_lexiconDir(t *testing.T) {
	dir := t.TempDir()
	lex := *lexicon.MustBuiltin("ne")
	lex.Words.Year = "वर्ष"
	data, err := lexicon.Marshal(&lex)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ne.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NUM2WORDS_LEXICON_DIR", dir)

	got, err := runCLI(t, "year", "-lang", "ne", "2081")
	if err != nil {
		t.Fatal(err)
	}
	if got != "दुई हजार एकास्सी वर्ष\n" {
		t.Errorf("year 2081 = %q", got)
	}
}

func TestRun_errors(t *testing.T) {
	if _, err := runCLI(t, "ordinal", "-lang", "ne", "1.5"); !errors.Is(err, num2words.ErrFloatingOrdinal) {
		t.Errorf("ordinal 1.5 error = %v, want ErrFloatingOrdinal", err)
	}
	if _, err := runCLI(t, "cardinal", "-lang", "ne", "10000000000000"); !errors.Is(err, num2words.ErrCannotConvert) {
		t.Errorf("cardinal 10^13 error = %v, want ErrCannotConvert", err)
	}
	if _, err := runCLI(t, "cardinal", "-lang", "fr", "7"); !errors.Is(err, num2words.ErrCannotConvert) {
		t.Errorf("cardinal -lang fr error = %v, want ErrCannotConvert", err)
	}
	if _, err := runCLI(t, "cardinal", "twelve"); err == nil {
		t.Error("cardinal twelve expected error")
	}
	if _, err := runCLI(t, "cardinal"); err == nil {
		t.Error("cardinal without numbers expected error")
	}
	if _, err := runCLI(t, "currency", "-currency", "dollars", "1"); err == nil {
		t.Error("invalid currency expected error")
	}
	if _, err := runCLI(t, "roman", "1"); err == nil {
		t.Error("unknown subcommand expected error")
	}
	if _, err := runCLI(t); err == nil {
		t.Error("missing command expected error")
	}
}

func TestRun_help(t *testing.T) {
	got, err := runCLI(t, "help")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "NUM2WORDS_LANG") {
		t.Errorf("help output missing environment section: %q", got)
	}
}

func TestRun_lexicon(t *testing.T) {
	got, err := runCLI(t, "lexicon", "-list")
	if err != nil {
		t.Fatal(err)
	}
	if got != "en\nne\n" {
		t.Errorf("lexicon -list = %q", got)
	}

	got, err = runCLI(t, "lexicon", "-lang", "nepali")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "करोड") || !strings.Contains(got, "lang: ne") {
		t.Errorf("lexicon dump missing nepali tables")
	}

	dir := t.TempDir()
	valid := filepath.Join(dir, "ne.yaml")
	if err := os.WriteFile(valid, []byte(got), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "lexicon", "-lang", "ne", "-check", valid)
	if err != nil {
		t.Fatalf("lexicon -check valid error = %v", err)
	}
	if !strings.Contains(out, "valid ne lexicon") {
		t.Errorf("lexicon -check = %q", out)
	}

	invalid := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(invalid, []byte("lang: ne\nunits: [एक]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "lexicon", "-lang", "ne", "-check", invalid); err == nil {
		t.Error("lexicon -check invalid expected error")
	}
}
