// Package lexicon holds the word tables used to spell numbers.
// Builtin tables are embedded YAML files, one per language ("<lang>.yaml"),
// parsed and validated once. A Lexicon is never mutated after Load returns.
package lexicon

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// DefaultCurrency is the currencies key used when a code has no entry.
const DefaultCurrency = "default"

//go:embed data/*.yaml
var builtinFiles embed.FS

type Lexicon struct {
	Lang         string                   `yaml:"lang"`
	Words        Words                    `yaml:"words"`
	Units        []string                 `yaml:"units"`
	Tens         []string                 `yaml:"tens,omitempty"`
	Scales       []string                 `yaml:"scales"`
	Ordinals     []string                 `yaml:"ordinals,omitempty"`
	OrdinalWords map[string]string        `yaml:"ordinal_words,omitempty"`
	Currencies   map[string]CurrencyNames `yaml:"currencies"`
}

// Words are the fixed single-purpose tokens of a language.
type Words struct {
	Negative string `yaml:"negative"`
	Point    string `yaml:"point"`
	Infinity string `yaml:"infinity"`
	Year     string `yaml:"year,omitempty"`
	Hundred  string `yaml:"hundred,omitempty"`
	And      string `yaml:"and,omitempty"`
	Oh       string `yaml:"oh,omitempty"`
	BC       string `yaml:"bc,omitempty"`
}

type CurrencyNames struct {
	Major Forms `yaml:"major"`
	Minor Forms `yaml:"minor,omitempty"`
}

// Forms are CLDR plural forms of a word. Only "one" and "other" are used.
type Forms struct {
	One   string `yaml:"one,omitempty"`
	Other string `yaml:"other,omitempty"`
}

// For returns the word for the given plural form, falling back to Other.
func (f Forms) For(form string) string {
	if form == "one" && f.One != "" {
		return f.One
	}
	return f.Other
}

// Currency returns the names for an ISO code, or the default entry.
func (l *Lexicon) Currency(code string) CurrencyNames {
	if names, ok := l.Currencies[strings.ToUpper(code)]; ok {
		return names
	}
	return l.Currencies[DefaultCurrency]
}

// Zero is the word for the whole magnitude zero.
func (l *Lexicon) Zero() string {
	return l.Units[0]
}

// Load parses a lexicon from YAML and validates it.
func Load(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.UnmarshalStrict(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lexicon: %v", err)
	}
	if err := normalizeAndValidate(&lex); err != nil {
		return nil, err
	}
	return &lex, nil
}

// Builtin returns the embedded lexicon for lang.
func Builtin(lang string) (*Lexicon, error) {
	data, err := builtinFiles.ReadFile("data/" + normalizeLangTag(lang) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no builtin lexicon for language %s", lang)
	}
	return Load(data)
}

// MustBuiltin is Builtin for package initialization.
func MustBuiltin(lang string) *Lexicon {
	lex, err := Builtin(lang)
	if err != nil {
		panic(err)
	}
	return lex
}

// BuiltinLangs lists the languages with an embedded lexicon, sorted.
func BuiltinLangs() []string {
	entries, _ := builtinFiles.ReadDir("data")
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		langs = append(langs, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(langs)
	return langs
}

// LoadDir reads every "<lang>.yaml" file in dir, keyed by normalized
// language tag.
func LoadDir(dir string) (map[string]*Lexicon, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to find lexicons %v", err)
	}

	byLang := map[string]*Lexicon{}
	for _, file := range files {
		fileName := file.Name()
		if file.IsDir() || !strings.HasSuffix(fileName, ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, fileName))
		if err != nil {
			return nil, fmt.Errorf("failed to read lexicon file: %v", err)
		}
		lex, err := Load(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		lang := normalizeLangTag(strings.TrimSuffix(fileName, ".yaml"))
		if lex.Lang != "" && normalizeLangTag(lex.Lang) != lang {
			return nil, fmt.Errorf("%s: lexicon declares language %s", fileName, lex.Lang)
		}
		lex.Lang = lang
		byLang[lang] = lex
	}

	return byLang, nil
}

// Marshal renders the lexicon back to YAML.
func Marshal(lex *Lexicon) ([]byte, error) {
	return yaml.Marshal(lex)
}

func normalizeAndValidate(lex *Lexicon) error {
	lex.Lang = normalizeLangTag(lex.Lang)
	if lex.Lang == "" {
		return fmt.Errorf("invalid lexicon: lang is required")
	}
	if len(lex.Units) == 0 {
		return fmt.Errorf("invalid lexicon for language %s: units are required", lex.Lang)
	}
	if len(lex.Scales) == 0 {
		return fmt.Errorf("invalid lexicon for language %s: scales are required", lex.Lang)
	}
	for i, word := range lex.Units {
		if strings.TrimSpace(word) == "" {
			return fmt.Errorf("invalid lexicon for language %s: unit %d is empty", lex.Lang, i)
		}
	}
	for i, word := range lex.Scales {
		if strings.TrimSpace(word) == "" {
			return fmt.Errorf("invalid lexicon for language %s: scale %d is empty", lex.Lang, i)
		}
	}
	if lex.Words.Point == "" || lex.Words.Infinity == "" || lex.Words.Negative == "" {
		return fmt.Errorf("invalid lexicon for language %s: negative, point and infinity words are required", lex.Lang)
	}
	if _, ok := lex.Currencies[DefaultCurrency]; !ok {
		return fmt.Errorf("invalid lexicon for language %s: %s currency is required", lex.Lang, DefaultCurrency)
	}
	normalized := make(map[string]CurrencyNames, len(lex.Currencies))
	for code, names := range lex.Currencies {
		if names.Major.Other == "" {
			return fmt.Errorf("invalid lexicon for language %s: currency %s has no major name", lex.Lang, code)
		}
		if code != DefaultCurrency {
			code = strings.ToUpper(code)
		}
		normalized[code] = names
	}
	lex.Currencies = normalized

	return nil
}

func normalizeLangTag(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	lang = strings.ReplaceAll(lang, "_", "-")
	return lang
}
