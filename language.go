package num2words

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/loopcontext/num2words/internal/lexicon"
)

// Language spells numbers in one language. Implementations are immutable and
// safe for concurrent use.
type Language interface {
	ToCardinal(n Number) (string, error)
	ToOrdinal(n Number) (string, error)
	// ToOrdinalNum renders numeric ordinals ("21st"); languages without that
	// convention return a KindCannotConvert error.
	ToOrdinalNum(n Number) (string, error)
	ToYear(n Number) (string, error)
	ToCurrency(n Number, cur Currency) (string, error)
}

type Lang int

const (
	LangEnglish Lang = iota
	LangNepali
)

var langTags = map[Lang]string{
	LangEnglish: "en",
	LangNepali:  "ne",
}

// Aliases accepted by ParseLang besides BCP 47 tags.
var langAliases = map[string]Lang{
	"np":      LangNepali,
	"nepali":  LangNepali,
	"english": LangEnglish,
}

var builtinLanguages = map[Lang]Language{
	LangEnglish: mustEnglish(lexicon.MustBuiltin("en")),
	LangNepali:  mustNepali(lexicon.MustBuiltin("ne")),
}

func (l Lang) String() string {
	if tag, ok := langTags[l]; ok {
		return tag
	}
	return fmt.Sprintf("Lang(%d)", int(l))
}

// Tag returns the BCP 47 tag of the language.
func (l Lang) Tag() language.Tag {
	return language.Make(l.String())
}

// Langs lists every supported language.
func Langs() []Lang {
	return []Lang{LangEnglish, LangNepali}
}

// ParseLang resolves a language tag such as "ne", "ne-NP", "en_US" or an
// alias ("np", "nepali") to a supported language. Region and script
// subtags are ignored.
func ParseLang(tag string) (Lang, error) {
	normalized := normalizeLangTag(tag)
	if normalized == "" {
		return 0, fmt.Errorf("language is required")
	}
	if l, ok := langAliases[normalized]; ok {
		return l, nil
	}
	parsed, err := language.Parse(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid language tag %q: %w", tag, err)
	}
	base, _ := parsed.Base()
	for l, t := range langTags {
		if base.String() == t {
			return l, nil
		}
	}
	return 0, fmt.Errorf("language %s is not supported", normalized)
}

// ToLanguage returns the builtin implementation of l, or nil if l is unknown.
func ToLanguage(l Lang) Language {
	return builtinLanguages[l]
}

// LoadLanguage builds an implementation of l from a YAML lexicon with the
// same layout as the builtin one. The lexicon is validated against the
// table sizes the language needs.
func LoadLanguage(l Lang, data []byte) (Language, error) {
	lex, err := lexicon.Load(data)
	if err != nil {
		return nil, err
	}
	return newLanguage(l, lex)
}

func newLanguage(l Lang, lex *lexicon.Lexicon) (Language, error) {
	switch l {
	case LangEnglish:
		return newEnglish(lex)
	case LangNepali:
		return newNepali(lex)
	default:
		return nil, fmt.Errorf("language %s is not supported", l)
	}
}

func normalizeLangTag(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	lang = strings.ReplaceAll(lang, "_", "-")
	return lang
}

func baseLangTag(lang string) string {
	if idx := strings.Index(lang, "-"); idx > 0 {
		return lang[:idx]
	}
	return lang
}

// joinWords joins tokens with the single word separator.
func joinWords(words []string) string {
	return strings.Join(words, " ")
}
