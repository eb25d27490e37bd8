package num2words

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/loopcontext/num2words/internal/lexicon"
	"github.com/loopcontext/num2words/internal/plural"
)

const (
	englishUnits = 20
	englishTens  = 10
	thousand     = 1000
)

// Units whose ordinal is not formed with a suffix.
var englishIrregularOrdinals = []int{1, 2, 3, 5, 8, 9, 12}

// English spells numbers with short-scale thousands grouping.
type English struct {
	lex *lexicon.Lexicon
}

func newEnglish(lex *lexicon.Lexicon) (*English, error) {
	if len(lex.Units) != englishUnits {
		return nil, fmt.Errorf("invalid english lexicon: %d units, want %d", len(lex.Units), englishUnits)
	}
	if len(lex.Tens) != englishTens {
		return nil, fmt.Errorf("invalid english lexicon: %d tens, want %d", len(lex.Tens), englishTens)
	}
	for i := 2; i < englishTens; i++ {
		if lex.Tens[i] == "" {
			return nil, fmt.Errorf("invalid english lexicon: tens %d is empty", i)
		}
	}
	if lex.Words.Hundred == "" || lex.Words.And == "" {
		return nil, fmt.Errorf("invalid english lexicon: hundred and and words are required")
	}
	if lex.Words.Oh == "" || lex.Words.BC == "" {
		return nil, fmt.Errorf("invalid english lexicon: oh and bc words are required")
	}
	for _, i := range englishIrregularOrdinals {
		if lex.OrdinalWords[lex.Units[i]] == "" {
			return nil, fmt.Errorf("invalid english lexicon: ordinal of %q is required", lex.Units[i])
		}
	}
	return &English{lex: lex}, nil
}

func mustEnglish(lex *lexicon.Lexicon) *English {
	en, err := newEnglish(lex)
	if err != nil {
		panic(err)
	}
	return en
}

func (en *English) lang() string {
	return en.lex.Lang
}

// groupWords appends the words of a group in [1, 999].
func (en *English) groupWords(words []string, group uint64) []string {
	if h := group / 100; h > 0 {
		words = append(words, en.lex.Units[h], en.lex.Words.Hundred)
	}
	rest := group % 100
	switch {
	case rest == 0:
	case rest < englishUnits:
		words = append(words, en.lex.Units[rest])
	case rest%10 == 0:
		words = append(words, en.lex.Tens[rest/10])
	default:
		words = append(words, en.lex.Tens[rest/10]+"-"+en.lex.Units[rest%10])
	}
	return words
}

// intWords appends the words of the non-zero integer magnitude m.
func (en *English) intWords(words []string, m uint64) ([]string, error) {
	groups := splitUniform(m, thousand)
	for i := highestGroup(groups); i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		if i > len(en.lex.Scales) {
			return nil, newConversionError(KindCannotConvert, en.lang(), "%d exceeds the largest scale %s", m, en.lex.Scales[len(en.lex.Scales)-1])
		}
		words = en.groupWords(words, groups[i])
		if i != 0 {
			words = append(words, en.lex.Scales[i-1])
		}
	}
	return words, nil
}

func (en *English) cardinalWords(n Number) ([]string, error) {
	if n.IsInf() {
		if n.IsNegInf() {
			return []string{en.lex.Words.Negative, en.lex.Words.Infinity}, nil
		}
		return []string{en.lex.Words.Infinity}, nil
	}
	if n.IsZero() {
		return []string{en.lex.Zero()}, nil
	}

	var words []string
	if n.IsNeg() {
		words = append(words, en.lex.Words.Negative)
	}
	m := n.intPart()
	digits := n.fracDigits()
	var err error
	if m != 0 {
		if words, err = en.intWords(words, m); err != nil {
			return nil, err
		}
	} else if digits != "" {
		words = append(words, en.lex.Zero())
	}
	if digits != "" {
		words = append(words, en.lex.Words.Point)
		for i := 0; i < len(digits); i++ {
			words = append(words, en.lex.Units[digits[i]-'0'])
		}
	}
	return words, nil
}

func (en *English) ToCardinal(n Number) (string, error) {
	words, err := en.cardinalWords(n)
	if err != nil {
		return "", err
	}
	return joinWords(words), nil
}

// ordinalWord turns the last cardinal word into its ordinal form, looking only
// at the part after the last hyphen ("forty-two" -> "forty-second").
func (en *English) ordinalWord(word string) string {
	prefix := ""
	if idx := strings.LastIndex(word, "-"); idx >= 0 {
		prefix, word = word[:idx+1], word[idx+1:]
	}
	if irregular, ok := en.lex.OrdinalWords[word]; ok {
		return prefix + irregular
	}
	if strings.HasSuffix(word, "y") {
		return prefix + strings.TrimSuffix(word, "y") + "ieth"
	}
	return prefix + word + "th"
}

func (en *English) ToOrdinal(n Number) (string, error) {
	if n.IsInf() {
		return "", newConversionError(KindCannotConvert, en.lang(), "infinity has no ordinal")
	}
	if !n.IsInt() {
		return "", newConversionError(KindFloatingOrdinal, en.lang(), "%s", n)
	}
	words, err := en.cardinalWords(n)
	if err != nil {
		return "", err
	}
	last := len(words) - 1
	words[last] = en.ordinalWord(words[last])
	return joinWords(words), nil
}

func (en *English) ToOrdinalNum(n Number) (string, error) {
	if n.IsInf() {
		return "", newConversionError(KindCannotConvert, en.lang(), "infinity has no ordinal")
	}
	if !n.IsInt() {
		return "", newConversionError(KindFloatingOrdinal, en.lang(), "%s", n)
	}
	m := n.intPart()
	suffix := "th"
	if m%100 < 11 || m%100 > 13 {
		switch m % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	sign := ""
	if n.IsNeg() {
		sign = "-"
	}
	return sign + strconv.FormatUint(m, 10) + suffix, nil
}

// ToYear reads years in pairs of digits ("nineteen eighty-four"). Years
// ending in 01..09 after a round century, years below 100 and years from
// 10000 on are read as cardinals. Negative years are suffixed with BC.
func (en *English) ToYear(n Number) (string, error) {
	if n.IsInf() {
		return "", newConversionError(KindCannotConvert, en.lang(), "infinity is not a year")
	}
	if !n.IsInt() {
		return "", newConversionError(KindFloatingYear, en.lang(), "%s", n)
	}
	year := n.intPart()
	if year == 0 {
		return en.lex.Zero(), nil
	}

	high, low := year/100, year%100
	var words []string
	var err error
	if high == 0 || (high%10 == 0 && low < 10) || high >= 100 {
		if words, err = en.intWords(words, year); err != nil {
			return "", err
		}
	} else {
		words = en.groupWords(words, high)
		switch {
		case low == 0:
			words = append(words, en.lex.Words.Hundred)
		case low < 10:
			words = append(words, en.lex.Words.Oh+"-"+en.lex.Units[low])
		default:
			words = en.groupWords(words, low)
		}
	}
	if n.IsNeg() {
		words = append(words, en.lex.Words.BC)
	}
	return joinWords(words), nil
}

// ToCurrency names the units of cur with plural forms. Minor units follow
// the currency's standard digits; currencies without subunits drop the
// fraction.
func (en *English) ToCurrency(n Number, cur Currency) (string, error) {
	names := en.lex.Currency(cur.Code())
	if n.IsInf() {
		words, err := en.cardinalWords(n)
		if err != nil {
			return "", err
		}
		return joinWords(append(words, names.Major.Other)), nil
	}

	digits := cur.MinorDigits()
	if names.Minor.Other == "" {
		digits = 0
	}
	major := n.intPart()
	minor := n.minorUnits(digits)

	var words []string
	if n.IsNeg() && (major != 0 || minor != 0) {
		words = append(words, en.lex.Words.Negative)
	}
	var err error
	if major != 0 || minor == 0 {
		if major == 0 {
			words = append(words, en.lex.Zero())
		} else if words, err = en.intWords(words, major); err != nil {
			return "", err
		}
		words = append(words, names.Major.For(plural.Form(en.lang(), major)))
	}
	if minor != 0 {
		if major != 0 {
			words = append(words, en.lex.Words.And)
		}
		if words, err = en.intWords(words, minor); err != nil {
			return "", err
		}
		words = append(words, names.Minor.For(plural.Form(en.lang(), minor)))
	}
	return joinWords(words), nil
}
