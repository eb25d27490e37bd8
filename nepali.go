package num2words

import (
	"fmt"
	"strings"

	"github.com/loopcontext/num2words/internal/lexicon"
)

const (
	// nepaliUnits is the size of the unit table: every value of a two-digit group.
	nepaliUnits = 100
	// rankedOrdinals counts the ordinals for ranks 1..99. The round ordinals
	// (hundredth, thousandth, ...) follow them in the same table.
	rankedOrdinals = 99
	paisaDigits    = 2
)

// Nepali spells numbers with the South Asian grouping (सय, हजार, लाख, करोड, ...).
// Currency phrases always use rupees and paisa whatever currency is selected.
type Nepali struct {
	lex *lexicon.Lexicon
}

func newNepali(lex *lexicon.Lexicon) (*Nepali, error) {
	if len(lex.Units) != nepaliUnits {
		return nil, fmt.Errorf("invalid nepali lexicon: %d units, want %d", len(lex.Units), nepaliUnits)
	}
	if len(lex.Ordinals) <= rankedOrdinals {
		return nil, fmt.Errorf("invalid nepali lexicon: %d ordinals, want more than %d", len(lex.Ordinals), rankedOrdinals)
	}
	if lex.Words.Year == "" {
		return nil, fmt.Errorf("invalid nepali lexicon: year word is required")
	}
	return &Nepali{lex: lex}, nil
}

func mustNepali(lex *lexicon.Lexicon) *Nepali {
	np, err := newNepali(lex)
	if err != nil {
		panic(err)
	}
	return np
}

func (np *Nepali) lang() string {
	return np.lex.Lang
}

func (np *Nepali) infinity(n Number) string {
	if n.IsNegInf() {
		return np.lex.Words.Negative + np.lex.Words.Infinity
	}
	return np.lex.Words.Infinity
}

// intWords appends the words of the integer magnitude m. Zero groups emit
// nothing, so m must be non-zero.
func (np *Nepali) intWords(words []string, m uint64) ([]string, error) {
	groups := splitIrregular(m)
	for i := highestGroup(groups); i >= 0; i-- {
		group := groups[i]
		if group == 0 {
			continue
		}
		if i > len(np.lex.Scales) {
			return nil, newConversionError(KindCannotConvert, np.lang(), "%d exceeds the largest scale %s", m, np.lex.Scales[len(np.lex.Scales)-1])
		}
		words = append(words, np.lex.Units[group])
		if i != 0 {
			words = append(words, np.lex.Scales[i-1])
		}
	}
	return words, nil
}

func (np *Nepali) ToCardinal(n Number) (string, error) {
	if n.IsInf() {
		return np.infinity(n), nil
	}
	if n.IsZero() {
		return np.lex.Zero(), nil
	}

	var words []string
	if n.IsNeg() {
		words = append(words, np.lex.Words.Negative)
	}

	var err error
	if m := n.intPart(); m != 0 {
		if words, err = np.intWords(words, m); err != nil {
			return "", err
		}
	}
	if digits := n.fracDigits(); digits != "" {
		words = append(words, np.lex.Words.Point)
		for i := 0; i < len(digits); i++ {
			words = append(words, np.lex.Units[digits[i]-'0'])
		}
	}
	return joinWords(words), nil
}

func (np *Nepali) ToOrdinal(n Number) (string, error) {
	if n.IsInf() {
		return "", newConversionError(KindCannotConvert, np.lang(), "infinity has no ordinal")
	}
	if !n.IsInt() {
		return "", newConversionError(KindFloatingOrdinal, np.lang(), "%s", n)
	}

	groups := splitIrregular(n.intPart())
	lowest := lowestGroup(groups)
	if lowest < 0 {
		return "", newConversionError(KindCannotConvert, np.lang(), "zero has no ordinal")
	}

	var ordinal string
	if lowest == 0 {
		ordinal = np.lex.Ordinals[groups[0]-1]
	} else {
		idx := rankedOrdinals + lowest - 1
		if idx >= len(np.lex.Ordinals) {
			return "", newConversionError(KindCannotConvert, np.lang(), "no ordinal for %s", n)
		}
		ordinal = np.lex.Ordinals[idx]
	}

	cardinal, err := np.ToCardinal(n)
	if err != nil {
		return "", err
	}
	words := strings.Fields(cardinal)
	words[len(words)-1] = ordinal
	return joinWords(words), nil
}

func (np *Nepali) ToOrdinalNum(n Number) (string, error) {
	return "", newConversionError(KindCannotConvert, np.lang(), "numeric ordinals are not supported")
}

func (np *Nepali) ToYear(n Number) (string, error) {
	if n.IsInf() {
		return "", newConversionError(KindCannotConvert, np.lang(), "infinity is not a year")
	}
	if !n.IsInt() {
		return "", newConversionError(KindFloatingYear, np.lang(), "%s", n)
	}
	cardinal, err := np.ToCardinal(n)
	if err != nil {
		return "", err
	}
	return cardinal + " " + np.lex.Words.Year, nil
}

// ToCurrency ignores cur: the unit names are always rupees and paisa.
func (np *Nepali) ToCurrency(n Number, _ Currency) (string, error) {
	if n.IsInf() {
		return np.infinity(n), nil
	}

	names := np.lex.Currency(lexicon.DefaultCurrency)
	major := n.intPart()
	paisa := n.minorUnits(paisaDigits)

	var words []string
	if n.IsNeg() && (major != 0 || paisa != 0) {
		words = append(words, np.lex.Words.Negative)
	}
	var err error
	if major != 0 || paisa == 0 {
		if major == 0 {
			words = append(words, np.lex.Zero())
		} else if words, err = np.intWords(words, major); err != nil {
			return "", err
		}
		words = append(words, names.Major.Other)
	}
	if paisa != 0 {
		if words, err = np.intWords(words, paisa); err != nil {
			return "", err
		}
		words = append(words, names.Minor.Other)
	}
	return joinWords(words), nil
}
