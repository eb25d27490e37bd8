package num2words

import (
	"fmt"
	"strings"
)

// Output is the written form produced by ToWords.
type Output int

const (
	OutputCardinal Output = iota
	OutputOrdinal
	OutputOrdinalNum
	OutputYear
	OutputCurrency
)

var outputNames = map[Output]string{
	OutputCardinal:   "cardinal",
	OutputOrdinal:    "ordinal",
	OutputOrdinalNum: "ordinal-num",
	OutputYear:       "year",
	OutputCurrency:   "currency",
}

func (o Output) String() string {
	if name, ok := outputNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Output(%d)", int(o))
}

// ParseOutput resolves an output name ("cardinal", "ordinal", "ordinal-num",
// "year", "currency").
func ParseOutput(name string) (Output, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(name)), "_", "-")
	for o, n := range outputNames {
		if n == normalized {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown output %q", name)
}

// Num2Words collects the options of a single conversion:
//
//	words, err := num2words.New(num2words.FromInt64(42)).Lang(num2words.LangNepali).Ordinal().ToWords()
//
// Defaults are English cardinal, USD for currency output.
type Num2Words struct {
	num      Number
	lang     Lang
	output   Output
	currency Currency
}

func New(num Number) *Num2Words {
	return &Num2Words{
		num:      num,
		lang:     LangEnglish,
		output:   OutputCardinal,
		currency: USD,
	}
}

// Parse is New for a decimal string; it fails on invalid input.
func Parse(s string) (*Num2Words, error) {
	num, err := ParseNumber(s)
	if err != nil {
		return nil, err
	}
	return New(num), nil
}

func (n *Num2Words) Lang(lang Lang) *Num2Words {
	n.lang = lang
	return n
}

func (n *Num2Words) Output(output Output) *Num2Words {
	n.output = output
	return n
}

func (n *Num2Words) Cardinal() *Num2Words   { return n.Output(OutputCardinal) }
func (n *Num2Words) Ordinal() *Num2Words    { return n.Output(OutputOrdinal) }
func (n *Num2Words) OrdinalNum() *Num2Words { return n.Output(OutputOrdinalNum) }
func (n *Num2Words) Year() *Num2Words       { return n.Output(OutputYear) }

// Currency selects currency output in cur.
func (n *Num2Words) Currency(cur Currency) *Num2Words {
	n.currency = cur
	return n.Output(OutputCurrency)
}

func (n *Num2Words) ToWords() (string, error) {
	lang := ToLanguage(n.lang)
	if lang == nil {
		return "", newConversionError(KindCannotConvert, n.lang.String(), "language is not supported")
	}
	return convert(lang, n.output, n.num, n.currency)
}

func convert(lang Language, output Output, num Number, cur Currency) (string, error) {
	switch output {
	case OutputOrdinal:
		return lang.ToOrdinal(num)
	case OutputOrdinalNum:
		return lang.ToOrdinalNum(num)
	case OutputYear:
		return lang.ToYear(num)
	case OutputCurrency:
		return lang.ToCurrency(num, cur)
	default:
		return lang.ToCardinal(num)
	}
}
