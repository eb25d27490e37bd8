package num2words

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// Currency selects the major/minor unit names of a currency phrase.
// The zero value is the ISO "XXX" (no currency) unit.
type Currency struct {
	unit currency.Unit
}

var (
	USD = Currency{currency.USD}
	EUR = Currency{currency.EUR}
	GBP = Currency{currency.GBP}
	JPY = Currency{currency.JPY}
	CHF = Currency{currency.CHF}
	CAD = Currency{currency.CAD}
	AUD = Currency{currency.AUD}
	CNY = Currency{currency.MustParseISO("CNY")}
	INR = Currency{currency.MustParseISO("INR")}
	NPR = Currency{currency.MustParseISO("NPR")}
)

// ParseCurrency parses a three-letter ISO 4217 code, case-insensitively.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Currency{}, fmt.Errorf("currency %q: %w", code, err)
	}
	return Currency{unit: unit}, nil
}

// Code returns the ISO code, e.g. "NPR".
func (c Currency) Code() string {
	return c.unit.String()
}

func (c Currency) String() string {
	return c.Code()
}

// MinorDigits is the number of subunit digits in standard use (2 for USD, 0 for JPY).
func (c Currency) MinorDigits() int {
	scale, _ := currency.Standard.Rounding(c.unit)
	return scale
}
