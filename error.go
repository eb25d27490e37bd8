package num2words

import (
	"errors"
	"fmt"
)

// ErrorKind tags every conversion failure. The set is closed.
type ErrorKind int

const (
	// KindCannotConvert: magnitude beyond the scale lexicon, no such ordinal,
	// or an output style the language does not support.
	KindCannotConvert ErrorKind = iota + 1
	// KindFloatingOrdinal: ordinal requested for a non-integer value.
	KindFloatingOrdinal
	// KindFloatingYear: year requested for a non-integer value.
	KindFloatingYear
)

var (
	ErrCannotConvert   = errors.New("cannot convert number")
	ErrFloatingOrdinal = errors.New("cannot treat float as ordinal")
	ErrFloatingYear    = errors.New("cannot treat float as year")
)

func (k ErrorKind) String() string {
	switch k {
	case KindCannotConvert:
		return "cannot_convert"
	case KindFloatingOrdinal:
		return "floating_ordinal"
	case KindFloatingYear:
		return "floating_year"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindFloatingOrdinal:
		return ErrFloatingOrdinal
	case KindFloatingYear:
		return ErrFloatingYear
	default:
		return ErrCannotConvert
	}
}

// Error is the conversion error type. Unwrap returns the sentinel of the kind,
// so errors.Is(err, ErrFloatingYear) works on any returned error.
type Error interface {
	Error() string
	Unwrap() error
	Kind() ErrorKind
	Lang() string // Language tag that produced the error (e.g. "ne").
	Detail() string
}

type DefaultError struct {
	kind   ErrorKind
	lang   string
	detail string
}

func (ce DefaultError) Error() string {
	if ce.detail == "" {
		return fmt.Sprintf("num2words [%s]: %v", ce.lang, ce.kind.sentinel())
	}
	return fmt.Sprintf("num2words [%s]: %v: %s", ce.lang, ce.kind.sentinel(), ce.detail)
}

func (ce *DefaultError) Unwrap() error {
	return ce.kind.sentinel()
}

func (ce *DefaultError) Kind() ErrorKind {
	return ce.kind
}

func (ce *DefaultError) Lang() string {
	return ce.lang
}

func (ce *DefaultError) Detail() string {
	return ce.detail
}

func newConversionError(kind ErrorKind, lang string, format string, args ...interface{}) error {
	return &DefaultError{kind: kind, lang: lang, detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a conversion error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var convErr Error
	if errors.As(err, &convErr) {
		return convErr.Kind(), true
	}
	return 0, false
}
