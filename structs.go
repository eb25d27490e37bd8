package num2words

import "time"

// ContextKey is the typed key under which callers store a language tag in a context.
type ContextKey string

//go:generate mockgen -source=$GOFILE -package mock_num2words -destination=test/mock/$GOFILE

// Observer receives converter events on a background goroutine. Panics in
// callbacks are recovered; slow observers lose events (counted as dropped).
type Observer interface {
	OnLanguageFallback(requestedLang string, resolvedLang string)
	OnLanguageMissing(lang string)
	OnConversionError(lang string, output string, kind ErrorKind)
}

type Config struct {
	// ResourcePath is an optional directory of "<lang>.yaml" lexicons that
	// replace the builtin ones.
	ResourcePath      string
	CtxLanguageKey    ContextKey
	DefaultLanguage   string
	FallbackLanguages []string
	DefaultCurrency   Currency
	Observer          Observer
	ObserverBuffer    int
	StatsMaxKeys      int
	NowFn             func() time.Time
}

// ConverterStats is a point-in-time copy of the converter counters.
type ConverterStats struct {
	Conversions       map[string]int // "<lang>:<output>"
	LanguageFallbacks map[string]int // "<requested>-><resolved>"
	MissingLanguages  map[string]int
	ConversionErrors  map[string]int // "<lang>:<output>:<kind>"
	DroppedEvents     map[string]int
	LoadedAt          time.Time
}
