// Package num2words spells numbers as words: cardinals, ordinals, calendar
// years and currency amounts.
//
// Nepali follows the South Asian place-value system (सय, हजार, लाख, करोड,
// अर्ब, खर्ब); English uses short-scale thousands. Each language is a pure,
// immutable Language value built from an embedded YAML lexicon:
//
//	words, err := num2words.New(num2words.FromInt64(4232)).Lang(num2words.LangNepali).ToWords()
//	// चार हजार दुई सय बत्तीस
//
// A Converter adds language selection from a context value with a fallback
// chain, counters and an optional Observer, for use inside services.
package num2words

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/loopcontext/num2words/internal/lexicon"
)

type Converter interface {
	// LoadLexicon replaces the lexicon of one language at runtime.
	LoadLexicon(lang string, data []byte) error
	CardinalWithCtx(ctx context.Context, value Number) (string, error)
	OrdinalWithCtx(ctx context.Context, value Number) (string, error)
	OrdinalNumWithCtx(ctx context.Context, value Number) (string, error)
	YearWithCtx(ctx context.Context, value Number) (string, error)
	// CurrencyWithCtx uses Config.DefaultCurrency when cur is nil.
	CurrencyWithCtx(ctx context.Context, value Number, cur *Currency) (string, error)
}

type observerEventType int

const (
	observerEventLanguageFallback observerEventType = iota
	observerEventLanguageMissing
	observerEventConversionError
)

type observerEvent struct {
	kind      observerEventType
	requested string
	resolved  string
	lang      string
	output    Output
	errKind   ErrorKind
}

type DefaultConverter struct {
	mu           sync.RWMutex
	languages    map[string]Language // by normalized base tag
	cfg          Config
	stats        converterStats
	observerCh   chan observerEvent
	observerDone chan struct{}
}

func (dc *DefaultConverter) loadLanguages() error {
	languages := map[string]Language{}
	for _, l := range Langs() {
		languages[l.String()] = ToLanguage(l)
	}

	if dc.cfg.ResourcePath != "" {
		byLang, err := lexicon.LoadDir(dc.cfg.ResourcePath)
		if err != nil {
			return err
		}
		for tag, lex := range byLang {
			l, err := ParseLang(tag)
			if err != nil {
				return fmt.Errorf("lexicon %s: %w", tag, err)
			}
			language, err := newLanguage(l, lex)
			if err != nil {
				return fmt.Errorf("lexicon %s: %w", tag, err)
			}
			languages[l.String()] = language
		}
	}

	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.languages = languages
	dc.stats.setLoadedAt(dc.cfg.NowFn())

	return nil
}

func safeObserverCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func (dc *DefaultConverter) startObserverWorker() {
	if dc.cfg.Observer == nil || dc.observerCh != nil {
		return
	}
	dc.observerCh = make(chan observerEvent, dc.cfg.ObserverBuffer)
	dc.observerDone = make(chan struct{})
	go func() {
		defer close(dc.observerDone)
		for evt := range dc.observerCh {
			switch evt.kind {
			case observerEventLanguageFallback:
				safeObserverCall(func() {
					dc.cfg.Observer.OnLanguageFallback(evt.requested, evt.resolved)
				})
			case observerEventLanguageMissing:
				safeObserverCall(func() {
					dc.cfg.Observer.OnLanguageMissing(evt.lang)
				})
			case observerEventConversionError:
				safeObserverCall(func() {
					dc.cfg.Observer.OnConversionError(evt.lang, evt.output.String(), evt.errKind)
				})
			}
		}
	}()
}

func (dc *DefaultConverter) stopObserverWorker() {
	if dc.observerCh == nil {
		return
	}
	close(dc.observerCh)
	<-dc.observerDone
	dc.observerCh = nil
	dc.observerDone = nil
}

func (dc *DefaultConverter) publishObserverEvent(evt observerEvent) {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	if dc.cfg.Observer == nil || dc.observerCh == nil {
		return
	}
	select {
	case dc.observerCh <- evt:
	default:
		dc.stats.incrementDroppedEvent("observer_queue_full")
	}
}

func (dc *DefaultConverter) onLanguageFallback(requestedLang string, resolvedLang string) {
	dc.stats.incrementLanguageFallback(requestedLang, resolvedLang)
	dc.publishObserverEvent(observerEvent{
		kind:      observerEventLanguageFallback,
		requested: requestedLang,
		resolved:  resolvedLang,
	})
}

func (dc *DefaultConverter) onLanguageMissing(lang string) {
	dc.stats.incrementMissingLanguage(lang)
	dc.publishObserverEvent(observerEvent{
		kind: observerEventLanguageMissing,
		lang: lang,
	})
}

func (dc *DefaultConverter) onConversionError(lang string, output Output, kind ErrorKind) {
	dc.stats.incrementConversionError(lang, output, kind)
	dc.publishObserverEvent(observerEvent{
		kind:    observerEventConversionError,
		lang:    lang,
		output:  output,
		errKind: kind,
	})
}

func (dc *DefaultConverter) resolveRequestedLang(ctx context.Context) string {
	lang := normalizeLangTag(dc.cfg.DefaultLanguage)
	if ctx == nil {
		return lang
	}

	// Plain string keys are accepted as well as the typed key.
	if langKeyVal := ctx.Value(dc.cfg.CtxLanguageKey); langKeyVal != nil {
		return normalizeLangTag(fmt.Sprintf("%v", langKeyVal))
	}
	if langKeyVal := ctx.Value(string(dc.cfg.CtxLanguageKey)); langKeyVal != nil {
		return normalizeLangTag(fmt.Sprintf("%v", langKeyVal))
	}

	return lang
}

func appendLangIfMissing(target *[]string, seen map[string]struct{}, lang string) {
	if lang == "" {
		return
	}
	if _, exists := seen[lang]; exists {
		return
	}
	seen[lang] = struct{}{}
	*target = append(*target, lang)
}

// resolveLanguage walks requested, its base tag, alias, configured fallbacks
// and the default language, returning the first registered language.
func (dc *DefaultConverter) resolveLanguage(requestedLang string) (string, Language, bool) {
	normalizedRequested := normalizeLangTag(requestedLang)
	if normalizedRequested == "" {
		normalizedRequested = "en"
	}

	candidates := make([]string, 0, 5)
	seen := map[string]struct{}{}
	appendLangIfMissing(&candidates, seen, normalizedRequested)
	appendLangIfMissing(&candidates, seen, baseLangTag(normalizedRequested))
	if l, err := ParseLang(normalizedRequested); err == nil {
		appendLangIfMissing(&candidates, seen, l.String())
	}
	for _, lang := range dc.cfg.FallbackLanguages {
		appendLangIfMissing(&candidates, seen, normalizeLangTag(lang))
	}
	appendLangIfMissing(&candidates, seen, normalizeLangTag(dc.cfg.DefaultLanguage))

	dc.mu.RLock()
	defer dc.mu.RUnlock()
	for _, candidate := range candidates {
		if language, found := dc.languages[candidate]; found {
			return candidate, language, true
		}
	}

	return normalizedRequested, nil, false
}

func (dc *DefaultConverter) convertWithCtx(ctx context.Context, output Output, value Number, cur Currency) (string, error) {
	requestedLang := dc.resolveRequestedLang(ctx)
	resolvedLang, language, found := dc.resolveLanguage(requestedLang)
	if !found {
		dc.onLanguageMissing(requestedLang)
		return "", newConversionError(KindCannotConvert, requestedLang, "language not found")
	}
	if resolvedLang != requestedLang {
		dc.onLanguageFallback(requestedLang, resolvedLang)
	}

	dc.stats.incrementConversion(resolvedLang, output)
	words, err := convert(language, output, value, cur)
	if err != nil {
		kind, _ := KindOf(err)
		dc.onConversionError(resolvedLang, output, kind)
		return "", err
	}
	return words, nil
}

func (dc *DefaultConverter) LoadLexicon(lang string, data []byte) error {
	l, err := ParseLang(lang)
	if err != nil {
		return err
	}
	language, err := LoadLanguage(l, data)
	if err != nil {
		return err
	}

	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.languages[l.String()] = language
	return nil
}

func (dc *DefaultConverter) CardinalWithCtx(ctx context.Context, value Number) (string, error) {
	return dc.convertWithCtx(ctx, OutputCardinal, value, dc.cfg.DefaultCurrency)
}

func (dc *DefaultConverter) OrdinalWithCtx(ctx context.Context, value Number) (string, error) {
	return dc.convertWithCtx(ctx, OutputOrdinal, value, dc.cfg.DefaultCurrency)
}

func (dc *DefaultConverter) OrdinalNumWithCtx(ctx context.Context, value Number) (string, error) {
	return dc.convertWithCtx(ctx, OutputOrdinalNum, value, dc.cfg.DefaultCurrency)
}

func (dc *DefaultConverter) YearWithCtx(ctx context.Context, value Number) (string, error) {
	return dc.convertWithCtx(ctx, OutputYear, value, dc.cfg.DefaultCurrency)
}

func (dc *DefaultConverter) CurrencyWithCtx(ctx context.Context, value Number, cur *Currency) (string, error) {
	selected := dc.cfg.DefaultCurrency
	if cur != nil {
		selected = *cur
	}
	return dc.convertWithCtx(ctx, OutputCurrency, value, selected)
}

func (dc *DefaultConverter) Reload() error {
	return dc.loadLanguages()
}

func (dc *DefaultConverter) SnapshotStats() ConverterStats {
	return dc.stats.snapshot()
}

func (dc *DefaultConverter) ResetStats() {
	dc.stats.reset()
}

// Close stops the observer worker after delivering queued events.
func (dc *DefaultConverter) Close() {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.stopObserverWorker()
}

func Reload(converter Converter) error {
	reloadable, ok := converter.(interface{ Reload() error })
	if !ok {
		return fmt.Errorf("converter does not support reload")
	}
	return reloadable.Reload()
}

func SnapshotStats(converter Converter) (ConverterStats, error) {
	statsProvider, ok := converter.(interface{ SnapshotStats() ConverterStats })
	if !ok {
		return ConverterStats{}, fmt.Errorf("converter does not support stats snapshots")
	}
	return statsProvider.SnapshotStats(), nil
}

func ResetStats(converter Converter) error {
	statsProvider, ok := converter.(interface{ ResetStats() })
	if !ok {
		return fmt.Errorf("converter does not support stats reset")
	}
	statsProvider.ResetStats()
	return nil
}

func Close(converter Converter) error {
	closer, ok := converter.(interface{ Close() })
	if !ok {
		return fmt.Errorf("converter does not support close")
	}
	closer.Close()
	return nil
}

func NewConverter(cfg Config) (Converter, error) {
	if cfg.CtxLanguageKey == "" {
		cfg.CtxLanguageKey = "language"
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}
	if cfg.DefaultCurrency == (Currency{}) {
		cfg.DefaultCurrency = USD
	}
	if cfg.NowFn == nil {
		cfg.NowFn = time.Now
	}
	if cfg.ObserverBuffer <= 0 {
		cfg.ObserverBuffer = 1024
	}
	if cfg.StatsMaxKeys <= 0 {
		cfg.StatsMaxKeys = 512
	}

	dc := DefaultConverter{
		cfg: cfg,
		stats: converterStats{
			conversions:       map[string]int{},
			languageFallbacks: map[string]int{},
			missingLanguages:  map[string]int{},
			conversionErrors:  map[string]int{},
			droppedEvents:     map[string]int{},
			maxKeys:           cfg.StatsMaxKeys,
		},
	}
	err := dc.loadLanguages()
	if err == nil {
		dc.startObserverWorker()
	}

	return &dc, err
}
