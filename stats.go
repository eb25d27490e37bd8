package num2words

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const overflowStatKey = "__overflow__"

type converterStats struct {
	mu                sync.Mutex
	conversions       map[string]int
	languageFallbacks map[string]int
	missingLanguages  map[string]int
	conversionErrors  map[string]int
	droppedEvents     map[string]int
	maxKeys           int
	loadedAt          time.Time
}

func sanitizeStatKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "unknown"
	}
	if len(key) > 120 {
		return key[:120]
	}
	return key
}

// increment bumps target[key]. Once a map holds maxKeys entries new keys
// are folded into overflowStatKey.
func (s *converterStats) increment(target map[string]int, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if target == nil {
		return
	}
	key = sanitizeStatKey(key)
	if s.maxKeys > 0 {
		if _, exists := target[key]; !exists {
			if _, hasOverflow := target[overflowStatKey]; hasOverflow {
				if len(target) >= s.maxKeys {
					key = overflowStatKey
				}
			} else if len(target) >= s.maxKeys-1 {
				key = overflowStatKey
			}
		}
	}
	target[key]++
}

func (s *converterStats) incrementConversion(lang string, output Output) {
	s.increment(s.conversions, fmt.Sprintf("%s:%s", lang, output))
}

func (s *converterStats) incrementLanguageFallback(requestedLang string, resolvedLang string) {
	s.increment(s.languageFallbacks, fmt.Sprintf("%s->%s", requestedLang, resolvedLang))
}

func (s *converterStats) incrementMissingLanguage(lang string) {
	s.increment(s.missingLanguages, normalizeLangTag(lang))
}

func (s *converterStats) incrementConversionError(lang string, output Output, kind ErrorKind) {
	s.increment(s.conversionErrors, fmt.Sprintf("%s:%s:%s", lang, output, kind))
}

func (s *converterStats) incrementDroppedEvent(reason string) {
	s.increment(s.droppedEvents, reason)
}

func (s *converterStats) setLoadedAt(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadedAt = t
}

func (s *converterStats) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversions = map[string]int{}
	s.languageFallbacks = map[string]int{}
	s.missingLanguages = map[string]int{}
	s.conversionErrors = map[string]int{}
	s.droppedEvents = map[string]int{}
}

func (s *converterStats) snapshot() ConverterStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	copyMap := func(input map[string]int) map[string]int {
		output := make(map[string]int, len(input))
		for k, v := range input {
			output[k] = v
		}
		return output
	}

	return ConverterStats{
		Conversions:       copyMap(s.conversions),
		LanguageFallbacks: copyMap(s.languageFallbacks),
		MissingLanguages:  copyMap(s.missingLanguages),
		ConversionErrors:  copyMap(s.conversionErrors),
		DroppedEvents:     copyMap(s.droppedEvents),
		LoadedAt:          s.loadedAt,
	}
}
