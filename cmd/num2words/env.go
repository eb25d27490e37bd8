package main

import (
	"context"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/loopcontext/num2words"
)

const loggerName = "num2words"

var log = logging.Logger(loggerName)

type envConfig struct {
	Lang       string `env:"NUM2WORDS_LANG, default=en"`
	Currency   string `env:"NUM2WORDS_CURRENCY, default=USD"`
	LexiconDir string `env:"NUM2WORDS_LEXICON_DIR"`
	LogLevel   string `env:"NUM2WORDS_LOG_LEVEL, default=error"`
}

// readEnv loads .env from the working directory, if present, then the
// process environment.
func readEnv(ctx context.Context) (*envConfig, error) {
	_ = godotenv.Load()

	cfg := &envConfig{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func setupLogging(level string) {
	if err := logging.SetLogLevel(loggerName, level); err != nil {
		_ = logging.SetLogLevel(loggerName, "error")
		log.Warnw("invalid log level", "level", level, "error", err)
	}
}

// logObserver forwards converter events to the CLI logger.
type logObserver struct{}

func (logObserver) OnLanguageFallback(requestedLang string, resolvedLang string) {
	log.Infow("language fallback", "requested", requestedLang, "resolved", resolvedLang)
}

func (logObserver) OnLanguageMissing(lang string) {
	log.Warnw("language missing", "lang", lang)
}

func (logObserver) OnConversionError(lang string, output string, kind num2words.ErrorKind) {
	log.Debugw("conversion failed", "lang", lang, "output", output, "kind", kind.String())
}
