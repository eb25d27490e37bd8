package test_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/loopcontext/num2words"
	"github.com/loopcontext/num2words/internal/lexicon"
	"github.com/loopcontext/num2words/test"
	mock_num2words "github.com/loopcontext/num2words/test/mock"
)

func writeNepaliLexicon(dir string, year string) {
	lex := *lexicon.MustBuiltin("ne")
	lex.Words.Year = year
	data, err := lexicon.Marshal(&lex)
	Expect(err).NotTo(HaveOccurred())
	Expect(os.WriteFile(filepath.Join(dir, "ne.yaml"), data, 0o600)).To(Succeed())
}

var _ = Describe("Converter", func() {
	var converter num2words.Converter
	var ctx *test.MockContext

	BeforeEach(func() {
		var err error
		ctx = test.NewMockContext()
		converter, err = num2words.NewConverter(num2words.Config{})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(num2words.Close(converter)).To(Succeed())
	})

	It("should default to english", func() {
		words, err := converter.CardinalWithCtx(ctx.Ctx, num2words.FromInt64(42))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("forty-two"))
	})

	It("should spell nepali cardinals with lakh and crore", func() {
		ctx.SetLanguage("ne")
		words, err := converter.CardinalWithCtx(ctx.Ctx, num2words.FromInt64(123456000))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("बाह्र करोड चौंतीस लाख छ्प्पन्न हजार"))
	})

	It("should read language with plain string context key", func() {
		ctx.SetPlainLanguage("ne")
		Expect(ctx.Language()).To(Equal("ne"))
		words, err := converter.OrdinalWithCtx(ctx.Ctx, num2words.FromInt64(1000))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("एक हजारौँ"))
	})

	It("should fallback from regional language to base language", func() {
		ctx.SetLanguage("ne-NP")
		words, err := converter.YearWithCtx(ctx.Ctx, num2words.FromInt64(2000))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("दुई हजार साल"))

		stats, err := num2words.SnapshotStats(converter)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.LanguageFallbacks).To(HaveKeyWithValue("ne-np->ne", 1))
		Expect(stats.Conversions).To(HaveKeyWithValue("ne:year", 1))
	})

	It("should accept language aliases", func() {
		ctx.SetLanguage("np")
		words, err := converter.CurrencyWithCtx(ctx.Ctx, num2words.MustParseNumber("0.05"), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("पाँच पैसा"))
	})

	It("should use the default currency unless one is given", func() {
		words, err := converter.CurrencyWithCtx(ctx.Ctx, num2words.MustParseNumber("2.5"), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("two dollars and fifty cents"))

		gbp := num2words.GBP
		words, err = converter.CurrencyWithCtx(ctx.Ctx, num2words.MustParseNumber("2.5"), &gbp)
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("two pounds and fifty pence"))
	})

	It("should fallback to configured languages for unsupported tags", func() {
		custom, err := num2words.NewConverter(num2words.Config{
			DefaultLanguage:   "en",
			FallbackLanguages: []string{"ne"},
		})
		Expect(err).NotTo(HaveOccurred())
		defer num2words.Close(custom)

		ctx.SetLanguage("fr")
		words, err := custom.CardinalWithCtx(ctx.Ctx, num2words.FromInt64(5))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("पाँच"))
	})

	It("should return typed errors", func() {
		ctx.SetLanguage("ne")
		_, err := converter.OrdinalWithCtx(ctx.Ctx, num2words.MustParseNumber("2.5"))
		Expect(errors.Is(err, num2words.ErrFloatingOrdinal)).To(BeTrue())

		var convErr num2words.Error
		Expect(errors.As(err, &convErr)).To(BeTrue())
		Expect(convErr.Kind()).To(Equal(num2words.KindFloatingOrdinal))
		Expect(convErr.Lang()).To(Equal("ne"))

		_, err = converter.OrdinalNumWithCtx(ctx.Ctx, num2words.FromInt64(3))
		Expect(errors.Is(err, num2words.ErrCannotConvert)).To(BeTrue())

		stats, err := num2words.SnapshotStats(converter)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.ConversionErrors).To(HaveKeyWithValue("ne:ordinal:floating_ordinal", 1))
		Expect(stats.ConversionErrors).To(HaveKeyWithValue("ne:ordinal-num:cannot_convert", 1))
	})

	It("should reset stats", func() {
		_, err := converter.CardinalWithCtx(ctx.Ctx, num2words.FromInt64(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(num2words.ResetStats(converter)).To(Succeed())

		stats, err := num2words.SnapshotStats(converter)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Conversions).To(BeEmpty())
	})

	It("should load a lexicon at runtime", func() {
		lex := *lexicon.MustBuiltin("ne")
		lex.Words.Year = "सालमा"
		data, err := lexicon.Marshal(&lex)
		Expect(err).NotTo(HaveOccurred())
		Expect(converter.LoadLexicon("ne", data)).To(Succeed())

		ctx.SetLanguage("ne")
		words, err := converter.YearWithCtx(ctx.Ctx, num2words.FromInt64(2081))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("दुई हजार एकास्सी सालमा"))

		Expect(converter.LoadLexicon("ne", []byte("lang: ne\nunits: [a]\n"))).NotTo(Succeed())
		Expect(converter.LoadLexicon("fr", data)).NotTo(Succeed())
	})

	It("should load lexicons from the resource path and reload them", func() {
		tmpDir, err := os.MkdirTemp("", "num2words-reload-*")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(tmpDir)
		writeNepaliLexicon(tmpDir, "वर्ष")

		loadedAt := time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC)
		custom, err := num2words.NewConverter(num2words.Config{
			ResourcePath:    tmpDir,
			DefaultLanguage: "ne",
			NowFn:           func() time.Time { return loadedAt },
		})
		Expect(err).NotTo(HaveOccurred())
		defer num2words.Close(custom)

		words, err := custom.YearWithCtx(ctx.Ctx, num2words.FromInt64(2000))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("दुई हजार वर्ष"))

		writeNepaliLexicon(tmpDir, "साल")
		Expect(num2words.Reload(custom)).To(Succeed())
		words, err = custom.YearWithCtx(ctx.Ctx, num2words.FromInt64(2000))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("दुई हजार साल"))

		stats, err := num2words.SnapshotStats(custom)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.LoadedAt).To(Equal(loadedAt))
	})

	It("should fail on an invalid resource path lexicon", func() {
		tmpDir, err := os.MkdirTemp("", "num2words-invalid-*")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(tmpDir)
		Expect(os.WriteFile(filepath.Join(tmpDir, "ne.yaml"), []byte("lang: ne\nunits: [एक]\n"), 0o600)).To(Succeed())

		_, err = num2words.NewConverter(num2words.Config{ResourcePath: tmpDir})
		Expect(err).To(HaveOccurred())
	})

	It("should be safe under concurrent reads and writes", func() {
		const (
			readers     = 12
			readerIters = 200
			writes      = 20
		)
		data, err := lexicon.Marshal(lexicon.MustBuiltin("ne"))
		Expect(err).NotTo(HaveOccurred())

		errCh := make(chan error, readers+1)
		var wg sync.WaitGroup

		for i := 0; i < readers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				readCtx := context.WithValue(context.Background(), num2words.ContextKey("language"), []string{"en", "ne"}[i%2])
				for j := 0; j < readerIters; j++ {
					words, err := converter.CardinalWithCtx(readCtx, num2words.FromInt64(int64(j+1)))
					if err != nil {
						errCh <- err
						return
					}
					if words == "" {
						errCh <- fmt.Errorf("received empty words for %d", j+1)
						return
					}
				}
			}(i)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < writes; i++ {
				if err := converter.LoadLexicon("ne", data); err != nil {
					errCh <- err
					return
				}
			}
		}()

		wg.Wait()
		close(errCh)

		for err := range errCh {
			Expect(err).NotTo(HaveOccurred())
		}
	})
})

var _ = Describe("Converter observer", func() {
	var ctrl *gomock.Controller
	var observer *mock_num2words.MockObserver
	var converter num2words.Converter
	var ctx *test.MockContext

	BeforeEach(func() {
		var err error
		ctrl = gomock.NewController(GinkgoT())
		observer = mock_num2words.NewMockObserver(ctrl)
		ctx = test.NewMockContext()
		converter, err = num2words.NewConverter(num2words.Config{
			DefaultLanguage: "en",
			Observer:        observer,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should report language fallbacks", func() {
		observer.EXPECT().OnLanguageFallback("ne-np", "ne").Times(1)

		ctx.SetLanguage("ne-NP")
		_, err := converter.CardinalWithCtx(ctx.Ctx, num2words.FromInt64(1))
		Expect(err).NotTo(HaveOccurred())

		// Close drains the observer queue.
		Expect(num2words.Close(converter)).To(Succeed())
	})

	It("should report conversion errors", func() {
		observer.EXPECT().OnConversionError("ne", "year", num2words.KindFloatingYear).Times(1)

		ctx.SetLanguage("ne")
		_, err := converter.YearWithCtx(ctx.Ctx, num2words.MustParseNumber("2080.5"))
		Expect(errors.Is(err, num2words.ErrFloatingYear)).To(BeTrue())

		Expect(num2words.Close(converter)).To(Succeed())
	})

	It("should report missing languages", func() {
		observer.EXPECT().OnLanguageMissing("de").Times(1)

		strict, err := num2words.NewConverter(num2words.Config{
			DefaultLanguage: "fr",
			Observer:        observer,
		})
		Expect(err).NotTo(HaveOccurred())

		ctx.SetLanguage("de")
		_, err = strict.CardinalWithCtx(ctx.Ctx, num2words.FromInt64(7))
		Expect(errors.Is(err, num2words.ErrCannotConvert)).To(BeTrue())

		Expect(num2words.Close(strict)).To(Succeed())
		stats, err := num2words.SnapshotStats(strict)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.MissingLanguages).To(HaveKeyWithValue("de", 1))

		Expect(num2words.Close(converter)).To(Succeed())
	})

	It("should survive a panicking observer", func() {
		observer.EXPECT().OnLanguageFallback(gomock.Any(), gomock.Any()).Do(func(string, string) {
			panic("observer failure")
		}).Times(2)

		ctx.SetLanguage("fr")
		for i := 0; i < 2; i++ {
			words, err := converter.CardinalWithCtx(ctx.Ctx, num2words.FromInt64(9))
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(Equal("nine"))
		}

		Expect(num2words.Close(converter)).To(Succeed())
	})

	It("should count dropped events when the queue is full", func() {
		blocked := make(chan struct{})
		slow, err := num2words.NewConverter(num2words.Config{
			Observer:       observer,
			ObserverBuffer: 1,
		})
		Expect(err).NotTo(HaveOccurred())
		observer.EXPECT().OnLanguageFallback(gomock.Any(), gomock.Any()).Do(func(string, string) {
			<-blocked
		}).AnyTimes()

		ctx.SetLanguage("fr")
		for i := 0; i < 10; i++ {
			_, err := slow.CardinalWithCtx(ctx.Ctx, num2words.FromInt64(1))
			Expect(err).NotTo(HaveOccurred())
		}
		close(blocked)

		stats, err := num2words.SnapshotStats(slow)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.DroppedEvents["observer_queue_full"]).To(BeNumerically(">", 0))

		Expect(num2words.Close(slow)).To(Succeed())
		Expect(num2words.Close(converter)).To(Succeed())
	})
})
