package test

import (
	"context"
	"fmt"

	"github.com/loopcontext/num2words"
)

// MockContext is a mutable request context for specs that switch the
// language between conversions.
type MockContext struct {
	Ctx context.Context
}

func NewMockContext() *MockContext {
	return &MockContext{Ctx: context.Background()}
}

func (ctx *MockContext) SetValue(key interface{}, value interface{}) {
	ctx.Ctx = context.WithValue(ctx.Ctx, key, value)
}

// SetLanguage stores lang under num2words.ContextKey("language").
func (ctx *MockContext) SetLanguage(lang string) {
	ctx.SetValue(num2words.ContextKey("language"), lang)
}

// SetPlainLanguage stores lang under the untyped "language" string key, for
// callers that do not import num2words.
func (ctx *MockContext) SetPlainLanguage(lang string) {
	ctx.SetValue("language", lang)
}

// Language returns the language a converter with the default key would see,
// or "" when none is set.
func (ctx *MockContext) Language() string {
	if v := ctx.Ctx.Value(num2words.ContextKey("language")); v != nil {
		return fmt.Sprintf("%v", v)
	}
	if v := ctx.Ctx.Value("language"); v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
