package translate

import "context"

// Translator is the capability the scheduler depends on. Implementations
// are stateless; the context bounds the call.
type Translator interface {
	// Translate converts text from sourceLang to targetLang and
	// returns the translated text.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Func adapts an ordinary function to the Translator interface.
type Func func(ctx context.Context, text, sourceLang, targetLang string) (string, error)

// Translate implements Translator.
func (f Func) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return f(ctx, text, sourceLang, targetLang)
}
