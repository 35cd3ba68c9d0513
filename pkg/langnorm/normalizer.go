package langnorm

import (
	"context"
	"strings"

	"github.com/manish-1011/KisanSaathi/internal/pkg/logger"
	"github.com/manish-1011/KisanSaathi/pkg/translate"
)

// Translator is the slice of the translation client the normalizer needs.
type Translator interface {
	TranslateOne(ctx context.Context, text, target, source string) translate.Result
}

// Normalizer turns arbitrary user input into canonical English. Every stage
// degrades to the previous usable text; the worst case returns the input
// unchanged.
type Normalizer struct {
	tr  Translator
	log logger.ILogger
}

func NewNormalizer(tr Translator, log logger.ILogger) *Normalizer {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &Normalizer{tr: tr, log: log}
}

// ToEnglish normalizes text to English given the user's UI language.
//
// For a non-English UI, ASCII-like text without the UI language's native
// script is treated as likely romanized: try direct English translation
// first, and when that comes back as a no-op, route through the native
// script (romanized -> native -> English). Everything else, and every
// failed branch, falls through to a direct English translation.
func (n *Normalizer) ToEnglish(ctx context.Context, text, uiLang string) string {
	uiLang = translate.NormalizeTag(uiLang)

	var english string
	if uiLang != "" && uiLang != "en" && LooksRomanized(text) && !HasNativeScript(text, uiLang) {
		english = n.romanizedToEnglish(ctx, text, uiLang)
	}

	if english == "" {
		english = n.tr.TranslateOne(ctx, text, "en", "").Text
	}
	if english == "" {
		return text
	}
	return english
}

func (n *Normalizer) romanizedToEnglish(ctx context.Context, text, uiLang string) string {
	direct := n.tr.TranslateOne(ctx, text, "en", "")

	// A case-insensitive echo means the provider treated the romanized text
	// as already-English. Detour through the native script and back.
	if !strings.EqualFold(strings.TrimSpace(direct.Text), strings.TrimSpace(text)) {
		if direct.Text != "" {
			return direct.Text
		}
		return text
	}

	nativeTry := n.tr.TranslateOne(ctx, text, uiLang, "")
	if nativeTry.Text != "" && HasNativeScript(nativeTry.Text, uiLang) {
		if english := n.tr.TranslateOne(ctx, nativeTry.Text, "en", uiLang).Text; english != "" {
			return english
		}
		n.log.Warn("langnorm", "native-script round trip produced nothing usable", map[string]interface{}{
			"ui_language": uiLang,
		})
	}

	if direct.Text != "" {
		return direct.Text
	}
	return text
}
