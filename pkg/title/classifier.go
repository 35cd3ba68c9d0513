package title

import (
	"regexp"
	"strings"
)

// Exact-match stop phrases: greetings and small talk in English, romanized
// Indian languages, and a few native scripts. Compared against the
// normalized lowercase text.
var stopPhrases = map[string]struct{}{
	// English
	"hi": {}, "hello": {}, "hey": {}, "hii": {}, "heyy": {},
	"ok": {}, "okay": {}, "thanks": {}, "thank you": {}, "start": {},
	"good morning": {}, "good evening": {}, "good afternoon": {},
	"how are you": {}, "how are u": {}, "how r you": {}, "how r u": {},
	"what's up": {}, "whats up": {}, "whats going on": {}, "what's going on": {},
	// Romanized Hindi/Marathi/others
	"namaste": {}, "namaskar": {}, "kaisa hai": {}, "kaisi ho": {}, "kaise ho": {},
	"kasa aahes": {}, "kashi aahes": {}, "kase ahes": {},
	"kem cho":     {},
	"kemon acho":  {},
	"vanakkam":    {},
	"sat sri akaal": {}, "sat sri akal": {},
	// Native script snippets (not exhaustive)
	"नमस्ते": {}, "नमस्कार": {}, "कैसे हो": {}, "कैसी हो": {},
	"क्या हाल": {}, "क्या हाल है": {},
	"কেমন আছো":     {},
	"வணக்கம்":      {},
	"ਸਤ ਸ੍ਰੀ ਅਕਾਲ": {},
}

// Short greeting-y shapes like "hiii", "hru", "okay".
var stopPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*h+i+\s*$`),
	regexp.MustCompile(`(?i)^\s*he+y+\s*$`),
	regexp.MustCompile(`(?i)^\s*ok(ay)?\s*$`),
	regexp.MustCompile(`(?i)^\s*h(ow)?\s*r\s*u\s*\??\s*$`),
	regexp.MustCompile(`(?i)^\s*(what'?s|whats)\s+up\??\s*$`),
	regexp.MustCompile(`(?i)^\s*good\s+(morning|evening|afternoon)\s*$`),
	regexp.MustCompile(`(?i)^\s*(thank\s+you|thanks)\s*$`),
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	// Strip punctuation but keep Latin alphanumerics and the Indic blocks.
	nonAlnumSpacePattern = regexp.MustCompile(`[^0-9A-Za-z\x{0900}-\x{0D7F}\s]`)
)

func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = nonAlnumSpacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// IsMeaningful reports whether the text looks contentful rather than a
// greeting or filler. Purely local: no translation, no model calls.
func IsMeaningful(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	raw := strings.TrimSpace(text)
	normalized := strings.ToLower(normalize(raw))

	if len([]rune(normalized)) < 3 {
		return false
	}
	if _, stopped := stopPhrases[normalized]; stopped {
		return false
	}
	for _, pattern := range stopPatterns {
		if pattern.MatchString(raw) || pattern.MatchString(normalized) {
			return false
		}
	}

	contentWords := 0
	for _, word := range strings.Fields(normalized) {
		if len([]rune(word)) > 2 {
			contentWords++
		}
	}
	if contentWords >= 2 {
		return true
	}

	// A single content word passes when it is long enough on its own,
	// e.g. "pomegranate".
	return len([]rune(strings.ReplaceAll(normalized, " ", ""))) >= 10
}
