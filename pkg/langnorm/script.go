package langnorm

import "regexp"

// scriptRange is an inclusive Unicode code-point range.
type scriptRange struct {
	lo, hi rune
}

// scriptRanges maps a primary language tag to the native script block its
// text is expected to carry. Adding a language means adding one entry here.
var scriptRanges = map[string][]scriptRange{
	"hi": {{0x0900, 0x097F}}, // Devanagari
	"mr": {{0x0900, 0x097F}}, // Devanagari
	"gu": {{0x0A80, 0x0AFF}}, // Gujarati
	"bn": {{0x0980, 0x09FF}}, // Bengali
	"as": {{0x0980, 0x09FF}}, // Bengali (Assamese)
	"ta": {{0x0B80, 0x0BFF}}, // Tamil
	"te": {{0x0C00, 0x0C7F}}, // Telugu
	"kn": {{0x0C80, 0x0CFF}}, // Kannada
	"ml": {{0x0D00, 0x0D7F}}, // Malayalam
	"pa": {{0x0A00, 0x0A7F}}, // Gurmukhi
	"or": {{0x0B00, 0x0B7F}}, // Oriya
}

// HasNativeScript reports whether text contains at least one code point of
// the native script block associated with lang.
func HasNativeScript(text, lang string) bool {
	ranges, ok := scriptRanges[lang]
	if !ok || text == "" {
		return false
	}
	for _, r := range text {
		for _, sr := range ranges {
			if r >= sr.lo && r <= sr.hi {
				return true
			}
		}
	}
	return false
}

// Any character outside this whitelist disqualifies the romanized
// classification.
var romanizedPattern = regexp.MustCompile(`^[A-Za-z0-9\s\-\.,'?!/()]+$`)

// LooksRomanized reports whether text is ASCII-like Latin text that could be
// a romanized rendering of an Indian language.
func LooksRomanized(text string) bool {
	return text != "" && romanizedPattern.MatchString(text)
}
