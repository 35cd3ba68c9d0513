package translate

import "strings"

// NormalizeTag reduces a language tag to its bare primary subtag:
// "hi-IN" -> "hi", "PA_Guru" -> "pa", "  en " -> "en".
func NormalizeTag(lang string) string {
	tag := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), " ", ""))
	if tag == "" {
		return ""
	}
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}
