package analysis

import "github.com/abadojack/whatlanggo"

// englishFallback keeps the language field stable on short or ambiguous
// input, where trigram detection has nothing to work with.
const englishFallback = "English"

// DetectLanguage names the document language in English ("English",
// "French", ...). Unreliable detections fall back to English, which is the
// only language the downstream heuristics actually understand.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return englishFallback
	}
	name := info.Lang.String()
	if name == "" {
		return englishFallback
	}
	return name
}
