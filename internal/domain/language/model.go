package language

import (
	"strings"
	"time"
)

// DetectedLanguage pairs a provider language code with a human-readable name.
type DetectedLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LanguageDetection captures one detection invocation's outcome. Only the
// highest-confidence candidate returned by the provider is ever persisted.
type LanguageDetection struct {
	ID         string           `json:"id"`
	Text       string           `json:"text"`
	DetectedAt time.Time        `json:"detectedAt"`
	Confidence float64          `json:"confidence"`
	Language   DetectedLanguage `json:"language"`
}

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
}

// LanguageName resolves a provider code to a human-readable name. Codes
// outside the known set map to "Unknown".
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return "Unknown"
}
