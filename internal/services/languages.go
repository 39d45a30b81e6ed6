package services

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Language pairs a translation/TTS language code with its display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// supportedLanguages is the set of languages both collaborators (translation
// and speech synthesis) handle. Codes follow what the engines accept.
var supportedLanguages = map[string]string{
	"en":    "English",
	"fr":    "French",
	"es":    "Spanish",
	"de":    "German",
	"ar":    "Arabic",
	"zh-CN": "Chinese",
}

// SupportedLanguages returns the selectable languages sorted by code.
func SupportedLanguages() []Language {
	out := make([]Language, 0, len(supportedLanguages))
	for code, name := range supportedLanguages {
		out = append(out, Language{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// NormalizeLanguage canonicalizes a user-supplied language code ("EN",
// "zh-cn") and validates it against the supported set. An empty code is
// returned unchanged so callers can apply their own default.
func NormalizeLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", ErrLanguageInvalid
	}
	canonical := tag.String()
	if _, ok := supportedLanguages[canonical]; !ok {
		return "", ErrLanguageInvalid
	}
	return canonical, nil
}
