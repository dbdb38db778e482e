package domain

import "strings"

// SupportedLanguages is the catalog offered by the dashboard, in display order.
var SupportedLanguages = []string{
	"Arabic",
	"English",
	"French",
	"German",
	"Spanish",
	"Chinese",
	"Japanese",
	"Korean",
	"Italian",
	"Portuguese",
	"Russian",
	"Hindi",
	"Bengali",
	"Urdu",
	"Turkish",
	"Persian",
	"Swahili",
	"Dutch",
	"Greek",
	"Hebrew",
	"Thai",
	"Vietnamese",
}

// NormalizeLanguage maps a user-supplied language name onto the catalog
// entry, ignoring case. Empty string when unsupported.
func NormalizeLanguage(name string) string {
	name = strings.TrimSpace(name)
	for _, lang := range SupportedLanguages {
		if strings.EqualFold(lang, name) {
			return lang
		}
	}
	return ""
}

// ValidateLanguagePair checks that both languages are supported and differ.
func ValidateLanguagePair(source, target string) error {
	if NormalizeLanguage(source) == "" {
		return ErrUnsupportedLanguage
	}
	if NormalizeLanguage(target) == "" {
		return ErrUnsupportedLanguage
	}
	if strings.EqualFold(source, target) {
		return ErrSameLanguagePair
	}
	return nil
}
