package domain

import "strings"

// Language is the storefront display language.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"

	DirectionRTL = "rtl"
	DirectionLTR = "ltr"
)

// DefaultLanguage is used when nothing has been stored yet.
const DefaultLanguage = LanguageArabic

// NormalizeLanguage maps arbitrary input onto a supported language, falling back to Arabic.
func NormalizeLanguage(raw string) Language {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en", "english":
		return LanguageEnglish
	case "ar", "arabic":
		return LanguageArabic
	default:
		return DefaultLanguage
	}
}

// Direction is the document text direction for the language.
func (l Language) Direction() string {
	if l == LanguageArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// Currency is the localized currency label shown next to prices.
func (l Language) Currency() string {
	if l == LanguageArabic {
		return "ر.س"
	}
	return "SAR"
}

func pick(lang Language, ar, en string) string {
	if lang == LanguageArabic {
		return ar
	}
	return en
}
