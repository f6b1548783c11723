// Package i18n resolves the display language of a request and translates
// the static strings served alongside the catalog.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported display language code
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Direction is the text direction of a language
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// CookieName is the cookie that remembers an explicit language selection
const CookieName = "lang"

// LanguageInfo describes a selectable language
type LanguageInfo struct {
	Code       Language  `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"native_name"`
	Flag       string    `json:"flag"`
	Direction  Direction `json:"direction"`
}

var supported = []LanguageInfo{
	{Code: English, Name: "English", NativeName: "English", Flag: "🇬🇧", Direction: LTR},
	{Code: Arabic, Name: "Arabic", NativeName: "العربية", Flag: "🇪🇬", Direction: RTL},
}

// Languages returns the selectable languages in display order
func Languages() []LanguageInfo {
	out := make([]LanguageInfo, len(supported))
	copy(out, supported)
	return out
}

// Parse returns the supported language named by code
func Parse(code string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

// Direction returns the text direction of l
func (l Language) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Locale is the language context of a single request
type Locale struct {
	Language  Language  `json:"language"`
	Direction Direction `json:"direction"`

	messages map[string]string
}

// T translates a static string key, falling back to English and then to the key itself
func (l Locale) T(key string) string {
	if msg, ok := l.messages[key]; ok {
		return msg
	}
	if msg, ok := messages[English][key]; ok {
		return msg
	}
	return key
}

// Localizer builds request locales. It is created once at startup and is safe
// for concurrent use.
type Localizer struct {
	fallback Language
	matcher  language.Matcher
}

// NewLocalizer creates a localizer with the given default language
func NewLocalizer(defaultLanguage string) (*Localizer, error) {
	lang, ok := Parse(defaultLanguage)
	if !ok {
		return nil, fmt.Errorf("unsupported default language %q", defaultLanguage)
	}
	return &Localizer{
		fallback: lang,
		matcher:  language.NewMatcher([]language.Tag{language.English, language.Arabic}),
	}, nil
}

// Default returns the locale of the configured default language
func (l *Localizer) Default() Locale {
	return l.For(l.fallback)
}

// For returns the locale of a supported language
func (l *Localizer) For(lang Language) Locale {
	return Locale{
		Language:  lang,
		Direction: lang.Direction(),
		messages:  messages[lang],
	}
}

// Resolve picks the request language: an explicit query value first, then the
// remembered cookie, then the Accept-Language header, then the default.
func (l *Localizer) Resolve(query, cookie, acceptLanguage string) Locale {
	if lang, ok := Parse(query); ok {
		return l.For(lang)
	}
	if lang, ok := Parse(cookie); ok {
		return l.For(lang)
	}
	if lang, ok := l.match(acceptLanguage); ok {
		return l.For(lang)
	}
	return l.Default()
}

func (l *Localizer) match(acceptLanguage string) (Language, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	tag, _, confidence := l.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	base, _ := tag.Base()
	return Parse(base.String())
}
