// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package model

import (
	"golang.org/x/text/language"
)

// Language is one of the site's supported content languages.
type Language string

const (
	LanguageSpanish Language = "es"
	LanguageEnglish Language = "en"
	LanguageHebrew  Language = "he"
)

// FallbackLanguage is used whenever no language preference can be resolved.
const FallbackLanguage = LanguageSpanish

// SupportedLanguages lists all languages the site renders content in, in
// display order.
func SupportedLanguages() []Language {
	return []Language{LanguageSpanish, LanguageEnglish, LanguageHebrew}
}

// Direction is the writing direction of a language.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Direction reports the writing direction used to render content in l.
func (l Language) Direction() Direction {
	if l == LanguageHebrew {
		return DirectionRTL
	}
	return DirectionLTR
}

func (l Language) String() string { return string(l) }

// ResolveLanguage maps an arbitrary, possibly malformed language tag
// ("en-US", "HE", "fr", "") to a supported language. The region and script
// subtags are ignored; unknown or empty tags resolve to the fallback
// language. Total, never fails.
func ResolveLanguage(tag string) Language {
	base := primarySubtag(tag)
	if base == "" {
		return FallbackLanguage
	}
	if parsed, err := language.Parse(base); err == nil {
		b, _ := parsed.Base()
		base = b.String()
	}
	for _, l := range SupportedLanguages() {
		if base == string(l) {
			return l
		}
	}
	return FallbackLanguage
}

// primarySubtag cuts the tag at the first non-letter rune and lowercases
// the remainder, so "en-US", "en_US" and "EN" all yield "en".
func primarySubtag(tag string) string {
	out := make([]rune, 0, len(tag))
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			return string(out)
		}
	}
	return string(out)
}
