// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package model

// Translation holds the same text in every supported language. Partial
// records are a data error; validation rejects modules whose translations
// leave any language empty.
type Translation struct {
	ES string `json:"es" form:"es"`
	EN string `json:"en" form:"en"`
	HE string `json:"he" form:"he"`
}

// Resolve returns the text for lang. If that language has no value the
// lookup falls back to Spanish and finally to the first non-empty value in
// the record. It never fails; for a fully-validated record the first match
// always wins.
func (t Translation) Resolve(lang Language) string {
	if s := t.byLanguage(lang); s != "" {
		return s
	}
	if s := t.ES; s != "" {
		return s
	}
	if s := t.EN; s != "" {
		return s
	}
	return t.HE
}

// Complete reports whether every supported language has a value.
func (t Translation) Complete() bool {
	return t.ES != "" && t.EN != "" && t.HE != ""
}

func (t Translation) byLanguage(lang Language) string {
	switch lang {
	case LanguageEnglish:
		return t.EN
	case LanguageHebrew:
		return t.HE
	default:
		return t.ES
	}
}
