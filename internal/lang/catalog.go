// Package lang holds the static language catalog the translator and the
// picker operate on. The catalog is order-stable; language slots elsewhere
// in the program are indices into it.
package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one immutable catalog entry.
type Language struct {
	// Name is the display name shown in pane titles and the picker.
	Name string

	// Code is the translation API language code.
	Code string
}

// Catalog is the supported language list. Order is part of the contract:
// picker results with an empty query and index-based language slots both
// rely on it.
var Catalog = []Language{
	{Name: "English", Code: "EN"},
	{Name: "Spanish", Code: "ES"},
	{Name: "French", Code: "FR"},
	{Name: "German", Code: "DE"},
	{Name: "Italian", Code: "IT"},
	{Name: "Portuguese", Code: "PT"},
	{Name: "Dutch", Code: "NL"},
	{Name: "Polish", Code: "PL"},
	{Name: "Russian", Code: "RU"},
	{Name: "Japanese", Code: "JA"},
	{Name: "Chinese", Code: "ZH"},
	{Name: "Korean", Code: "KO"},
	{Name: "Swedish", Code: "SV"},
}

// At returns the language at index i, falling back to the first entry
// when i is out of range.
func At(i int) Language {
	if i < 0 || i >= len(Catalog) {
		return Catalog[0]
	}
	return Catalog[i]
}

// FindIndex resolves a language code to its catalog index. Codes compare
// case-insensitively; regional variants such as "en-US" resolve through
// their base language. Returns -1 when the code is unknown.
func FindIndex(code string) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return -1
	}

	for i, l := range Catalog {
		if strings.EqualFold(l.Code, code) {
			return i
		}
	}

	// Fall back to the base language of a full BCP 47 tag.
	tag := language.Make(code)
	if tag == language.Und {
		return -1
	}
	base, conf := tag.Base()
	if conf == language.No {
		return -1
	}
	for i, l := range Catalog {
		if strings.EqualFold(l.Code, base.String()) {
			return i
		}
	}
	return -1
}

// IndexOrDefault resolves code, returning def when it is unknown.
func IndexOrDefault(code string, def int) int {
	if i := FindIndex(code); i >= 0 {
		return i
	}
	return def
}
