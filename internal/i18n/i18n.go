// Package i18n holds the message catalogs. Validation messages, export
// headers and every UI string go through T.
package i18n

import (
	"fmt"
	"sync/atomic"
)

// Language is a supported locale.
type Language string

const (
	LangEN Language = "en"
	LangPT Language = "pt"
)

var catalogs = map[Language]map[string]string{
	LangEN: en,
	LangPT: pt,
}

// current is read by batch workers while the TUI may switch it.
var current atomic.Value

func init() { current.Store(LangEN) }

// SetLanguage switches the active locale. Unknown values select English.
func SetLanguage(lang string) {
	l := Language(lang)
	if _, ok := catalogs[l]; !ok {
		l = LangEN
	}
	current.Store(l)
}

func Current() Language {
	return current.Load().(Language)
}

// Supported lists the selectable locales.
func Supported() []string {
	return []string{string(LangEN), string(LangPT)}
}

// T looks key up in the active catalog, then in English. A key missing from
// both is returned as is.
func T(key string) string {
	if v, ok := catalogs[Current()][key]; ok {
		return v
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf formats the translation of key with args.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}
