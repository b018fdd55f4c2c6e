package i18n

import "strings"

type Locale string

const (
	EN Locale = "en"
	ES Locale = "es"
)

// Default is served when negotiation finds no supported language.
const Default = EN

// Locales lists the supported locales in routing order.
var Locales = []Locale{EN, ES}

// Parse accepts "en"/"es" in any case and reports whether it is supported.
func Parse(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, supported := range Locales {
		if l == supported {
			return l, true
		}
	}
	return "", false
}

// OrDefault returns the parsed locale or Default.
func OrDefault(s string) Locale {
	if l, ok := Parse(s); ok {
		return l
	}
	return Default
}

func (l Locale) String() string { return string(l) }

// HasPrefix reports whether path is "/{locale}" or lives below it.
func HasPrefix(path string) bool {
	for _, l := range Locales {
		p := "/" + string(l)
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// SwitchPath swaps the leading locale segment of path for to.
// Example: "/en/about" -> "/es/about"
func SwitchPath(path string, from, to Locale) string {
	prefix := "/" + string(from)
	if path == prefix {
		return "/" + string(to)
	}
	if strings.HasPrefix(path, prefix+"/") {
		return "/" + string(to) + strings.TrimPrefix(path, prefix)
	}
	return "/" + string(to)
}
