package i18n

import (
	"fmt"
	"strconv"

	"portfolio-site/internal/domain/richtext"
)

// Resolve is the generic resolver. A nil record and an absent field both
// yield the zero value.
func Resolve[T any](v *Localized[T], loc Locale) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.Resolve(loc)
}

// String resolves a localized string, "" when missing.
func String(v *LocalizedString, loc Locale) string {
	return Resolve(v, loc)
}

// Text resolves localized rich text. Never returns nil.
func Text(v *LocalizedText, loc Locale) []richtext.Block {
	blocks := Resolve(v, loc)
	if blocks == nil {
		return []richtext.Block{}
	}
	return blocks
}

// List resolves a localized string list. Never returns nil.
func List(v *LocalizedList, loc Locale) []string {
	items := Resolve(v, loc)
	if items == nil {
		return []string{}
	}
	return items
}

// Slug resolves a localized slug, nil when missing.
func Slug(v *LocalizedSlug, loc Locale) *SlugValue {
	if v == nil {
		return nil
	}
	s, ok := v.Lookup(loc)
	if !ok {
		return nil
	}
	return &s
}

// SlugString is Slug(...).Current or "".
func SlugString(v *LocalizedSlug, loc Locale) string {
	if s := Slug(v, loc); s != nil {
		return s.Current
	}
	return ""
}

// FormatYears renders a project's year span.
// Ongoing wins over endYear; an end equal to start collapses to one year.
func FormatYears(start int, end *int, ongoing bool, loc Locale) string {
	if start == 0 {
		return ""
	}
	if ongoing {
		return fmt.Sprintf("%d - %s", start, presentWord(loc))
	}
	if end != nil && *end != 0 && *end != start {
		return fmt.Sprintf("%d - %d", start, *end)
	}
	return strconv.Itoa(start)
}

func presentWord(loc Locale) string {
	if loc == ES {
		return "Presente"
	}
	return "Present"
}
