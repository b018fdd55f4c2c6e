package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-site/internal/domain/richtext"
)

type shape uint8

const (
	shapeAbsent shape = iota
	shapePlain
	shapePerLocale
)

// Localized is either absent, a plain value shared by every locale, or one
// value per locale. Which one is decided once, when the field is decoded.
type Localized[T any] struct {
	shape    shape
	plain    T
	byLocale map[Locale]T
}

// SlugValue mirrors the content store's slug object.
type SlugValue struct {
	Current string `json:"current"`
}

type (
	LocalizedString = Localized[string]
	LocalizedSlug   = Localized[SlugValue]
	LocalizedText   = Localized[[]richtext.Block]
	LocalizedList   = Localized[[]string]
)

func Plain[T any](v T) Localized[T] {
	return Localized[T]{shape: shapePlain, plain: v}
}

func PerLocale[T any](values map[Locale]T) Localized[T] {
	m := make(map[Locale]T, len(values))
	for k, v := range values {
		m[k] = v
	}
	return Localized[T]{shape: shapePerLocale, byLocale: m}
}

// Lookup returns the value for loc. A per-locale value missing loc reports
// false; the other locale is never consulted.
func (l Localized[T]) Lookup(loc Locale) (T, bool) {
	var zero T
	switch l.shape {
	case shapePlain:
		return l.plain, true
	case shapePerLocale:
		v, ok := l.byLocale[loc]
		return v, ok
	default:
		return zero, false
	}
}

// Resolve returns the value for loc or the zero value.
func (l Localized[T]) Resolve(loc Locale) T {
	v, _ := l.Lookup(loc)
	return v
}

func (l Localized[T]) IsAbsent() bool { return l.shape == shapeAbsent }

func (l Localized[T]) IsPlain() bool { return l.shape == shapePlain }

func (l *Localized[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = Localized[T]{}
		return nil
	}

	var fields map[string]json.RawMessage
	if data[0] == '{' {
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		if localeKeyed(fields) {
			return l.setPerLocale(fields)
		}
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		// An object that is not the plain shape is keyed by locales this
		// site does not serve; only en and es survive.
		if fields != nil {
			return l.setPerLocale(fields)
		}
		return err
	}
	*l = Plain(v)
	return nil
}

func (l *Localized[T]) setPerLocale(fields map[string]json.RawMessage) error {
	values := make(map[Locale]T, len(Locales))
	for key, raw := range fields {
		if !isLocaleKey(key) || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("localized field %q: %w", key, err)
		}
		values[Locale(key)] = v
	}
	*l = Localized[T]{shape: shapePerLocale, byLocale: values}
	return nil
}

func (l Localized[T]) MarshalJSON() ([]byte, error) {
	switch l.shape {
	case shapePlain:
		return json.Marshal(l.plain)
	case shapePerLocale:
		out := make(map[string]T, len(l.byLocale))
		for k, v := range l.byLocale {
			out[string(k)] = v
		}
		return json.Marshal(out)
	default:
		return []byte("null"), nil
	}
}

// localeKeyed reports whether every key is a locale code or content store
// metadata ("_type", "_key"). An object carrying only metadata counts as
// localized with no entries.
func localeKeyed(fields map[string]json.RawMessage) bool {
	for key := range fields {
		if isLocaleKey(key) || strings.HasPrefix(key, "_") {
			continue
		}
		return false
	}
	return true
}

func isLocaleKey(key string) bool {
	for _, l := range Locales {
		if key == string(l) {
			return true
		}
	}
	return false
}
