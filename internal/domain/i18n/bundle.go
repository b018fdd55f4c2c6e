package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed locales/*.json
var embedded embed.FS

// Bundle holds the UI dictionaries. Unlike content fields, UI strings fall
// back to the default locale and finally to the key itself.
type Bundle struct {
	dict     map[Locale]map[string]string
	fallback Locale
}

// Load reads {dir}/{locale}.json for every supported locale. Only the
// fallback dictionary is mandatory.
func Load(fsys fs.FS, dir string, fallback Locale) (*Bundle, error) {
	b := &Bundle{dict: map[Locale]map[string]string{}, fallback: fallback}
	for _, l := range Locales {
		raw, err := fs.ReadFile(fsys, path.Join(dir, string(l)+".json"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	return b, nil
}

// Embedded returns the bundle compiled into the binary.
func Embedded() (*Bundle, error) {
	return Load(embedded, "locales", Default)
}

// T returns the translation for key in loc.
func (b *Bundle) T(loc Locale, key string) string {
	if m, ok := b.dict[loc]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Tf is T with "{name}" placeholders replaced.
func (b *Bundle) Tf(loc Locale, key string, args map[string]string) string {
	s := b.T(loc, key)
	for k, v := range args {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}
