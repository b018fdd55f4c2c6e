package i18n

import "golang.org/x/text/language"

var matcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// Negotiate picks a supported locale from an Accept-Language header,
// Default when nothing matches.
func Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(Locales) {
		return Default
	}
	return Locales[idx]
}
