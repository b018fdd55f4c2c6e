package content

import "portfolio-site/internal/domain/i18n"

type Medium string

const (
	MediumFilmBW    Medium = "film-bw"
	MediumDigitalBW Medium = "digital-bw"
	MediumMixed     Medium = "mixed"
)

// FilmFormat only means something for film images.
type FilmFormat string

const (
	Format35mm FilmFormat = "35mm"
	Format120  FilmFormat = "120"
	FormatNone FilmFormat = "none"
)

// Label is the project detail wording for a primary medium. Unknown values
// read as mixed media.
func (m Medium) Label(loc i18n.Locale) string {
	es := loc == i18n.ES
	switch m {
	case MediumFilmBW:
		if es {
			return "Película - Blanco y Negro"
		}
		return "Film - Black & White"
	case MediumDigitalBW:
		if es {
			return "Digital - Blanco y Negro"
		}
		return "Digital - Black & White"
	default:
		if es {
			return "Medios Mixtos"
		}
		return "Mixed Media"
	}
}

// Caption is the lightbox line, e.g. "Film • 35mm" or "Digital • Black & White".
func Caption(m Medium, f FilmFormat) string {
	kind := "Digital"
	if m == MediumFilmBW {
		kind = "Film"
	}
	detail := "Black & White"
	if f != "" && f != FormatNone {
		detail = string(f)
	}
	return kind + " • " + detail
}
