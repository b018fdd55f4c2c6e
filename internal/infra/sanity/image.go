package sanity

import (
	"fmt"
	"net/url"
	"strconv"

	"portfolio-site/internal/domain/media"
)

const imageCDN = "https://cdn.sanity.io/images"

// Images builds CDN URLs for image references in one project and dataset.
type Images struct {
	ProjectID string
	Dataset   string
}

// URL returns a resized, auto-format URL for img, or "" when img has no
// usable reference. Zero dimensions are left to the CDN; width and height
// together crop to fill.
func (b Images) URL(img *media.Image, width, height int) string {
	if !img.Present() {
		return ""
	}
	asset, err := media.ParseRef(img.Asset.Ref)
	if err != nil {
		return ""
	}
	q := url.Values{}
	if width > 0 {
		q.Set("w", strconv.Itoa(width))
	}
	if height > 0 {
		q.Set("h", strconv.Itoa(height))
	}
	if width > 0 && height > 0 {
		q.Set("fit", "crop")
		if img.Hotspot != nil {
			q.Set("fp-x", strconv.FormatFloat(img.Hotspot.X, 'f', -1, 64))
			q.Set("fp-y", strconv.FormatFloat(img.Hotspot.Y, 'f', -1, 64))
			q.Set("crop", "focalpoint")
		}
	}
	q.Set("auto", "format")
	return fmt.Sprintf("%s/%s/%s/%s?%s", imageCDN, b.ProjectID, b.Dataset, asset.Filename(), q.Encode())
}
