package media

import (
	"fmt"
	"strconv"
	"strings"
)

type Image struct {
	Type     string    `json:"_type,omitempty"`
	Asset    Reference `json:"asset"`
	Hotspot  *Hotspot  `json:"hotspot,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

type Reference struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type,omitempty"`
}

type Hotspot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Metadata struct {
	LQIP       string      `json:"lqip,omitempty"`
	Blurhash   string      `json:"blurhash,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

type Dimensions struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`
}

// Asset is a parsed image reference of the form image-<id>-<w>x<h>-<ext>.
type Asset struct {
	ID     string
	Width  int
	Height int
	Format string
}

// ParseRef splits an image asset reference into its parts.
func ParseRef(ref string) (Asset, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return Asset{}, fmt.Errorf("malformed image reference %q", ref)
	}
	dims := strings.SplitN(parts[2], "x", 2)
	if len(dims) != 2 {
		return Asset{}, fmt.Errorf("malformed image dimensions %q", parts[2])
	}
	w, err := strconv.Atoi(dims[0])
	if err != nil {
		return Asset{}, fmt.Errorf("image width: %w", err)
	}
	h, err := strconv.Atoi(dims[1])
	if err != nil {
		return Asset{}, fmt.Errorf("image height: %w", err)
	}
	return Asset{ID: parts[1], Width: w, Height: h, Format: parts[3]}, nil
}

// Filename is the CDN file name, <id>-<w>x<h>.<ext>.
func (a Asset) Filename() string {
	return fmt.Sprintf("%s-%dx%d.%s", a.ID, a.Width, a.Height, a.Format)
}

func (img *Image) Present() bool {
	return img != nil && img.Asset.Ref != ""
}

// AspectRatio is width/height taken from the reference, then metadata.
// Zero when neither is known.
func (img *Image) AspectRatio() float64 {
	if !img.Present() {
		return 0
	}
	if a, err := ParseRef(img.Asset.Ref); err == nil && a.Height > 0 {
		return float64(a.Width) / float64(a.Height)
	}
	if d := img.dimensions(); d != nil {
		if d.AspectRatio > 0 {
			return d.AspectRatio
		}
		if d.Height > 0 {
			return d.Width / d.Height
		}
	}
	return 0
}

func (img *Image) Placeholder() string {
	if img == nil || img.Metadata == nil {
		return ""
	}
	return img.Metadata.LQIP
}

func (img *Image) dimensions() *Dimensions {
	if img.Metadata == nil {
		return nil
	}
	return img.Metadata.Dimensions
}
