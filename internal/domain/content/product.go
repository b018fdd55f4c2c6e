package content

import (
	"fmt"

	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/media"
)

type Product struct {
	ID              string               `json:"_id"`
	Title           i18n.LocalizedString `json:"title"`
	Slug            i18n.LocalizedSlug   `json:"slug"`
	Images          []media.Image        `json:"images,omitempty"`
	Description     i18n.LocalizedText   `json:"description"`
	Price           float64              `json:"price"`
	StripeProductID string               `json:"stripeProductId,omitempty"`
	RelatedProject  *ProjectSummary      `json:"relatedProject,omitempty"`
	InStock         bool                 `json:"inStock"`
	Variants        []Variant            `json:"variants,omitempty"`
}

type Variant struct {
	Name          i18n.LocalizedString `json:"name"`
	Price         float64              `json:"price"`
	StripePriceID string               `json:"stripePriceId,omitempty"`
	InStock       bool                 `json:"inStock"`
}

// Purchase is one buyable option on the product page.
type Purchase struct {
	Label    string
	Price    float64
	PriceRef string
	InStock  bool
}

// PurchaseOptions lists the variants, or the product itself when it has none.
// A variant without its own price id is sold under the product id. Options
// with no reference at all are reported as out of stock.
func (p *Product) PurchaseOptions(loc i18n.Locale) []Purchase {
	if len(p.Variants) == 0 {
		return []Purchase{{
			Label:    i18n.String(&p.Title, loc),
			Price:    p.Price,
			PriceRef: p.StripeProductID,
			InStock:  p.InStock && p.StripeProductID != "",
		}}
	}
	out := make([]Purchase, 0, len(p.Variants))
	for i := range p.Variants {
		v := &p.Variants[i]
		ref := v.StripePriceID
		if ref == "" {
			ref = p.StripeProductID
		}
		out = append(out, Purchase{
			Label:    i18n.String(&v.Name, loc),
			Price:    v.Price,
			PriceRef: ref,
			InStock:  v.InStock && ref != "",
		})
	}
	return out
}

func (p *Product) FirstImage() *media.Image {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0]
}

// FormatPrice renders a USD amount, e.g. "$120.00".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
