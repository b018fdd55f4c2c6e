package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-site/internal/api/checkout"
	"portfolio-site/internal/domain/content"
	"portfolio-site/internal/domain/i18n"
	"portfolio-site/internal/domain/richtext"
)

type ProductCard struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Slug    string     `json:"slug"`
	Href    string     `json:"href,omitempty"`
	Image   *ImageView `json:"image,omitempty"`
	Price   string     `json:"price"`
	InStock bool       `json:"inStock"`
	SoldOut string     `json:"soldOut,omitempty"`
}

type ShopPage struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Products []ProductCard `json:"products"`
}

type PurchaseOption struct {
	Label    string  `json:"label"`
	Price    string  `json:"price"`
	Amount   float64 `json:"amount"`
	PriceRef string  `json:"priceRef,omitempty"`
	InStock  bool    `json:"inStock"`
}

type QuantityBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type ProductPage struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Images          []ImageView       `json:"images"`
	Price           string            `json:"price"`
	Description     []string          `json:"description"`
	DescriptionHTML string            `json:"descriptionHtml"`
	Options         []PurchaseOption  `json:"options"`
	Quantity        QuantityBounds    `json:"quantity"`
	RelatedProject  *ProjectLink      `json:"relatedProject,omitempty"`
	Labels          map[string]string `json:"labels"`
}

type SuccessPage struct {
	Title        string `json:"title"`
	Message      string `json:"message"`
	OrderIDLabel string `json:"orderIdLabel"`
	OrderID      string `json:"orderId,omitempty"`
	Continue     Link   `json:"continue"`
	Home         Link   `json:"home"`
}

// Shop handles GET /{locale}/shop.
func (h *Handler) Shop(c *gin.Context) {
	loc := locale(c)
	products, err := h.content.AllProducts(c.Request.Context())
	if err != nil {
		h.fail(c, loc, err)
		return
	}
	c.JSON(http.StatusOK, h.shopPage(loc, products))
}

func (h *Handler) shopPage(loc i18n.Locale, products []content.Product) ShopPage {
	cards := make([]ProductCard, 0, len(products))
	for i := range products {
		p := &products[i]
		title := i18n.String(&p.Title, loc)
		slug := i18n.SlugString(&p.Slug, loc)
		card := ProductCard{
			ID:      p.ID,
			Title:   title,
			Slug:    slug,
			Href:    productHref(loc, slug),
			Image:   h.imageView(p.FirstImage(), title, thumbWidth, thumbWidth),
			Price:   content.FormatPrice(p.Price),
			InStock: p.InStock,
		}
		if !p.InStock {
			card.SoldOut = h.t(loc, "common.soldOut")
		}
		cards = append(cards, card)
	}
	return ShopPage{
		Title:    h.t(loc, "shop.title"),
		Subtitle: h.t(loc, "shop.subtitle"),
		Products: cards,
	}
}

// Product handles GET /{locale}/shop/:slug.
func (h *Handler) Product(c *gin.Context) {
	loc := locale(c)
	p, err := h.content.ProductBySlug(c.Request.Context(), c.Param("slug"), loc)
	if err != nil {
		h.fail(c, loc, err)
		return
	}
	c.JSON(http.StatusOK, h.productPage(loc, p))
}

func (h *Handler) productPage(loc i18n.Locale, p *content.Product) ProductPage {
	title := i18n.String(&p.Title, loc)
	desc := i18n.Text(&p.Description, loc)

	images := make([]ImageView, 0, len(p.Images))
	for i := range p.Images {
		if v := h.imageView(&p.Images[i], title, productWidth, 0); v != nil {
			images = append(images, *v)
		}
	}

	purchases := p.PurchaseOptions(loc)
	options := make([]PurchaseOption, 0, len(purchases))
	for _, o := range purchases {
		options = append(options, PurchaseOption{
			Label:    o.Label,
			Price:    content.FormatPrice(o.Price),
			Amount:   o.Price,
			PriceRef: o.PriceRef,
			InStock:  o.InStock,
		})
	}

	return ProductPage{
		ID:              p.ID,
		Title:           title,
		Images:          images,
		Price:           content.FormatPrice(p.Price),
		Description:     richtext.Paragraphs(desc),
		DescriptionHTML: richtext.HTML(desc),
		Options:         options,
		Quantity:        QuantityBounds{Min: 1, Max: checkout.MaxQuantity},
		RelatedProject:  summaryLink(loc, p.RelatedProject),
		Labels: map[string]string{
			"addToCart":      h.t(loc, "common.addToCart"),
			"outOfStock":     h.t(loc, "common.outOfStock"),
			"quantity":       h.t(loc, "common.quantity"),
			"price":          h.t(loc, "common.price"),
			"relatedProject": h.t(loc, "common.relatedProject"),
		},
	}
}

// Success handles GET /{locale}/shop/success.
func (h *Handler) Success(c *gin.Context) {
	loc := locale(c)
	c.JSON(http.StatusOK, SuccessPage{
		Title:        h.t(loc, "success.title"),
		Message:      h.t(loc, "success.message"),
		OrderIDLabel: h.t(loc, "success.orderId"),
		OrderID:      c.Query("session_id"),
		Continue:     Link{Label: h.t(loc, "success.continueShopping"), Href: "/" + loc.String() + "/shop"},
		Home:         Link{Label: h.t(loc, "success.backHome"), Href: "/" + loc.String()},
	})
}
