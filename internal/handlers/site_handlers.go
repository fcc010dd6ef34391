package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yemeli/vitrine-golang/internal/catalog"
)

// GetConfig returns the site chrome data: company profile, SEO text and the
// generic WhatsApp contact link for the header/footer.
func (h *Handlers) GetConfig(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entreprise":   ds.Company,
		"seo":          ds.SEO,
		"whatsapp":     ds.WhatsApp,
		"lienWhatsapp": catalog.ContactLink(ds),
	})
}

// GetCategories returns the ordered category list.
func (h *Handlers) GetCategories(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": ds.Categories})
}

// GetTestimonials returns the testimonial list for the home page slider.
func (h *Handlers) GetTestimonials(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"temoignages": ds.Testimonials})
}

// GetFeaturedProducts returns the home page selection: active + featured
// products, first N in insertion order (3 by default, like the home page).
func (h *Handlers) GetFeaturedProducts(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	limit := 3
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	products := catalog.Featured(ds, limit)
	c.JSON(http.StatusOK, gin.H{"produits": h.productCards(ds, products)})
}
