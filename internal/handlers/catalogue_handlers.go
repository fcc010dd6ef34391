package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yemeli/vitrine-golang/internal/catalog"
	"github.com/yemeli/vitrine-golang/internal/models"
)

// GetProducts is the catalogue page query: category and search are ANDed
// when both are present, the sort applies last. The echoed "url" field is
// the shareable query string for the current filter state.
func (h *Handlers) GetProducts(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	filters, err := models.ParseFilters(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	products := catalog.Filter(ds, filters)

	values, err := filters.Values()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode filter state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"produits": h.productCards(ds, products),
		"total":    len(products),
		"filtres":  filters,
		"url":      "catalogue?" + values.Encode(),
	})
}

// productCards shapes a product list the way the card grid consumes it:
// the raw product plus its derived display fields.
func (h *Handlers) productCards(ds *models.Dataset, products []models.Product) []gin.H {
	cards := make([]gin.H, 0, len(products))
	for _, p := range products {
		effective := catalog.EffectivePrice(p.Price, p.Discount)
		cards = append(cards, gin.H{
			"produit":       p,
			"prixReduit":    effective,
			"prixAffiche":   catalog.FormatPrice(effective, p.Currency),
			"categorieNom":  catalog.CategoryName(ds, p.Category),
			"categorieIcon": catalog.CategoryIcon(ds, p.Category),
			"miniature":     p.Thumbnail(),
		})
	}
	return cards
}
