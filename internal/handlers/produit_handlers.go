package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yemeli/vitrine-golang/internal/catalog"
	"github.com/yemeli/vitrine-golang/internal/models"
)

// GetProduct is the product detail page: full sheet, derived pricing, the
// WhatsApp order link and the related-products strip. Each hit bumps the
// product's view counter.
func (h *Handlers) GetProduct(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, found := catalog.ByID(ds, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	views, err := h.Views.Increment(product.ID)
	if err != nil {
		// The counter is informational; a failed bump must not kill the page.
		log.Printf("WARNING: could not increment views for product %d: %v", product.ID, err)
		views = product.Views
	}

	h.renderProduct(c, ds, product, views)
}

// GetProductBySlug resolves a product by its URL slug. Slug views do not
// bump the counter twice: the canonical id page does that.
func (h *Handlers) GetProductBySlug(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	product, found := catalog.BySlug(ds, c.Param("slug"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	views, _ := h.Views.Count(product.ID)
	h.renderProduct(c, ds, product, views)
}

// GetRelatedProducts returns the "similar products" strip (3 by default).
func (h *Handlers) GetRelatedProducts(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	limit := 3
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	related := catalog.Related(ds, id, limit)
	c.JSON(http.StatusOK, gin.H{"produits": h.productCards(ds, related)})
}

func (h *Handlers) renderProduct(c *gin.Context, ds *models.Dataset, product models.Product, views int) {
	effective := catalog.EffectivePrice(product.Price, product.Discount)
	c.JSON(http.StatusOK, gin.H{
		"produit":       product,
		"prixReduit":    effective,
		"prixAffiche":   catalog.FormatPrice(effective, product.Currency),
		"categorieNom":  catalog.CategoryName(ds, product.Category),
		"categorieIcon": catalog.CategoryIcon(ds, product.Category),
		"miniature":     product.Thumbnail(),
		"lienCommande":  catalog.OrderLink(ds, product),
		"vues":          views,
		"produitsLies":  h.productCards(ds, catalog.Related(ds, product.ID, 3)),
	})
}
