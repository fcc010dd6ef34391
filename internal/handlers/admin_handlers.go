package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yemeli/vitrine-golang/internal/admin"
	"github.com/yemeli/vitrine-golang/internal/models"
)

// --- Inputs ---

// ProductInput is the admin form payload. TagsText, when present, is the raw
// comma-separated tag field and wins over the Tags array.
type ProductInput struct {
	models.Product
	TagsText *string `json:"tagsTexte"`
}

func (in ProductInput) toProduct() models.Product {
	p := in.Product
	if in.TagsText != nil {
		p.Tags = admin.ParseTags(*in.TagsText)
	}
	return p
}

// --- Admin Handlers ---

// GetAdminStats returns the dashboard counters.
func (h *Handlers) GetAdminStats(c *gin.Context) {
	stats, err := h.Admin.Stats()
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetAdminProducts lists every product, inactive ones included.
func (h *Handlers) GetAdminProducts(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"produits": h.productCards(ds, ds.Products)})
}

// NewProductDraft returns a fresh draft for the product form.
func (h *Handlers) NewProductDraft(c *gin.Context) {
	draft, err := h.Admin.CreateDraft()
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"produit": draft})
}

// CreateProduct saves a new product.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.Admin.Save(input.toProduct(), true)
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "produit": saved})
}

// UpdateProduct replaces the product with the id from the path.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := input.toProduct()
	product.ID = id

	saved, err := h.Admin.Save(product, false)
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "produit": saved})
}

// DeleteProduct removes a product outright.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.Admin.Delete(id); err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// ToggleProductActive flips the active flag.
func (h *Handlers) ToggleProductActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.Admin.ToggleActive(id)
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product toggled", "produit": product})
}

// SetProductFeatured sets the featured flag from the request body.
func (h *Handlers) SetProductFeatured(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var input struct {
		Featured *bool `json:"vedette" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Admin.SetFeatured(id, *input.Featured)
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "produit": product})
}

// ExportDataset serves the live dataset as a downloadable JSON backup.
func (h *Handlers) ExportDataset(c *gin.Context) {
	raw, err := h.Store.Export()
	if err != nil {
		h.adminError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="data.json"`)
	c.Data(http.StatusOK, "application/json", raw)
}

// ReloadDataset re-runs the load cycle (snapshot first, then the default
// source) and reports the resulting state.
func (h *Handlers) ReloadDataset(c *gin.Context) {
	if err := h.Store.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "state": h.Store.State().String()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dataset reloaded", "state": h.Store.State().String()})
}

// adminError maps workflow errors onto HTTP statuses: validation failures
// carry their per-field messages, a missing product is a 404, anything else
// falls back to the shared 503 guard semantics.
func (h *Handlers) adminError(c *gin.Context, err error) {
	var verr *admin.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "champs": verr.Fields})
	case errors.Is(err, admin.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "state": h.Store.State().String()})
	}
}
