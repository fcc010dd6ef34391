package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yemeli/vitrine-golang/internal/admin"
	"github.com/yemeli/vitrine-golang/internal/models"
	"github.com/yemeli/vitrine-golang/internal/store"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store *store.Store    // Catalog store (load/persist lifecycle)
	Admin *admin.Workflow // Admin mutation workflow
	Views *store.ViewCounter
}

// dataset is the shared guard for data-dependent endpoints: while the store
// is not Loaded they answer 503 with an explanatory message instead of
// rendering a partially-populated page.
func (h *Handlers) dataset(c *gin.Context) (*models.Dataset, bool) {
	ds, err := h.Store.Dataset()
	if err == nil {
		return ds, true
	}

	message := "Site data failed to load"
	if errors.Is(err, store.ErrNotLoaded) {
		message = "Site data is not loaded yet"
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error": message,
		"state": h.Store.State().String(),
	})
	return nil, false
}
