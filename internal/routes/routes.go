package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yemeli/vitrine-golang/internal/handlers"
)

// CORSMiddleware lets the static pages call the API from any host. The site
// has no credentials or auth model, so a permissive policy changes nothing.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping / health ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!", "state": h.Store.State().String()})
		})

		// --- Site chrome (header, footer, home page) ---
		v1.GET("/config", h.GetConfig)
		v1.GET("/categories", h.GetCategories)
		v1.GET("/temoignages", h.GetTestimonials)

		// --- Catalogue & product pages ---
		v1.GET("/produits", h.GetProducts)
		v1.GET("/produits/vedettes", h.GetFeaturedProducts)
		v1.GET("/produits/slug/:slug", h.GetProductBySlug)
		v1.GET("/produits/:id", h.GetProduct)
		v1.GET("/produits/:id/lies", h.GetRelatedProducts)

		// --- Admin Routes ---
		// No auth: put this behind a reverse proxy on trusted networks.
		adminGroup := v1.Group("/admin")
		{
			adminGroup.GET("/stats", h.GetAdminStats)
			adminGroup.GET("/produits", h.GetAdminProducts)
			adminGroup.GET("/produits/nouveau", h.NewProductDraft)
			adminGroup.POST("/produits", h.CreateProduct)
			adminGroup.PUT("/produits/:id", h.UpdateProduct)
			adminGroup.DELETE("/produits/:id", h.DeleteProduct)
			adminGroup.PATCH("/produits/:id/actif", h.ToggleProductActive)
			adminGroup.PATCH("/produits/:id/vedette", h.SetProductFeatured)
			adminGroup.GET("/export", h.ExportDataset)
			adminGroup.POST("/recharger", h.ReloadDataset)
		}
	}

	return router
}
