package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"artisanhub/pkg/models"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.listCategories)
	rg.GET("/categories/:id", h.getCategory)
	rg.GET("/categories/:id/artisans", h.listByCategory)
	rg.GET("/artisans", h.listArtisans)
	rg.GET("/artisans/featured", h.listFeatured)
	rg.GET("/artisans/:id", h.getArtisan)
	rg.GET("/search", h.search)
}

func (h *Handler) listCategories(c *gin.Context) {
	items := h.Store.Categories()
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getCategory(c *gin.Context) {
	cat, ok := h.Store.GetCategoryByID(strings.TrimSpace(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) listByCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if _, ok := h.Store.GetCategoryByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	items := h.Store.ByCategory(id)
	items = applySort(items, c.Query("sort"))

	c.JSON(http.StatusOK, gin.H{
		"category_id": id,
		"total":       len(items),
		"items":       items,
	})
}

func (h *Handler) listArtisans(c *gin.Context) {
	items := h.Store.Artisans()

	if c.Query("verified") == "true" {
		items = Sort(items, SortVerified)
	}
	items = applySort(items, c.Query("sort"))

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) listFeatured(c *gin.Context) {
	items := h.Store.ByCategory("")
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getArtisan(c *gin.Context) {
	a, ok := h.Store.GetArtisanByID(strings.TrimSpace(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) search(c *gin.Context) {
	q := c.Query("q")
	items := h.Store.Search(q)
	items = applySort(items, c.Query("sort"))

	c.JSON(http.StatusOK, gin.H{
		"query": strings.TrimSpace(q),
		"total": len(items),
		"items": items,
	})
}

// applySort reorders items when a valid sort key is given; unknown keys
// leave the list untouched rather than failing the request.
func applySort(items []models.Artisan, raw string) []models.Artisan {
	if raw == "" {
		return items
	}
	key, ok := ParseSortKey(raw)
	if !ok {
		return items
	}
	return Sort(items, key)
}
