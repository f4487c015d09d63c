package reviews

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"artisanhub/internal/auth"
	"artisanhub/internal/catalog"
)

type Handler struct {
	Repo    *Repo
	Catalog *catalog.Store
}

func NewHandler(repo *Repo, store *catalog.Store) *Handler {
	return &Handler{Repo: repo, Catalog: store}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/artisans/:id/reviews", h.listByArtisan)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.create)
	rg.DELETE("/reviews/:id", h.delete)
}

type createReq struct {
	ArtisanID string `json:"artisan_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
}

func (h *Handler) create(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	artisanID := strings.TrimSpace(req.ArtisanID)
	if artisanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artisan_id required"})
		return
	}
	if _, ok := h.Catalog.GetArtisanByID(artisanID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "artisan not found"})
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	review, err := h.Repo.Create(c.Request.Context(), claims.UserID, artisanID, req.Rating, strings.TrimSpace(req.Text))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *Handler) listByArtisan(c *gin.Context) {
	artisanID := strings.TrimSpace(c.Param("id"))
	a, ok := h.Catalog.GetArtisanByID(artisanID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "artisan not found"})
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, err := h.Repo.ListByArtisan(c.Request.Context(), artisanID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	summary, err := h.Repo.Summarize(c.Request.Context(), artisanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	// seed reviews live on the catalog record; stored ones are additive
	c.JSON(http.StatusOK, gin.H{
		"artisan_id":         artisanID,
		"seed_review_count":  a.ReviewCount,
		"stored":             summary,
		"total_review_count": a.ReviewCount + summary.Count,
		"limit":              limit,
		"offset":             offset,
		"items":              items,
	})
}

func (h *Handler) delete(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	idRaw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(idRaw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), id, claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
