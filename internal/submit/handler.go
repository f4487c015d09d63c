package submit

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"artisanhub/internal/catalog"
)

type Handler struct {
	Service Service
	Catalog *catalog.Store
}

func NewHandler(svc Service, store *catalog.Store) *Handler {
	return &Handler{Service: svc, Catalog: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/artisans/:id/contact", h.contact)
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (h *Handler) contact(c *gin.Context) {
	artisanID := strings.TrimSpace(c.Param("id"))
	if _, ok := h.Catalog.GetArtisanByID(artisanID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and message required"})
		return
	}
	if !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		return
	}

	submission := ContactRequest{
		ArtisanID: artisanID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(strings.ToLower(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   strings.TrimSpace(req.Message),
	}

	// Fire and forget: the response does not wait for the upstream.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = h.Service.SubmitContact(ctx, submission)
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "submitted"})
}
