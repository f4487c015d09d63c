package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Manager *Manager
}

func NewHandler(m *Manager) *Handler {
	return &Handler{Manager: m}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/session", h.create)
	rg.GET("/session/:id", h.get)
	rg.PUT("/session/:id", h.update)
	rg.DELETE("/session/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	c.JSON(http.StatusCreated, h.Manager.Create())
}

func (h *Handler) get(c *gin.Context) {
	st, ok := h.Manager.Get(strings.TrimSpace(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) update(c *gin.Context) {
	var u Update
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	st, ok := h.Manager.Apply(strings.TrimSpace(c.Param("id")), u)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) remove(c *gin.Context) {
	if !h.Manager.Delete(strings.TrimSpace(c.Param("id"))) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
