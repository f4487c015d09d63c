package bookings

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artisanhub/internal/auth"
	"artisanhub/internal/catalog"
	"artisanhub/internal/events"
	"artisanhub/pkg/models"
)

type Handler struct {
	Repo    *Repo
	Catalog *catalog.Store
	Hub     *events.Hub
}

func NewHandler(repo *Repo, store *catalog.Store, hub *events.Hub) *Handler {
	return &Handler{Repo: repo, Catalog: store, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.list)
	rg.POST("/bookings", h.create)
	rg.GET("/bookings/:id", h.getOne)
	rg.POST("/bookings/:id/cancel", h.cancel)
}

type createReq struct {
	ArtisanID string `json:"artisan_id"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Location  string `json:"location"`
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
	if strings.TrimSpace(req.Service) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service required"})
		return
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.TimeSlot) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and time_slot required"})
		return
	}

	b := models.Booking{
		ID:        uuid.NewString(),
		UserID:    claims.UserID,
		ArtisanID: artisanID,
		Service:   strings.TrimSpace(req.Service),
		Date:      strings.TrimSpace(req.Date),
		TimeSlot:  strings.TrimSpace(req.TimeSlot),
		Location:  strings.TrimSpace(req.Location),
		Status:    models.BookingPending,
	}

	if err := h.Repo.Create(c.Request.Context(), b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	saved, err := h.Repo.Get(c.Request.Context(), b.ID, claims.UserID)
	if err != nil || saved == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}

	if h.Hub != nil {
		ev := events.BookingEvent{
			Type:      "booking.created",
			UserID:    claims.UserID,
			BookingID: saved.ID,
			ArtisanID: saved.ArtisanID,
			Status:    saved.Status,
			At:        time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	statuses, ok := statusFilter(c.Query("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "status must be one of: upcoming, past, pending, confirmed, completed, cancelled",
		})
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, err := h.Repo.ListByUser(c.Request.Context(), claims.UserID, statuses, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  len(items),
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	b, err := h.Repo.Get(c.Request.Context(), id, claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) cancel(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	b, err := h.Repo.Get(c.Request.Context(), id, claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if !b.Upcoming() {
		c.JSON(http.StatusConflict, gin.H{"error": "booking is no longer cancellable"})
		return
	}

	if _, err := h.Repo.UpdateStatus(c.Request.Context(), id, claims.UserID, models.BookingCancelled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cancel failed"})
		return
	}

	if h.Hub != nil {
		ev := events.BookingEvent{
			Type:      "booking.cancelled",
			UserID:    claims.UserID,
			BookingID: id,
			ArtisanID: b.ArtisanID,
			Status:    models.BookingCancelled,
			At:        time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, gin.H{"status": models.BookingCancelled})
}

// statusFilter maps the query value to concrete statuses: the UI's
// "upcoming" and "past" tabs each cover two stored statuses.
func statusFilter(raw string) ([]string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, true
	case "upcoming":
		return []string{models.BookingPending, models.BookingConfirmed}, true
	case "past":
		return []string{models.BookingCompleted, models.BookingCancelled}, true
	case models.BookingPending, models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
		return []string{strings.ToLower(strings.TrimSpace(raw))}, true
	default:
		return nil, false
	}
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
