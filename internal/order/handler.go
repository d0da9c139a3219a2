package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cocinacasera/internal/meal"
	"cocinacasera/internal/whatsapp"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func userFromContext(c *gin.Context) (string, string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return "", "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", "", false
	}
	return userID, c.GetString("userEmail"), true
}

// --------------------------------------------------
// Submit order
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req struct {
		Meals    []meal.Meal `json:"meals"`
		Platform string      `json:"platform"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, userEmail, ok := userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	o, message, err := h.service.Submit(c.Request.Context(), userID, userEmail, req.Meals)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     vErr.Error(),
				"mealIndex": vErr.MealIndex,
				"field":     vErr.Field,
				"slide":     vErr.Slide,
			})
		case errors.Is(err, ErrOrderingDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": "Pedidos cerrados hasta mañana"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	platform := req.Platform
	if platform == "" {
		platform = whatsapp.PlatformDesktop
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":    o,
		"message":  message,
		"whatsapp": whatsapp.BuildShareLink(platform, "", message),
	})
}

// --------------------------------------------------
// Admin: list & status
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
