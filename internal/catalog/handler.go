package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cocinacasera/internal/store"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Public reads
// --------------------------------------------------
func (h *Handler) GetCatalogs(c *gin.Context) {
	snapshot := h.service.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"soups":            snapshot.Soups,
		"soupReplacements": snapshot.SoupReplacements,
		"principles":       snapshot.Principles,
		"proteins":         snapshot.Proteins,
		"drinks":           snapshot.Drinks,
		"sides":            snapshot.Sides,
		"times":            snapshot.Times,
		"paymentMethods":   snapshot.PaymentMethods,
		"additions":        snapshot.Additions,
	})
}

func (h *Handler) GetCollection(c *gin.Context) {
	name := c.Param("collection")
	if !ValidCollection(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown collection"})
		return
	}
	snapshot := h.service.Snapshot()
	c.JSON(http.StatusOK, snapshot.ByCollection(name))
}

// --------------------------------------------------
// Admin CRUD
// --------------------------------------------------
func (h *Handler) CreateOption(c *gin.Context) {
	var opt Option
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.CreateOption(c.Request.Context(), c.Param("collection"), opt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateOption(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.UpdateOption(c.Request.Context(), c.Param("collection"), c.Param("id"), partial)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "option updated"})
}

func (h *Handler) DeleteOption(c *gin.Context) {
	err := h.service.DeleteOption(c.Request.Context(), c.Param("collection"), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "option not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "option deleted"})
}
