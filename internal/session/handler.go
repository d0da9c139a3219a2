package session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cocinacasera/internal/catalog"
	"cocinacasera/internal/meal"
	"cocinacasera/internal/order"
	"cocinacasera/internal/pricing"
	"cocinacasera/internal/store"
	"cocinacasera/internal/summary"
	"cocinacasera/internal/whatsapp"
)

type Handler struct {
	service *Service
	orders  *order.Service
}

func NewHandler(service *Service, orders *order.Service) *Handler {
	return &Handler{service: service, orders: orders}
}

func (h *Handler) userID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	userID, ok := userIDVal.(string)
	return userID, ok
}

func mealID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("mealId"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// sessionView decorates the stored session with per-meal progress.
func sessionView(sess *Session) gin.H {
	progress := make([]gin.H, 0, len(sess.Meals))
	for i := range sess.Meals {
		m := &sess.Meals[i]
		progress = append(progress, gin.H{
			"mealId":     m.ID,
			"percentage": meal.CompletionPercentage(m),
			"complete":   meal.IsComplete(m),
		})
	}
	return gin.H{"session": sess, "progress": progress}
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Address meal.Address `json:"address"`
	}
	_ = c.ShouldBindJSON(&req)

	userID, ok := h.userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sess, err := h.service.Create(c.Request.Context(), userID, req.Address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sessionView(sess))
}

func (h *Handler) Get(c *gin.Context) {
	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// --------------------------------------------------
// Meal list
// --------------------------------------------------
func (h *Handler) AddMeal(c *gin.Context) {
	sess, notice, err := h.service.AddMeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view := sessionView(sess)
	view["notice"] = notice
	c.JSON(http.StatusOK, view)
}

func (h *Handler) DuplicateMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	sess, notice, err := h.service.DuplicateMeal(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view := sessionView(sess)
	view["notice"] = notice
	c.JSON(http.StatusOK, view)
}

func (h *Handler) RemoveMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	sess, notice, err := h.service.RemoveMeal(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view := sessionView(sess)
	view["notice"] = notice
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// Wizard interactions
// --------------------------------------------------
func (h *Handler) Apply(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var change Change
	if err := c.ShouldBindJSON(&change); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, advance, err := h.service.Apply(c.Request.Context(), c.Param("id"), id, change)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view := sessionView(sess)
	if advance != nil {
		view["advance"] = gin.H{
			"next":    int(advance.Next),
			"delayMs": advance.Delay.Milliseconds(),
		}
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// Additions
// --------------------------------------------------
func (h *Handler) AddAddition(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var req struct {
		OptionID string `json:"optionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.service.AddAddition(c.Request.Context(), c.Param("id"), id, req.OptionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

func (h *Handler) UpdateAddition(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var req struct {
		Action string          `json:"action"`
		Choice *catalog.Option `json:"choice,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	sessionID := c.Param("id")
	additionID := c.Param("additionId")

	var sess *Session
	var err error
	switch req.Action {
	case "configure":
		if req.Choice == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing choice"})
			return
		}
		sess, err = h.service.ConfigureAddition(ctx, sessionID, id, additionID, *req.Choice)
	case "increase":
		sess, err = h.service.IncreaseAddition(ctx, sessionID, id, additionID)
	case "decrease":
		sess, err = h.service.RemoveAddition(ctx, sessionID, id, additionID)
	case "cancel":
		sess, err = h.service.CancelAddition(ctx, sessionID, id, additionID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

func (h *Handler) ListReplacements(c *gin.Context) {
	name := c.Query("name")
	if !meal.RequiresReplacement(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "addition does not take a replacement"})
		return
	}
	c.JSON(http.StatusOK, h.service.Replacements(name))
}

// --------------------------------------------------
// Summary & submission
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":          pricing.Total(sess.Meals),
		"paymentSummary": pricing.Summarize(sess.Meals),
		"message":        summary.RenderMessage(sess.Meals),
	})
}

func (h *Handler) Submit(c *gin.Context) {
	var req struct {
		Platform string `json:"platform"`
	}
	_ = c.ShouldBindJSON(&req)

	userID, ok := h.userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	if mealID, pending := h.service.PendingAddition(sess); pending != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Configura primero la adición pendiente.",
			"mealId":     mealID,
			"additionId": pending.ID,
			"addition":   pending.Name,
		})
		return
	}

	o, message, err := h.orders.Submit(c.Request.Context(), userID, c.GetString("userEmail"), sess.Meals)
	if err != nil {
		var vErr *order.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     vErr.Error(),
				"mealIndex": vErr.MealIndex,
				"field":     vErr.Field,
				"slide":     vErr.Slide,
			})
		case errors.Is(err, order.ErrOrderingDisabled):
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
