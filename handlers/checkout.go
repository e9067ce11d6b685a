package handlers

import (
	"net/http"

	"bistro-chat-api/models"

	"github.com/gin-gonic/gin"
)

// StartCheckout begins the checkout dialogue as an explicit typed
// action, the same path the CHECKOUT quick reply takes
func (h *Handlers) StartCheckout(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	defer s.Unlock()

	if s.Step != models.StepIdle {
		c.JSON(http.StatusConflict, gin.H{"error": "A checkout is already in progress", "checkout_step": s.Step})
		return
	}

	botMsgs := h.Machine.Start(s)
	c.JSON(http.StatusOK, gin.H{
		"bot_messages":  botMsgs,
		"checkout_step": s.Step,
	})
}

type UpdateDraftRequest struct {
	OrderType models.OrderType       `json:"order_type" binding:"required"`
	Details   models.CustomerDetails `json:"details" binding:"required"`
}

// UpdateDraft saves a structured edit of the draft and re-issues the
// order summary
func (h *Handlers) UpdateDraft(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.OrderType {
	case models.TypeDineIn, models.TypeTakeaway, models.TypeDelivery:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order type"})
		return
	}

	s.Lock()
	defer s.Unlock()

	botMsgs := h.Machine.ApplyEdit(s, req.OrderType, req.Details)
	if botMsgs == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No checkout summary to edit", "checkout_step": s.Step})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bot_messages":  botMsgs,
		"checkout_step": s.Step,
		"draft":         s.Draft,
	})
}

// CancelEdit abandons the edit form without touching the draft
func (h *Handlers) CancelEdit(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	h.Machine.CancelEdit(s)
	step := s.Step
	s.Unlock()

	c.JSON(http.StatusOK, gin.H{"checkout_step": step})
}

// CancelCheckout aborts the whole checkout from any collecting state
func (h *Handlers) CancelCheckout(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	defer s.Unlock()

	if s.Step == models.StepIdle {
		c.JSON(http.StatusConflict, gin.H{"error": "No checkout in progress"})
		return
	}

	botMsgs := h.Machine.Cancel(s)
	c.JSON(http.StatusOK, gin.H{
		"bot_messages":  botMsgs,
		"checkout_step": s.Step,
	})
}
