package handlers

import (
	"net/http"

	"bistro-chat-api/catalog"
	"bistro-chat-api/checkout"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the full catalog (public)
func (h *Handlers) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"restaurant": catalog.RestaurantName,
		"categories": catalog.Menu,
	})
}

// GetCategory returns one category's items (public)
func (h *Handlers) GetCategory(c *gin.Context) {
	cat, ok := catalog.FindCategory(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

// GetBranches returns all branches (public)
func (h *Handlers) GetBranches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":    len(catalog.Branches),
		"branches": catalog.Branches,
	})
}

// GetCheckoutFlow returns the checkout state machine for documentation
func (h *Handlers) GetCheckoutFlow(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine": checkout.AllTransitions(),
		"initial_state": "IDLE",
		"description":   "Conversational checkout dialogue state machine",
	})
}
