package handlers

import (
	"net/http"

	"bistro-chat-api/catalog"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// AddCartItem puts one unit of a menu item into the cart
func (h *Handlers) AddCartItem(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := catalog.FindItem(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	s.Lock()
	s.AddToCart(item)
	cart, total := s.Cart, s.CartTotal()
	s.Unlock()

	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": total})
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// UpdateCartItem bumps an item's quantity up or down, floor 1
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Lock()
	ok := s.UpdateQuantity(c.Param("id"), req.Delta)
	cart, total := s.Cart, s.CartTotal()
	s.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item is not in the cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": total})
}

// RemoveCartItem drops an item from the cart
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	ok := s.RemoveItem(c.Param("id"))
	cart, total := s.Cart, s.CartTotal()
	s.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item is not in the cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": total})
}

// GetCart returns the cart contents and running total
func (h *Handlers) GetCart(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	defer s.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"count": s.CartCount(),
		"cart":  s.Cart,
		"total": s.CartTotal(),
	})
}

// ToggleFavorite flips an item's favorite flag
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	itemID := c.Param("id")
	if _, ok := catalog.FindItem(itemID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	s.Lock()
	favorited := s.ToggleFavorite(itemID)
	favorites := s.Favorites
	s.Unlock()

	c.JSON(http.StatusOK, gin.H{"favorited": favorited, "favorites": favorites})
}
