package handlers

import (
	"net/http"

	"bistro-chat-api/catalog"
	"bistro-chat-api/models"

	"github.com/gin-gonic/gin"
)

// GetOrders returns the session's order history, newest first
func (h *Handlers) GetOrders(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	defer s.Unlock()

	orders := make([]models.Order, len(s.Orders))
	for i, o := range s.Orders {
		orders[len(s.Orders)-1-i] = o
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderStatus returns the derived tracking milestone for an order.
// Unknown IDs still answer, with the type simulated from the ID, so
// tracking never dead-ends.
func (h *Handlers) GetOrderStatus(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	orderID := c.Param("id")

	s.Lock()
	var typ models.OrderType
	for _, o := range s.Orders {
		if o.ID == orderID {
			typ = o.OrderType
			break
		}
	}
	lang := s.Language
	s.Unlock()

	status := models.DeriveStatus(orderID, typ)

	labels := make([]string, len(status.Milestones))
	for i, key := range status.Milestones {
		labels[i] = catalog.Label(lang, key)
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":      orderID,
		"order_type":    status.OrderType,
		"progress":      status.Progress,
		"current":       status.Current,
		"current_label": catalog.Label(lang, status.Current),
		"milestones":    status.Milestones,
		"labels":        labels,
		"done":          status.Done,
	})
}
