package routes

import (
	"bistro-chat-api/handlers"
	"bistro-chat-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/session", h.CreateSession)

		// Catalog (no session needed)
		public.GET("/menu", h.GetMenu)
		public.GET("/menu/:id", h.GetCategory)
		public.GET("/branches", h.GetBranches)

		// State machine info (great for docs/Postman)
		public.GET("/checkout/flow", h.GetCheckoutFlow)
	}

	// ── Session routes ─────────────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.SessionRequired())
	{
		auth.PUT("/session/language", h.SetLanguage)
		auth.GET("/profile", h.GetProfile)

		// Chat
		auth.POST("/chat/message", h.SendMessage)
		auth.POST("/chat/reply", h.QuickReply)
		auth.GET("/chat/messages", h.GetMessages)
		auth.GET("/chat/init", h.GetChatInit)

		// Cart
		auth.GET("/cart", h.GetCart)
		auth.POST("/cart/items", h.AddCartItem)
		auth.PUT("/cart/items/:id", h.UpdateCartItem)
		auth.DELETE("/cart/items/:id", h.RemoveCartItem)

		// Favorites
		auth.POST("/favorites/:id", h.ToggleFavorite)

		// Orders
		auth.GET("/orders", h.GetOrders)
		auth.GET("/orders/:id/status", h.GetOrderStatus)

		// Checkout as typed actions
		auth.POST("/checkout", h.StartCheckout)
		auth.PUT("/checkout/draft", h.UpdateDraft)
		auth.DELETE("/checkout/edit", h.CancelEdit)
		auth.DELETE("/checkout", h.CancelCheckout)
	}
}
