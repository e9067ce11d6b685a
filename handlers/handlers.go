// Package handlers exposes the chat engine over HTTP. Each handler
// locks the session it touches so overlapping requests for the same
// conversation serialize; the engine itself never blocks or sleeps.
package handlers

import (
	"net/http"

	"bistro-chat-api/checkout"
	"bistro-chat-api/middleware"
	"bistro-chat-api/session"
	"bistro-chat-api/store"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Sessions *session.Registry
	Machine  *checkout.Machine
	Profiles store.ProfileStore
}

func New(sessions *session.Registry, machine *checkout.Machine, profiles store.ProfileStore) *Handlers {
	return &Handlers{Sessions: sessions, Machine: machine, Profiles: profiles}
}

// currentSession resolves the caller's session or writes a 404
func (h *Handlers) currentSession(c *gin.Context) *session.Session {
	s := h.Sessions.Get(middleware.GetSessionID(c))
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	}
	return s
}
