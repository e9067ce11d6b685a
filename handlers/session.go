package handlers

import (
	"net/http"

	"bistro-chat-api/middleware"
	"bistro-chat-api/models"
	"bistro-chat-api/ruleengine"

	"github.com/gin-gonic/gin"
)

type CreateSessionRequest struct {
	Language models.Language `json:"language"`
}

// CreateSession starts a conversation: loads the persisted profile
// (read once per session), appends the greeting, and returns a signed
// session token.
func (h *Handlers) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	_ = c.ShouldBindJSON(&req)

	lang := req.Language
	if lang != models.LangBN {
		lang = models.LangEN
	}

	s := h.Sessions.Create(lang)

	// A broken profile record loads as nil, never as an error page
	profile, err := h.Profiles.Load()
	if err == nil {
		s.Profile = profile
	}

	greeting := s.Append(ruleengine.InitialMessage(lang))

	token, err := middleware.GenerateToken(s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate session token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Session started",
		"token":      token,
		"session_id": s.ID,
		"language":   lang,
		"greeting":   greeting,
	})
}

type SetLanguageRequest struct {
	Language models.Language `json:"language" binding:"required"`
}

// SetLanguage switches the bot's language mid-conversation
func (h *Handlers) SetLanguage(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Language != models.LangEN && req.Language != models.LangBN {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Language must be 'en' or 'bn'"})
		return
	}

	s.Lock()
	s.Language = req.Language
	s.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Language updated", "language": req.Language})
}

// GetProfile returns the saved user profile, if any
func (h *Handlers) GetProfile(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	profile := s.Profile
	s.Unlock()

	if profile == nil {
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
