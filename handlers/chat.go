package handlers

import (
	"net/http"

	"bistro-chat-api/catalog"
	"bistro-chat-api/models"
	"bistro-chat-api/ruleengine"
	"bistro-chat-api/session"

	"github.com/gin-gonic/gin"
)

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// SendMessage processes one free-text user turn. A checkout in
// progress intercepts the input; otherwise it goes to the classifier.
func (h *Handlers) SendMessage(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Lock()
	defer s.Unlock()

	userMsg := s.Append(models.NewMessage(models.RoleUser, models.TypeText, req.Text, s.Now()))
	botMsgs := h.reply(s, req.Text)

	c.JSON(http.StatusOK, gin.H{
		"user_message":    userMsg,
		"bot_messages":    botMsgs,
		"typing_delay_ms": s.TypingDelay().Milliseconds(),
		"checkout_step":   s.Step,
	})
}

// reply routes input: state machine while checkout is live, classifier
// otherwise. Mid-edit free text is swallowed; edits arrive structured.
func (h *Handlers) reply(s *session.Session, text string) []models.Message {
	if s.Step == models.StepEdit {
		return nil
	}
	if s.Step != models.StepIdle {
		return h.Machine.Handle(s, text)
	}
	resp := ruleengine.ProcessUserMessage(text, s.CartCount(), s.Language, s.Orders)
	return []models.Message{s.Append(resp.ToMessage(s.Now()))}
}

type QuickReplyRequest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Canonical trigger text per stable quick-reply ID. The classifier
// keys on English keywords, so tapping a localized button must not
// depend on its display string.
var quickReplyTriggers = map[string]string{
	catalog.OptMenu:     "menu",
	catalog.OptCart:     "View Cart",
	catalog.OptOffers:   "offers",
	catalog.OptTrack:    "track order",
	catalog.OptBranches: "branches",
	catalog.OptHelp:     "help",
	catalog.OptBack:     "main menu",
}

// QuickReply dispatches a tapped quick-reply option by its stable ID.
// CHECKOUT starts the state machine; during a live checkout the label
// feeds the machine directly; known IDs map to canonical trigger text;
// anything else is processed as if the user typed the label.
func (h *Handlers) QuickReply(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	var req QuickReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" && req.Label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either id or label is required"})
		return
	}

	s.Lock()
	defer s.Unlock()

	var botMsgs []models.Message
	switch {
	case req.ID == catalog.OptCheckout && s.Step == models.StepIdle:
		botMsgs = h.Machine.Start(s)

	case req.ID == catalog.OptEdit && s.Step == models.StepConfirm:
		h.Machine.BeginEdit(s)

	case s.Step != models.StepIdle:
		s.Append(models.NewMessage(models.RoleUser, models.TypeText, req.Label, s.Now()))
		botMsgs = h.Machine.Handle(s, req.Label)

	default:
		text := req.Label
		if trigger, ok := quickReplyTriggers[req.ID]; ok {
			text = trigger
		}
		s.Append(models.NewMessage(models.RoleUser, models.TypeText, req.Label, s.Now()))
		resp := ruleengine.ProcessUserMessage(text, s.CartCount(), s.Language, s.Orders)
		botMsgs = []models.Message{s.Append(resp.ToMessage(s.Now()))}
	}

	c.JSON(http.StatusOK, gin.H{
		"bot_messages":    botMsgs,
		"typing_delay_ms": s.TypingDelay().Milliseconds(),
		"checkout_step":   s.Step,
	})
}

// GetChatInit re-issues the initial greeting for the session's current
// language without appending it, so a client can rebuild its start
// screen after a language switch
func (h *Handlers) GetChatInit(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	lang := s.Language
	s.Unlock()

	c.JSON(http.StatusOK, gin.H{"greeting": ruleengine.InitialMessage(lang)})
}

// GetMessages returns the full append-only chat log
func (h *Handlers) GetMessages(c *gin.Context) {
	s := h.currentSession(c)
	if s == nil {
		return
	}

	s.Lock()
	defer s.Unlock()
	c.JSON(http.StatusOK, gin.H{"count": len(s.Messages), "messages": s.Messages})
}
