package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a chat message
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// MessageType tells the presentation layer how to render a message
type MessageType string

const (
	TypeText         MessageType = "text"
	TypeMenuCarousel MessageType = "menu_carousel"
	TypeCart         MessageType = "cart"
	TypeOrderTrack   MessageType = "order_tracking"
	TypeReceipt      MessageType = "receipt"
	TypeTableSelect  MessageType = "table_select"
	TypeTimeSelect   MessageType = "time_select"
	TypeOrderSummary MessageType = "order_summary"
)

// Language selects which label table the bot speaks from
type Language string

const (
	LangEN Language = "en"
	LangBN Language = "bn"
)

// Option is a quick reply. ID is a stable tag the logic dispatches on;
// Label is the localized display string shown to the user.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Message struct {
	ID        string      `json:"id"`
	Role      Role        `json:"role"`
	Type      MessageType `json:"type"`
	Text      string      `json:"text"`
	Options   []Option    `json:"options,omitempty"`
	Payload   any         `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewMessage builds a chat message with a fresh identifier
func NewMessage(role Role, typ MessageType, text string, at time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Type:      typ,
		Text:      text,
		Timestamp: at,
	}
}

// BotResponse is what the rule engine produces for one user input
type BotResponse struct {
	Text    string      `json:"text"`
	Type    MessageType `json:"type"`
	Options []Option    `json:"options,omitempty"`
	Payload any         `json:"payload,omitempty"`
}

// ToMessage converts a rule engine response into an appendable bot message
func (r BotResponse) ToMessage(at time.Time) Message {
	msg := NewMessage(RoleBot, r.Type, r.Text, at)
	msg.Options = r.Options
	msg.Payload = r.Payload
	return msg
}
