// Package checkout drives the multi-step order dialogue: a per-session
// finite-state flow that collects order type and customer details
// through free-text and menu-driven turns, then finalizes the order.
package checkout

import (
	"log"
	"strconv"
	"strings"

	"bistro-chat-api/catalog"
	"bistro-chat-api/models"
	"bistro-chat-api/ruleengine"
	"bistro-chat-api/session"
	"bistro-chat-api/store"
)

// SummaryPayload is attached to order_summary messages so the client
// can render the review card with edit controls
type SummaryPayload struct {
	Type      models.OrderType       `json:"type"`
	Details   models.CustomerDetails `json:"details"`
	Total     int                    `json:"total"`
	TimeSlots []string               `json:"time_slots"`
	Tables    []string               `json:"tables"`
	Labels    map[string]string      `json:"labels"`
}

// Machine walks a session through the checkout flow. It owns no state
// of its own; everything lives on the session it is handed.
type Machine struct {
	store store.ProfileStore
}

func NewMachine(profiles store.ProfileStore) *Machine {
	return &Machine{store: profiles}
}

// Start begins a checkout. An empty cart never enters the flow; the
// input is routed through the classifier instead, which lands on its
// cart-empty branch.
func (m *Machine) Start(s *session.Session) []models.Message {
	if s.CartCount() == 0 {
		resp := ruleengine.ProcessUserMessage("checkout", 0, s.Language, s.Orders)
		return []models.Message{s.Append(resp.ToMessage(s.Now()))}
	}

	advance(s, models.StepType)
	s.Draft = models.OrderDraft{}

	steps := catalog.Steps(s.Language)
	msg := models.NewMessage(models.RoleBot, models.TypeText, steps.SelectType, s.Now())
	msg.Options = typeOptions(steps)
	return []models.Message{s.Append(msg)}
}

// Handle processes one user input while a checkout is in progress.
// Returns the bot messages produced by the transition; nil when the
// session is idle or mid-edit (edits arrive structured, not as text).
func (m *Machine) Handle(s *session.Session, input string) []models.Message {
	steps := catalog.Steps(s.Language)
	lower := strings.ToLower(strings.TrimSpace(input))

	if s.Step == models.StepIdle || s.Step == models.StepEdit {
		return nil
	}

	// Cancel overrides every collecting state
	if input == steps.Cancel || lower == "cancel" || lower == "বাতিল" {
		return m.Cancel(s)
	}

	switch s.Step {
	case models.StepType:
		return m.handleType(s, input, lower, steps)

	case models.StepName:
		s.Draft.Details.Name = input
		advance(s, models.StepPhone)
		return []models.Message{m.say(s, steps.EnterPhone)}

	case models.StepPhone:
		s.Draft.Details.Phone = input
		advance(s, models.StepExtra)
		return []models.Message{m.extraPrompt(s, steps)}

	case models.StepExtra:
		switch s.Draft.Type {
		case models.TypeDelivery:
			s.Draft.Details.Address = input
		case models.TypeTakeaway:
			s.Draft.Details.PickupTime = input
		case models.TypeDineIn:
			s.Draft.Details.TableNumber = input
		}
		advance(s, models.StepConfirm)
		return []models.Message{m.summary(s, steps)}

	case models.StepConfirm:
		if input == steps.PlaceOrder {
			return m.finalize(s)
		}
		return []models.Message{m.say(s, steps.InvalidConfirm)}
	}
	return nil
}

func (m *Machine) handleType(s *session.Session, input, lower string, steps catalog.StepText) []models.Message {
	var typ models.OrderType
	switch {
	case input == steps.ConfirmDineIn || strings.Contains(lower, "dine") || strings.Contains(lower, "ডাইন"):
		typ = models.TypeDineIn
	case input == steps.ConfirmTakeaway || strings.Contains(lower, "take") || strings.Contains(lower, "টেক"):
		typ = models.TypeTakeaway
	case input == steps.ConfirmDelivery || strings.Contains(lower, "home") || strings.Contains(lower, "delivery") || strings.Contains(lower, "ডেলিভারি"):
		typ = models.TypeDelivery
	}

	if typ == "" {
		msg := models.NewMessage(models.RoleBot, models.TypeText, steps.InvalidType, s.Now())
		msg.Options = typeOptions(steps)
		return []models.Message{s.Append(msg)}
	}

	s.Draft.Type = typ

	// Auto-fill from the saved profile: skip the questions we already
	// know the answers to.
	if s.Profile != nil {
		s.Draft.Details.Name = s.Profile.Name
		s.Draft.Details.Phone = s.Profile.Phone

		if typ == models.TypeDelivery && s.Profile.Address != "" {
			s.Draft.Details.Address = s.Profile.Address
			advance(s, models.StepConfirm)
			return []models.Message{m.summary(s, steps)}
		}

		advance(s, models.StepExtra)
		return []models.Message{m.extraPrompt(s, steps)}
	}

	advance(s, models.StepName)
	return []models.Message{m.say(s, steps.EnterName)}
}

// extraPrompt emits the type-specific detail question: free-text
// address for Delivery, a time list for Takeaway, a table list for
// Dine-in
func (m *Machine) extraPrompt(s *session.Session, steps catalog.StepText) models.Message {
	switch s.Draft.Type {
	case models.TypeTakeaway:
		msg := models.NewMessage(models.RoleBot, models.TypeTimeSelect, steps.EnterPickup, s.Now())
		msg.Payload = TimeSlots(s.Now(), s.Language)
		return s.Append(msg)
	case models.TypeDineIn:
		msg := models.NewMessage(models.RoleBot, models.TypeTableSelect, steps.EnterTable, s.Now())
		msg.Payload = catalog.TablesFor(s.Language)
		return s.Append(msg)
	default:
		return m.say(s, steps.EnterAddress)
	}
}

func (m *Machine) summary(s *session.Session, steps catalog.StepText) models.Message {
	lang := s.Language
	msg := models.NewMessage(models.RoleBot, models.TypeOrderSummary, steps.ConfirmTitle, s.Now())
	msg.Payload = SummaryPayload{
		Type:      s.Draft.Type,
		Details:   s.Draft.Details,
		Total:     s.CartTotal(),
		TimeSlots: TimeSlots(s.Now(), lang),
		Tables:    catalog.TablesFor(lang),
		Labels: map[string]string{
			"title":    catalog.Label(lang, "title"),
			"type":     catalog.Label(lang, "type"),
			"name":     catalog.Label(lang, "name"),
			"phone":    catalog.Label(lang, "phone"),
			"address":  catalog.Label(lang, "address"),
			"time":     catalog.Label(lang, "time"),
			"table":    catalog.Label(lang, "table"),
			"pickup":   catalog.Label(lang, "time"),
			"placeBtn": steps.PlaceOrder,
			"editBtn":  steps.EditOrder,
			"save":     steps.UpdateOrder,
			"cancel":   steps.CancelEdit,
		},
	}
	return s.Append(msg)
}

// Cancel aborts the flow from any collecting state
func (m *Machine) Cancel(s *session.Session) []models.Message {
	s.ResetDraft()

	lang := s.Language
	msg := models.NewMessage(models.RoleBot, models.TypeText,
		pickText(lang,
			"Checkout canceled. You can browse the menu.",
			"চেকআউট বাতিল করা হয়েছে। আপনি মেনু ব্রাউজ করতে পারেন।"),
		s.Now())
	msg.Options = []models.Option{
		catalog.Option(catalog.OptMenu, lang),
		catalog.Option(catalog.OptCart, lang),
	}
	return []models.Message{s.Append(msg)}
}

// BeginEdit opens the structured edit form from the confirm screen
func (m *Machine) BeginEdit(s *session.Session) bool {
	if s.Step != models.StepConfirm {
		return false
	}
	advance(s, models.StepEdit)
	return true
}

// ApplyEdit saves a structured edit and returns to the confirm screen
// with a fresh summary. Fields that don't belong to the new order type
// are cleared so exactly one of address/pickup/table survives.
func (m *Machine) ApplyEdit(s *session.Session, typ models.OrderType, details models.CustomerDetails) []models.Message {
	if s.Step != models.StepEdit && s.Step != models.StepConfirm {
		return nil
	}

	switch typ {
	case models.TypeDelivery:
		details.PickupTime, details.TableNumber = "", ""
	case models.TypeTakeaway:
		details.Address, details.TableNumber = "", ""
	case models.TypeDineIn:
		details.Address, details.PickupTime = "", ""
	}

	s.Draft = models.OrderDraft{Type: typ, Details: details}
	if s.Step == models.StepEdit {
		advance(s, models.StepConfirm)
	}
	return []models.Message{m.summary(s, catalog.Steps(s.Language))}
}

// CancelEdit abandons the edit form, leaving the draft untouched
func (m *Machine) CancelEdit(s *session.Session) {
	if s.Step == models.StepEdit {
		advance(s, models.StepConfirm)
	}
}

// finalize turns the draft into an order: computes the total, assigns
// a random 4-digit ID, upserts and persists the profile, appends the
// order to history, emits the receipt, then resets cart and flow.
func (m *Machine) finalize(s *session.Session) []models.Message {
	if s.CartCount() == 0 {
		return nil
	}

	total := s.CartTotal()
	orderID := strconv.Itoa(1000 + s.Rand.Intn(9000))

	profile := models.UserProfile{
		Name:        s.Draft.Details.Name,
		Phone:       s.Draft.Details.Phone,
		MemberSince: s.Now().Format("Jan 2006"),
		OrdersCount: 1,
	}
	if s.Profile != nil {
		profile.Address = s.Profile.Address
		profile.MemberSince = s.Profile.MemberSince
		profile.OrdersCount = s.Profile.OrdersCount + 1
	}
	if s.Draft.Type == models.TypeDelivery {
		profile.Address = s.Draft.Details.Address
	}
	if err := m.store.Save(&profile); err != nil {
		log.Printf("failed to persist profile: %v", err)
	}
	s.Profile = &profile

	order := models.Order{
		ID:              orderID,
		Items:           append([]models.CartItem(nil), s.Cart...),
		Total:           total,
		Status:          models.StatusPreparing,
		Date:            s.Now(),
		OrderType:       s.Draft.Type,
		CustomerDetails: s.Draft.Details,
	}
	s.Orders = append(s.Orders, order)

	lang := s.Language
	msg := models.NewMessage(models.RoleBot, models.TypeReceipt,
		pickText(lang,
			"Order #"+orderID+" Confirmed! 🎉\nWe are preparing your food.",
			"অর্ডার #"+orderID+" নিশ্চিত হয়েছে! 🎉\nআমরা আপনার খাবার তৈরি করছি।"),
		s.Now())
	msg.Payload = order
	msg.Options = []models.Option{
		catalog.Option(catalog.OptTrack, lang),
		catalog.Option(catalog.OptMenu, lang),
	}
	appended := s.Append(msg)

	s.ClearCart()
	s.ResetDraft()
	return []models.Message{appended}
}

func (m *Machine) say(s *session.Session, text string) models.Message {
	return s.Append(models.NewMessage(models.RoleBot, models.TypeText, text, s.Now()))
}

func typeOptions(steps catalog.StepText) []models.Option {
	return []models.Option{
		{ID: string(models.TypeDineIn), Label: steps.ConfirmDineIn},
		{ID: string(models.TypeTakeaway), Label: steps.ConfirmTakeaway},
		{ID: string(models.TypeDelivery), Label: steps.ConfirmDelivery},
	}
}

func pickText(lang models.Language, en, bn string) string {
	if lang == models.LangBN {
		return bn
	}
	return en
}

// advance moves the session to the next step, logging any transition
// outside the flow table
func advance(s *session.Session, to models.CheckoutStep) {
	if !CanTransition(s.Step, to) {
		log.Printf("checkout: unexpected transition %s → %s", s.Step, to)
	}
	s.Step = to
}
