// Package session holds all per-conversation mutable state in one
// explicit context object: cart, message log, order history, checkout
// draft and the loaded profile. Nothing here is global; every engine
// call receives the session it operates on.
package session

import (
	"math/rand"
	"sync"
	"time"

	"bistro-chat-api/models"
)

type Session struct {
	sync.Mutex

	ID       string
	Language models.Language

	Cart      []models.CartItem
	Messages  []models.Message
	Orders    []models.Order
	Favorites []string
	Profile   *models.UserProfile

	Step  models.CheckoutStep
	Draft models.OrderDraft

	// Injected collaborators so transitions are deterministic in tests
	Now  func() time.Time
	Rand *rand.Rand
}

// New creates a session with real clock and seeded random source
func New(id string, lang models.Language) *Session {
	return &Session{
		ID:       id,
		Language: lang,
		Step:     models.StepIdle,
		Now:      time.Now,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Append adds a message to the append-only chat log and returns it
func (s *Session) Append(msg models.Message) models.Message {
	s.Messages = append(s.Messages, msg)
	return msg
}

// AddToCart adds one unit of an item, bumping quantity if present
func (s *Session) AddToCart(item models.MenuItem) {
	for i := range s.Cart {
		if s.Cart[i].ID == item.ID {
			s.Cart[i].Quantity++
			return
		}
	}
	s.Cart = append(s.Cart, models.CartItem{MenuItem: item, Quantity: 1})
}

// UpdateQuantity adjusts an item's quantity by delta, never below 1.
// Returns false when the item is not in the cart.
func (s *Session) UpdateQuantity(itemID string, delta int) bool {
	for i := range s.Cart {
		if s.Cart[i].ID == itemID {
			qty := s.Cart[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			s.Cart[i].Quantity = qty
			return true
		}
	}
	return false
}

// RemoveItem drops an item from the cart entirely
func (s *Session) RemoveItem(itemID string) bool {
	for i := range s.Cart {
		if s.Cart[i].ID == itemID {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return true
		}
	}
	return false
}

// CartCount is the number of distinct items in the cart
func (s *Session) CartCount() int {
	return len(s.Cart)
}

// CartTotal sums price x quantity over the cart
func (s *Session) CartTotal() int {
	total := 0
	for _, item := range s.Cart {
		total += item.Price * item.Quantity
	}
	return total
}

// ClearCart empties the cart, done once per finalized order
func (s *Session) ClearCart() {
	s.Cart = nil
}

// ResetDraft returns the checkout machine to its initial state
func (s *Session) ResetDraft() {
	s.Step = models.StepIdle
	s.Draft = models.OrderDraft{}
}

// ToggleFavorite flips an item's favorite flag, reporting the new state
func (s *Session) ToggleFavorite(itemID string) bool {
	for i, id := range s.Favorites {
		if id == itemID {
			s.Favorites = append(s.Favorites[:i], s.Favorites[i+1:]...)
			return false
		}
	}
	s.Favorites = append(s.Favorites, itemID)
	return true
}

// TypingDelay is the simulated bot "thinking" pause: 600ms plus up to
// 500ms of jitter. Pure UX pacing, returned to the client rather than
// slept on the server.
func (s *Session) TypingDelay() time.Duration {
	return 600*time.Millisecond + time.Duration(s.Rand.Intn(500))*time.Millisecond
}
