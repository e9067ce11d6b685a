package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bistro-chat-api/checkout"
	"bistro-chat-api/handlers"
	"bistro-chat-api/session"
	"bistro-chat-api/store"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	profiles := store.NewMemoryStore()
	h := handlers.New(session.NewRegistry(), checkout.NewMachine(profiles), profiles)
	SetupRoutes(r, h)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func startSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := doRequest(t, r, http.MethodPost, "/api/session", "", map[string]string{"language": "en"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: got %d, want 201", w.Code)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("create session returned no token")
	}
	return token
}

func TestCreateSessionReturnsGreeting(t *testing.T) {
	r := newTestRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/session", "", map[string]string{"language": "bn"})

	if w.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201", w.Code)
	}
	if body["language"] != "bn" {
		t.Errorf("language = %v, want bn", body["language"])
	}
	greeting, ok := body["greeting"].(map[string]any)
	if !ok {
		t.Fatal("response has no greeting message")
	}
	if !strings.Contains(greeting["text"].(string), "বেঙ্গল বিস্ট্রো") {
		t.Errorf("greeting text = %q", greeting["text"])
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter()

	w, _ := doRequest(t, r, http.MethodGet, "/api/cart", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d, want 401", w.Code)
	}

	w, _ = doRequest(t, r, http.MethodGet, "/api/cart", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: got %d, want 401", w.Code)
	}
}

func TestMenuIsPublic(t *testing.T) {
	r := newTestRouter()

	w, body := doRequest(t, r, http.MethodGet, "/api/menu", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	cats, _ := body["categories"].([]any)
	if len(cats) != 6 {
		t.Errorf("got %d categories, want 6", len(cats))
	}

	w, _ = doRequest(t, r, http.MethodGet, "/api/menu/burgers", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("category lookup: got %d, want 200", w.Code)
	}
	w, _ = doRequest(t, r, http.MethodGet, "/api/menu/sushi", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown category: got %d, want 404", w.Code)
	}
}

func TestCartLifecycle(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	w, body := doRequest(t, r, http.MethodPost, "/api/cart/items", token, map[string]string{"item_id": "b2"})
	if w.Code != http.StatusOK {
		t.Fatalf("add item: got %d, want 200", w.Code)
	}
	if body["total"] != float64(280) {
		t.Errorf("total = %v, want 280", body["total"])
	}

	// same item again bumps quantity, not count
	_, _ = doRequest(t, r, http.MethodPost, "/api/cart/items", token, map[string]string{"item_id": "b2"})
	_, body = doRequest(t, r, http.MethodGet, "/api/cart", token, nil)
	if body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}
	if body["total"] != float64(560) {
		t.Errorf("total = %v, want 560", body["total"])
	}

	w, body = doRequest(t, r, http.MethodPut, "/api/cart/items/b2", token, map[string]int{"delta": -1})
	if w.Code != http.StatusOK {
		t.Fatalf("update quantity: got %d, want 200", w.Code)
	}
	if body["total"] != float64(280) {
		t.Errorf("total after decrement = %v, want 280", body["total"])
	}

	w, _ = doRequest(t, r, http.MethodDelete, "/api/cart/items/b2", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove item: got %d, want 200", w.Code)
	}
	w, _ = doRequest(t, r, http.MethodDelete, "/api/cart/items/b2", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("remove missing item: got %d, want 404", w.Code)
	}

	w, _ = doRequest(t, r, http.MethodPost, "/api/cart/items", token, map[string]string{"item_id": "zz"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown item: got %d, want 404", w.Code)
	}
}

func TestChatMessageClassifies(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	w, body := doRequest(t, r, http.MethodPost, "/api/chat/message", token, map[string]string{"text": "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	if body["checkout_step"] != "IDLE" {
		t.Errorf("checkout_step = %v, want IDLE", body["checkout_step"])
	}
	bots, _ := body["bot_messages"].([]any)
	if len(bots) != 1 {
		t.Fatalf("got %d bot messages, want 1", len(bots))
	}
	if delay := body["typing_delay_ms"].(float64); delay < 600 || delay >= 1100 {
		t.Errorf("typing_delay_ms = %v, want [600,1100)", delay)
	}
}

func TestCheckoutOverHTTP(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	_, _ = doRequest(t, r, http.MethodPost, "/api/cart/items", token, map[string]string{"item_id": "b2"})

	w, body := doRequest(t, r, http.MethodPost, "/api/checkout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start checkout: got %d, want 200", w.Code)
	}
	if body["checkout_step"] != "TYPE" {
		t.Fatalf("checkout_step = %v, want TYPE", body["checkout_step"])
	}

	// second start while one is live
	w, _ = doRequest(t, r, http.MethodPost, "/api/checkout", token, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("double start: got %d, want 409", w.Code)
	}

	steps := []struct {
		text string
		want string
	}{
		{"Home Delivery", "NAME"},
		{"Rahim Uddin", "PHONE"},
		{"01711223344", "EXTRA"},
		{"House 5, Dhanmondi", "CONFIRM"},
		{"Place Order", "IDLE"},
	}
	for _, step := range steps {
		_, body = doRequest(t, r, http.MethodPost, "/api/chat/message", token, map[string]string{"text": step.text})
		if body["checkout_step"] != step.want {
			t.Fatalf("after %q: checkout_step = %v, want %s", step.text, body["checkout_step"], step.want)
		}
	}

	_, body = doRequest(t, r, http.MethodGet, "/api/orders", token, nil)
	if body["count"] != float64(1) {
		t.Fatalf("order count = %v, want 1", body["count"])
	}
	order := body["orders"].([]any)[0].(map[string]any)
	if order["total"] != float64(280) {
		t.Errorf("order total = %v, want 280", order["total"])
	}

	// cart is spent
	_, body = doRequest(t, r, http.MethodGet, "/api/cart", token, nil)
	if body["count"] != float64(0) {
		t.Errorf("cart count after order = %v, want 0", body["count"])
	}

	// profile was created from the order details
	_, body = doRequest(t, r, http.MethodGet, "/api/profile", token, nil)
	profile, _ := body["profile"].(map[string]any)
	if profile == nil || profile["name"] != "Rahim Uddin" {
		t.Errorf("profile = %v, want name Rahim Uddin", body["profile"])
	}
}

func TestQuickReplyCheckoutWithEmptyCart(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	w, body := doRequest(t, r, http.MethodPost, "/api/chat/reply", token, map[string]string{"id": "CHECKOUT", "label": "Checkout"})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	if body["checkout_step"] != "IDLE" {
		t.Errorf("checkout_step = %v, want IDLE", body["checkout_step"])
	}
	bots := body["bot_messages"].([]any)
	text := bots[0].(map[string]any)["text"].(string)
	if !strings.Contains(text, "empty") {
		t.Errorf("bot text = %q, want cart-empty reply", text)
	}
}

func TestCancelCheckoutOverHTTP(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	w, _ := doRequest(t, r, http.MethodDelete, "/api/checkout", token, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("cancel with nothing live: got %d, want 409", w.Code)
	}

	_, _ = doRequest(t, r, http.MethodPost, "/api/cart/items", token, map[string]string{"item_id": "s1"})
	_, _ = doRequest(t, r, http.MethodPost, "/api/checkout", token, nil)

	w, body := doRequest(t, r, http.MethodDelete, "/api/checkout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: got %d, want 200", w.Code)
	}
	if body["checkout_step"] != "IDLE" {
		t.Errorf("checkout_step = %v, want IDLE", body["checkout_step"])
	}
}

func TestOrderStatusEndpoint(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	w, body := doRequest(t, r, http.MethodGet, "/api/orders/4821/status", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	if body["progress"] != float64(1) || body["current"] != "cooking" {
		t.Errorf("status = %v/%v, want 1/cooking", body["progress"], body["current"])
	}
	if body["current_label"] != "Cooking" {
		t.Errorf("current_label = %v, want Cooking", body["current_label"])
	}
}

func TestSetLanguageValidation(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	w, _ := doRequest(t, r, http.MethodPut, "/api/session/language", token, map[string]string{"language": "fr"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad language: got %d, want 400", w.Code)
	}

	w, body := doRequest(t, r, http.MethodPut, "/api/session/language", token, map[string]string{"language": "bn"})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	if body["language"] != "bn" {
		t.Errorf("language = %v, want bn", body["language"])
	}

	// the greeting re-issued after the switch speaks Bengali
	_, body = doRequest(t, r, http.MethodGet, "/api/chat/init", token, nil)
	greeting := body["greeting"].(map[string]any)
	if !strings.Contains(greeting["text"].(string), "স্বাগতম") {
		t.Errorf("greeting text = %q, want Bengali", greeting["text"])
	}
}

func TestFavoriteToggle(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	for i, want := range []bool{true, false} {
		w, body := doRequest(t, r, http.MethodPost, "/api/favorites/b1", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("toggle %d: got %d, want 200", i, w.Code)
		}
		if body["favorited"] != want {
			t.Errorf("toggle %d: favorited = %v, want %v", i, body["favorited"], want)
		}
	}

	w, _ := doRequest(t, r, http.MethodPost, "/api/favorites/zz", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown item: got %d, want 404", w.Code)
	}
}

func TestCheckoutFlowDocs(t *testing.T) {
	r := newTestRouter()

	w, body := doRequest(t, r, http.MethodGet, "/api/checkout/flow", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	transitions := body["state_machine"].([]any)
	if len(transitions) == 0 {
		t.Fatal("no transitions listed")
	}
	first := transitions[0].(map[string]any)
	if first["from"] != "IDLE" || first["to"] != "TYPE" {
		t.Errorf("first transition = %v -> %v", first["from"], first["to"])
	}
}

func TestMessagesLogGrows(t *testing.T) {
	r := newTestRouter()
	token := startSession(t, r)

	for i := 0; i < 2; i++ {
		_, _ = doRequest(t, r, http.MethodPost, "/api/chat/message", token, map[string]string{"text": fmt.Sprintf("hello %d", i)})
	}

	_, body := doRequest(t, r, http.MethodGet, "/api/chat/messages", token, nil)
	// greeting + 2 user turns + 2 bot replies
	if body["count"] != float64(5) {
		t.Errorf("message count = %v, want 5", body["count"])
	}
}
