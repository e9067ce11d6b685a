// Package ruleengine is the rule-based intent classifier: given one
// free-text input plus cart size, language and order history, it picks
// a conversational branch and produces a structured bot response. It is
// stateless; checkout turns never reach it.
package ruleengine

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"bistro-chat-api/catalog"
	"bistro-chat-api/fuzzy"
	"bistro-chat-api/models"
)

// Intent keyword sets, matched fuzzily. Bengali transliterations are
// included so romanized input works in either language.
var intentKeywords = map[string][]string{
	"greeting": {
		"hi", "hello", "hey", "start", "begin", "welcome", "hola", "salam", "assalamu",
		"good morning", "good evening", "main menu", "home", "shuru", "halo", "kemon", "hi there",
	},
	"menu": {
		"menu", "food", "eat", "hungry", "order", "item", "dish", "list", "option",
		"catalog", "browse", "khabar", "talika", "khete", "khabo", "meal", "lunch", "dinner",
	},
	"cart": {
		"cart", "basket", "checkout", "pay", "confirm", "finish", "done", "buy",
		"purchase", "jhuri", "bag", "check out", "bill", "total",
	},
	"track": {
		"track", "status", "where", "late", "update", "trace", "delivery",
		"arrived", "khobor", "obostha", "tracking", "trace order",
	},
	"location": {
		"location", "branch", "address", "place", "map", "shop", "store", "outlet",
		"thikana", "jayga", "kothay", "area", "zone", "directions",
	},
	"offer": {
		"offer", "promo", "deal", "discount", "sale", "save", "cheap", "free",
		"coupon", "voucher", "char", "kom", "dam", "special",
	},
	"help": {
		"help", "support", "contact", "call", "talk", "human", "agent", "issue",
		"problem", "error", "sahajjo", "jogajog", "number", "phone", "complain",
	},
}

var orderIDPattern = regexp.MustCompile(`#?(\d{4,})`)

// TrackingPayload is attached to order_tracking messages
type TrackingPayload struct {
	ID              string                  `json:"id"`
	Items           []models.CartItem       `json:"items"`
	Total           int                     `json:"total"`
	OrderType       models.OrderType        `json:"order_type,omitempty"`
	CustomerDetails *models.CustomerDetails `json:"customer_details,omitempty"`
}

func pick(lang models.Language, en, bn string) string {
	if lang == models.LangBN {
		return bn
	}
	return en
}

// InitialMessage is the session-start greeting
func InitialMessage(lang models.Language) models.Message {
	name := catalog.LocalizedRestaurantName(lang)
	text := pick(lang,
		"Welcome to "+name+"! 🍔\nI am your virtual assistant. How can I help you today?",
		"স্বাগতম "+name+"-এ! 🍔\nআমি আপনার ভার্চুয়াল অ্যাসিস্ট্যান্ট। আজ আপনাকে কীভাবে সাহায্য করতে পারি?")

	msg := models.NewMessage(models.RoleBot, models.TypeText, text, time.Now())
	msg.Options = []models.Option{
		catalog.Option(catalog.OptMenu, lang),
		catalog.Option(catalog.OptOffers, lang),
		catalog.Option(catalog.OptTrack, lang),
		catalog.Option(catalog.OptBranches, lang),
	}
	return msg
}

// FooterOptions builds the context-aware quick-reply row: "View Cart"
// first when the cart is non-empty, then the branch-specific extras
// (bare known IDs are localized, resolved options pass through), and a
// "Main Menu" escape hatch unless a home/menu option is already there.
// Duplicates are dropped, first occurrence wins.
func FooterOptions(cartCount int, lang models.Language, extras ...models.Option) []models.Option {
	var options []models.Option
	if cartCount > 0 {
		options = append(options, catalog.Option(catalog.OptCart, lang))
	}

	for _, opt := range extras {
		if opt.Label == "" {
			opt = catalog.Option(opt.ID, lang)
		}
		options = append(options, opt)
	}

	hasEscape := false
	for _, opt := range options {
		if opt.ID == catalog.OptBack || opt.ID == catalog.OptMenu {
			hasEscape = true
			break
		}
	}
	if !hasEscape {
		options = append(options, catalog.Option(catalog.OptBack, lang))
	}

	seen := make(map[string]bool, len(options))
	deduped := options[:0]
	for _, opt := range options {
		key := opt.ID
		if key == "" {
			key = opt.Label
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, opt)
	}
	return deduped
}

// ProcessUserMessage classifies one free-text input and returns the bot
// reply. The branch order is a deliberate priority policy: greeting,
// category, order-ID, track, cart, full menu, branch, location, offer,
// help, then the fallback.
func ProcessUserMessage(input string, cartCount int, lang models.Language, orders []models.Order) models.BotResponse {
	lower := strings.ToLower(strings.TrimSpace(input))

	if fuzzy.IsFuzzyMatch(lower, intentKeywords["greeting"]) {
		return models.BotResponse{
			Text: pick(lang,
				"Hello! 👋 I'm here to take your order. You can ask for specific items like **'Burgers'** or see our full menu.",
				"হ্যালো! 👋 আমি আপনার অর্ডার নিতে প্রস্তুত। আপনি নির্দিষ্ট আইটেম যেমন **'বার্গার'** চাইতে পারেন বা আমাদের পুরো মেনু দেখতে পারেন।"),
			Type: models.TypeText,
			Options: FooterOptions(cartCount, lang,
				models.Option{ID: catalog.OptMenu},
				models.Option{ID: catalog.OptOffers},
				models.Option{ID: catalog.OptTrack}),
		}
	}

	if cat, ok := matchCategory(lower); ok {
		name := cat.LocalizedName(lang)
		var others []models.Option
		for _, opt := range catalog.CategoryOptions(lang) {
			if opt.ID != cat.ID {
				others = append(others, opt)
			}
		}
		return models.BotResponse{
			Text: pick(lang,
				"Got it! Here are our delicious **"+name+"**:",
				"ঠিক আছে! এখানে আমাদের সুস্বাদু **"+name+"** দেওয়া হলো:"),
			Type:    models.TypeMenuCarousel,
			Payload: cat.Items,
			Options: FooterOptions(cartCount, lang, others...),
		}
	}

	if m := orderIDPattern.FindStringSubmatch(lower); m != nil {
		orderID := m[1]
		return models.BotResponse{
			Text: pick(lang,
				"Tracking information for Order #"+orderID+":",
				"অর্ডার #"+orderID+" এর ট্র্যাকিং তথ্য:"),
			Type:    models.TypeOrderTrack,
			Payload: trackingPayload(orderID, orders),
			Options: FooterOptions(cartCount, lang,
				models.Option{ID: catalog.OptBack},
				models.Option{ID: catalog.OptHelp}),
		}
	}

	if fuzzy.IsFuzzyMatch(lower, intentKeywords["track"]) {
		return models.BotResponse{
			Text: pick(lang,
				"To track your order, please enter your **Order ID** (e.g., #1234).",
				"আপনার অর্ডার ট্র্যাক করতে, অনুগ্রহ করে আপনার **অর্ডার আইডি** লিখুন (যেমন, #1234)।"),
			Type: models.TypeText,
			Options: FooterOptions(cartCount, lang,
				models.Option{ID: catalog.OptBack},
				models.Option{ID: catalog.OptHelp}),
		}
	}

	if fuzzy.IsFuzzyMatch(lower, intentKeywords["cart"]) {
		if cartCount == 0 {
			return models.BotResponse{
				Text: pick(lang,
					"Your cart is currently empty! 🛒\n\nCheck out our best sellers or current offers?",
					"আপনার কার্ট বর্তমানে খালি! 🛒\n\nআমাদের সেরা সেলিং আইটেম বা অফারগুলি দেখতে চান?"),
				Type: models.TypeText,
				Options: FooterOptions(0, lang,
					models.Option{ID: catalog.OptMenu},
					models.Option{ID: catalog.OptOffers},
					models.Option{ID: catalog.OptTrack}),
			}
		}
		return models.BotResponse{
			Text: pick(lang,
				"Here is what you've picked so far:",
				"আপনি এখন পর্যন্ত যা বাছাই করেছেন:"),
			Type: models.TypeCart,
			Options: FooterOptions(cartCount, lang,
				models.Option{ID: catalog.OptCheckout},
				models.Option{ID: catalog.OptMenu}),
		}
	}

	if fuzzy.IsFuzzyMatch(lower, intentKeywords["menu"]) {
		extras := append(catalog.CategoryOptions(lang), models.Option{ID: catalog.OptOffers})
		return models.BotResponse{
			Text: pick(lang,
				"Feast your eyes on our menu! 🍔🍕 Scroll sideways to explore.",
				"আমাদের মেনুটি দেখে নিন! 🍔🍕 এক্সপ্লোর করতে পাশে স্ক্রোল করুন।"),
			Type:    models.TypeMenuCarousel,
			Payload: catalog.AllItems(),
			Options: FooterOptions(cartCount, lang, extras...),
		}
	}

	if branch, ok := matchBranch(lower); ok {
		name := branch.LocalizedName(lang)
		addr := branch.Address
		hours := branch.Hours
		if lang == models.LangBN {
			if branch.AddressBN != "" {
				addr = branch.AddressBN
			}
			if branch.HoursBN != "" {
				hours = branch.HoursBN
			}
		}
		return models.BotResponse{
			Text: pick(lang,
				"📍 **"+name+" Branch**\n\nAddress: "+addr+"\nPhone: "+branch.Phone+"\nHours: "+hours,
				"📍 **"+name+" শাখা**\n\nঠিকানা: "+addr+"\nফোন: "+branch.Phone+"\nসময়সূচী: "+hours),
			Type:    models.TypeText,
			Options: FooterOptions(cartCount, lang, models.Option{ID: catalog.OptBranches}),
		}
	}

	if fuzzy.IsFuzzyMatch(lower, intentKeywords["location"]) {
		var names []models.Option
		for _, b := range catalog.Branches {
			names = append(names, models.Option{ID: b.ID, Label: b.LocalizedName(lang)})
		}
		return models.BotResponse{
			Text: pick(lang,
				"We have several branches. Which one is closest to you?",
				"আমাদের বেশ কয়েকটি শাখা রয়েছে। কোনটি আপনার সবচেয়ে কাছে?"),
			Type:    models.TypeText,
			Options: FooterOptions(cartCount, lang, names...),
		}
	}

	if fuzzy.IsFuzzyMatch(lower, intentKeywords["offer"]) {
		return models.BotResponse{
			Text: pick(lang,
				"🎉 **Current Offer:**\nBuy 1 Get 1 Free on all Burgers every Tuesday!\n\n(Valid for dine-in only)",
				"🎉 **বর্তমান অফার:**\nপ্রতি মঙ্গলবার সব বার্গারে ১টি কিনলে ১টি ফ্রি!\n\n(শুধুমাত্র ডাইন-ইন এর জন্য প্রযোজ্য)"),
			Type: models.TypeText,
			Options: []models.Option{
				{ID: "burgers", Label: pick(lang, "Order Burgers Now", "বার্গার অর্ডার করুন")},
				catalog.Option(catalog.OptMenu, lang),
			},
		}
	}

	if fuzzy.IsFuzzyMatch(lower, intentKeywords["help"]) {
		return models.BotResponse{
			Text: pick(lang,
				"You can reach us at **+880 1711-000000** or email us at **info@bengalbistro.com**.\n\nOur support team is available 10 AM - 10 PM.",
				"আপনি আমাদের সাথে **+880 1711-000000** নম্বরে যোগাযোগ করতে পারেন অথবা **info@bengalbistro.com**-এ ইমেল করতে পারেন।\n\nআমাদের সাপোর্ট টিম সকাল ১০টা - রাত ১০টা পর্যন্ত উপলব্ধ।"),
			Type:    models.TypeText,
			Options: FooterOptions(cartCount, lang, models.Option{ID: catalog.OptBranches}),
		}
	}

	return models.BotResponse{
		Text: pick(lang,
			"I'm sorry, I didn't quite catch that. 🤔\nWould you like to see the menu or track an order?",
			"দুঃখিত, আমি ঠিক বুঝতে পারিনি। 🤔\nআপনি কি মেনু দেখতে চান, নাকি অর্ডার ট্র্যাক করতে চান?"),
		Type: models.TypeText,
		Options: FooterOptions(cartCount, lang,
			models.Option{ID: catalog.OptMenu},
			models.Option{ID: catalog.OptOffers},
			models.Option{ID: catalog.OptTrack}),
	}
}

// matchCategory finds the first menu category whose name, localized
// name or keyword list fuzzily matches the input
func matchCategory(input string) (models.MenuCategory, bool) {
	for _, cat := range catalog.Menu {
		keywords := make([]string, 0, len(cat.Keywords)+2)
		keywords = append(keywords, cat.Name)
		if cat.NameBN != "" {
			keywords = append(keywords, cat.NameBN)
		}
		keywords = append(keywords, cat.Keywords...)
		if fuzzy.IsFuzzyMatch(input, keywords) {
			return cat, true
		}
	}
	return models.MenuCategory{}, false
}

func matchBranch(input string) (models.Branch, bool) {
	for _, b := range catalog.Branches {
		if fuzzy.IsFuzzyMatch(input, []string{b.Name, b.NameBN, b.ID}) {
			return b, true
		}
	}
	return models.Branch{}, false
}

// trackingPayload resolves a real order from history when one exists,
// otherwise synthesizes a deterministic demo basket from the ID's
// parity so tracking always answers something.
func trackingPayload(orderID string, orders []models.Order) TrackingPayload {
	for _, o := range orders {
		if o.ID == orderID {
			details := o.CustomerDetails
			return TrackingPayload{
				ID:              orderID,
				Items:           o.Items,
				Total:           o.Total,
				OrderType:       o.OrderType,
				CustomerDetails: &details,
			}
		}
	}

	n, _ := strconv.Atoi(orderID)
	if n%2 == 0 {
		return TrackingPayload{
			ID: orderID,
			Items: []models.CartItem{
				{MenuItem: catalog.Menu[0].Items[0], Quantity: 2},
				{MenuItem: catalog.Menu[5].Items[1], Quantity: 1},
			},
			Total: 880,
		}
	}
	return TrackingPayload{
		ID: orderID,
		Items: []models.CartItem{
			{MenuItem: catalog.Menu[0].Items[1], Quantity: 1},
			{MenuItem: catalog.Menu[3].Items[0], Quantity: 1},
		},
		Total: 400,
	}
}
