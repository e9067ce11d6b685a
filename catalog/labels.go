package catalog

import "bistro-chat-api/models"

const (
	RestaurantName   = "Bengal Bistro"
	RestaurantNameBN = "বেঙ্গল বিস্ট্রো"
)

// LocalizedRestaurantName returns the restaurant name for a language
func LocalizedRestaurantName(lang models.Language) string {
	if lang == models.LangBN {
		return RestaurantNameBN
	}
	return RestaurantName
}

// Stable quick-reply IDs. Logic dispatches on these; the labels below
// are only shown to the user.
const (
	OptMenu     = "MENU"
	OptCart     = "CART"
	OptOffers   = "OFFERS"
	OptTrack    = "TRACK"
	OptBranches = "BRANCHES"
	OptHelp     = "HELP"
	OptBack     = "BACK"
	OptCheckout = "CHECKOUT"
	OptEdit     = "EDIT"
)

var optionLabels = map[models.Language]map[string]string{
	models.LangEN: {
		OptMenu:     "Browse Menu",
		OptCart:     "View Cart",
		OptOffers:   "Current Offers",
		OptTrack:    "Track Order",
		OptBranches: "Our Branches",
		OptHelp:     "Help & Support",
		OptBack:     "Main Menu",
		OptCheckout: "Checkout",
		OptEdit:     "Edit Details",
	},
	models.LangBN: {
		OptMenu:     "মেনু দেখুন",
		OptCart:     "কার্ট দেখুন",
		OptOffers:   "অফারসমূহ",
		OptTrack:    "অর্ডার ট্র্যাক",
		OptBranches: "আমাদের শাখাসমূহ",
		OptHelp:     "সাহায্য",
		OptBack:     "প্রধান মেনু",
		OptCheckout: "চেকআউট",
		OptEdit:     "তথ্য পরিবর্তন করুন",
	},
}

// OptionLabel resolves a known quick-reply ID to its localized label
func OptionLabel(id string, lang models.Language) (string, bool) {
	label, ok := optionLabels[lang][id]
	return label, ok
}

// Option builds a quick reply for a known ID. Unknown IDs fall back to
// using the ID itself as the label so a bad key is visible, not silent.
func Option(id string, lang models.Language) models.Option {
	if label, ok := OptionLabel(id, lang); ok {
		return models.Option{ID: id, Label: label}
	}
	return models.Option{ID: id, Label: id}
}

// StepText holds every prompt the checkout dialogue can emit
type StepText struct {
	SelectType      string
	EnterName       string
	EnterPhone      string
	EnterAddress    string
	EnterPickup     string
	EnterTable      string
	ConfirmDineIn   string
	ConfirmTakeaway string
	ConfirmDelivery string
	InvalidType     string
	Cancel          string
	ConfirmTitle    string
	PlaceOrder      string
	EditOrder       string
	InvalidConfirm  string
	UpdateOrder     string
	CancelEdit      string
	EditTitle       string
}

var checkoutSteps = map[models.Language]StepText{
	models.LangEN: {
		SelectType:      "How would you like to receive your order?",
		EnterName:       "Please enter your Name:",
		EnterPhone:      "Please enter your Phone Number:",
		EnterAddress:    "Please enter your Delivery Address:",
		EnterPickup:     "Please select a Pickup Time:",
		EnterTable:      "Please select your Table Number from the list below:",
		ConfirmDineIn:   "Dine-in",
		ConfirmTakeaway: "Takeaway",
		ConfirmDelivery: "Home Delivery",
		InvalidType:     "Please select a valid order type from the options below.",
		Cancel:          "Cancel Checkout",
		ConfirmTitle:    "Does everything look correct?",
		PlaceOrder:      "Place Order",
		EditOrder:       "Edit Details",
		InvalidConfirm:  "Please select 'Place Order' to proceed or 'Edit Details' to make changes.",
		UpdateOrder:     "Update Order",
		CancelEdit:      "Cancel Edit",
		EditTitle:       "Update your details below:",
	},
	models.LangBN: {
		SelectType:      "আপনি কীভাবে অর্ডারটি গ্রহণ করতে চান?",
		EnterName:       "অনুগ্রহ করে আপনার নাম লিখুন:",
		EnterPhone:      "অনুগ্রহ করে আপনার ফোন নম্বর লিখুন:",
		EnterAddress:    "অনুগ্রহ করে আপনার ডেলিভারি ঠিকানা লিখুন:",
		EnterPickup:     "অনুগ্রহ করে পিকআপের সময় নির্বাচন করুন:",
		EnterTable:      "অনুগ্রহ করে নিচের তালিকা থেকে আপনার টেবিল নম্বর নির্বাচন করুন:",
		ConfirmDineIn:   "ডাইন-ইন",
		ConfirmTakeaway: "টেকওয়ে",
		ConfirmDelivery: "হোম ডেলিভারি",
		InvalidType:     "অনুগ্রহ করে নিচের অপশন থেকে একটি বৈধ ধরন নির্বাচন করুন।",
		Cancel:          "চেকআউট বাতিল",
		ConfirmTitle:    "সব তথ্য কি সঠিক আছে?",
		PlaceOrder:      "অর্ডার নিশ্চিত করুন",
		EditOrder:       "তথ্য পরিবর্তন করুন",
		InvalidConfirm:  "সামনে এগোতে 'অর্ডার নিশ্চিত করুন' বা পরিবর্তন করতে 'তথ্য পরিবর্তন করুন' নির্বাচন করুন।",
		UpdateOrder:     "আপডেট করুন",
		CancelEdit:      "বাতিল করুন",
		EditTitle:       "নিচে আপনার তথ্য আপডেট করুন:",
	},
}

// Steps returns the checkout prompt table for a language
func Steps(lang models.Language) StepText {
	if s, ok := checkoutSteps[lang]; ok {
		return s
	}
	return checkoutSteps[models.LangEN]
}

var labels = map[models.Language]map[string]string{
	models.LangEN: {
		"confirmed":     "Confirmed",
		"cooking":       "Cooking",
		"onWay":         "On Way",
		"delivered":     "Delivered",
		"ready":         "Ready",
		"pickedUp":      "Picked Up",
		"serving":       "Serving",
		"served":        "Served",
		"orderStatus":   "Order Status",
		"totalAmount":   "Total Amount",
		"pickupCounter": "Pickup at Counter",
		"tableService":  "Table Service",
		"deliveryType":  "Home Delivery",
		"takeawayType":  "Takeaway",
		"dineInType":    "Dine-in",
		"title":         "Order Review",
		"type":          "Order Type",
		"name":          "Name",
		"phone":         "Phone",
		"address":       "Address",
		"time":          "Pickup Time",
		"table":         "Table No.",
	},
	models.LangBN: {
		"confirmed":     "গৃহীত",
		"cooking":       "রান্না হচ্ছে",
		"onWay":         "পথে আছে",
		"delivered":     "সম্পন্ন",
		"ready":         "প্রস্তুত",
		"pickedUp":      "নেওয়া হয়েছে",
		"serving":       "পরিবেশন হচ্ছে",
		"served":        "পরিবেশিত",
		"orderStatus":   "অর্ডারের অবস্থা",
		"totalAmount":   "সর্বমোট",
		"pickupCounter": "কাউন্টার থেকে নিন",
		"tableService":  "টেবিল সার্ভিস",
		"deliveryType":  "হোম ডেলিভারি",
		"takeawayType":  "টেকওয়ে",
		"dineInType":    "ডাইন-ইন",
		"title":         "অর্ডারের বিবরণ",
		"type":          "অর্ডারের ধরন",
		"name":          "নাম",
		"phone":         "ফোন",
		"address":       "ঠিকানা",
		"time":          "সময়",
		"table":         "টেবিল নং",
	},
}

// Label resolves a UI label key for a language, empty when unknown
func Label(lang models.Language, key string) string {
	return labels[lang][key]
}
