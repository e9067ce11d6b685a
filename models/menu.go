package models

// MenuItem is immutable catalog data. Prices are integer taka.
type MenuItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameBN        string `json:"name_bn,omitempty"`
	Price         int    `json:"price"`
	Description   string `json:"description,omitempty"`
	DescriptionBN string `json:"description_bn,omitempty"`
	Category      string `json:"category"`
	CategoryBN    string `json:"category_bn,omitempty"`
	Image         string `json:"image"`
}

// MenuCategory groups items and carries the free-text keywords the
// fuzzy matcher tests user input against.
type MenuCategory struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	NameBN   string     `json:"name_bn,omitempty"`
	Keywords []string   `json:"keywords,omitempty"`
	Items    []MenuItem `json:"items"`
}

// LocalizedName returns the category name for the active language
func (c MenuCategory) LocalizedName(lang Language) string {
	if lang == LangBN && c.NameBN != "" {
		return c.NameBN
	}
	return c.Name
}

// LocalizedName returns the item name for the active language
func (m MenuItem) LocalizedName(lang Language) string {
	if lang == LangBN && m.NameBN != "" {
		return m.NameBN
	}
	return m.Name
}

type Branch struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameBN    string `json:"name_bn,omitempty"`
	Address   string `json:"address"`
	AddressBN string `json:"address_bn,omitempty"`
	Phone     string `json:"phone"`
	Hours     string `json:"hours"`
	HoursBN   string `json:"hours_bn,omitempty"`
}

// LocalizedName returns the branch name for the active language
func (b Branch) LocalizedName(lang Language) string {
	if lang == LangBN && b.NameBN != "" {
		return b.NameBN
	}
	return b.Name
}

// CartItem is a menu item plus a quantity, always >= 1. Dropping to
// zero requires removal instead.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
