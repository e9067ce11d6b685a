package catalog

import "bistro-chat-api/models"

// Tables offered during Dine-in checkout
var Tables = []string{
	"Table 1 (Window)", "Table 2 (Window)", "Table 3", "Table 4",
	"Table 5 (Center)", "Table 6 (Center)", "Table 7", "Table 8",
	"Table 9 (Family)", "Table 10 (Family)",
}

var TablesBN = []string{
	"টেবিল ১ (জানালা)", "টেবিল ২ (জানালা)", "টেবিল ৩", "টেবিল ৪",
	"টেবিল ৫ (মাঝখানে)", "টেবিল ৬ (মাঝখানে)", "টেবিল ৭", "টেবিল ৮",
	"টেবিল ৯ (ফ্যামিলি)", "টেবিল ১০ (ফ্যামিলি)",
}

// TablesFor returns the table list for a language
func TablesFor(lang models.Language) []string {
	if lang == models.LangBN {
		return TablesBN
	}
	return Tables
}

var Branches = []models.Branch{
	{
		ID:        "gulshan",
		Name:      "Gulshan 1",
		NameBN:    "গুলশান ১",
		Address:   "House 12, Road 123, Gulshan 1, Dhaka",
		AddressBN: "বাড়ি ১২, রোড ১২৩, গুলশান ১, ঢাকা",
		Phone:     "+880 1711-000001",
		Hours:     "10:00 AM - 11:00 PM",
		HoursBN:   "সকাল ১০:০০ - রাত ১১:০০",
	},
	{
		ID:        "dhanmondi",
		Name:      "Dhanmondi",
		NameBN:    "ধানমন্ডি",
		Address:   "Satmasjid Road, House 45, Dhanmondi, Dhaka",
		AddressBN: "সাতমসজিদ রোড, বাড়ি ৪৫, ধানমন্ডি, ঢাকা",
		Phone:     "+880 1711-000002",
		Hours:     "11:00 AM - 10:30 PM",
		HoursBN:   "সকাল ১১:০০ - রাত ১০:৩০",
	},
	{
		ID:        "uttara",
		Name:      "Uttara",
		NameBN:    "উত্তরা",
		Address:   "Sector 7, Road 4, House 11, Uttara, Dhaka",
		AddressBN: "সেক্টর ৭, রোড ৪, বাড়ি ১১, উত্তরা, ঢাকা",
		Phone:     "+880 1711-000003",
		Hours:     "10:00 AM - 11:00 PM",
		HoursBN:   "সকাল ১০:০০ - রাত ১১:০০",
	},
	{
		ID:        "chittagong",
		Name:      "GEC Circle",
		NameBN:    "জিইসি মোড়",
		Address:   "CDA Avenue, GEC Circle, Chittagong",
		AddressBN: "সিডিএ এভিনিউ, জিইসি মোড়, চট্টগ্রাম",
		Phone:     "+880 1811-000004",
		Hours:     "10:00 AM - 10:00 PM",
		HoursBN:   "সকাল ১০:০০ - রাত ১০:০০",
	},
}

var Menu = []models.MenuCategory{
	{
		ID:       "burgers",
		Name:     "Burgers",
		NameBN:   "বার্গার",
		Keywords: []string{"burger", "sandwich", "baragar", "bun", "patty", "বার্গার", "স্যান্ডউইচ"},
		Items: []models.MenuItem{
			{
				ID: "b1", Name: "Naga Blast Burger", NameBN: "নাগা ব্লাস্ট বার্গার", Price: 350,
				Description:   "Spicy naga chili sauce with beef patty.",
				DescriptionBN: "বিফ প্যাটির সাথে স্পাইসি নাগা মরিচের সস।",
				Category:      "Burgers", CategoryBN: "বার্গার",
				Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&q=80",
			},
			{
				ID: "b2", Name: "Classic Beef", NameBN: "ক্লাসিক বিফ", Price: 280,
				Description:   "Juicy beef patty with cheese and lettuce.",
				DescriptionBN: "চিজ এবং লেটুস সহ জুসি বিফ প্যাটি।",
				Category:      "Burgers", CategoryBN: "বার্গার",
				Image: "https://images.unsplash.com/photo-1550547660-d9450f859349?w=500&q=80",
			},
			{
				ID: "b3", Name: "Crispy Chicken", NameBN: "ক্রিস্পি চিকেন", Price: 250,
				Description:   "Fried chicken fillet with mayo.",
				DescriptionBN: "মেওনেজ সহ ফ্রাইড চিকেন ফিলেট।",
				Category:      "Burgers", CategoryBN: "বার্গার",
				Image: "https://images.unsplash.com/photo-1615297928064-24977384d0f4?w=500&q=80",
			},
		},
	},
	{
		ID:       "rice",
		Name:     "Rice Bowls",
		NameBN:   "রাইস বোল",
		Keywords: []string{"rice", "bowl", "biryani", "tehari", "khichuri", "lunch", "dinner", "ভাত", "বিরিয়ানি", "খিচুড়ি"},
		Items: []models.MenuItem{
			{
				ID: "r1", Name: "Beef Tehari", NameBN: "বিফ তেহারি", Price: 220,
				Description:   "Traditional aromatic rice with beef chunks.",
				DescriptionBN: "গরুর মাংসের টুকরো সহ ঐতিহ্যবাহী সুগন্ধি চাল।",
				Category:      "Rice Bowls", CategoryBN: "রাইস বোল",
				Image: "https://images.unsplash.com/photo-1626804475297-411d8634c4f8?w=500&q=80",
			},
			{
				ID: "r2", Name: "Chicken Khichuri", NameBN: "চিকেন খিচুড়ি", Price: 200,
				Description:   "Roasted chicken with spicy khichuri.",
				DescriptionBN: "স্পাইসি খিচুড়ির সাথে রোস্ট করা মুরগি।",
				Category:      "Rice Bowls", CategoryBN: "রাইস বোল",
				Image: "https://images.unsplash.com/photo-1596797038530-2c107229654b?w=500&q=80",
			},
			{
				ID: "r3", Name: "BBQ Rice Bowl", NameBN: "বারবিকিউ রাইস বোল", Price: 280,
				Description:   "Fried rice with BBQ chicken piece.",
				DescriptionBN: "বারবিকিউ মুরগির সাথে ফ্রাইড রাইস।",
				Category:      "Rice Bowls", CategoryBN: "রাইস বোল",
				Image: "https://images.unsplash.com/photo-1534422298391-e4f8c172dddb?w=500&q=80",
			},
		},
	},
	{
		ID:       "pasta",
		Name:     "Pasta",
		NameBN:   "পাস্তা",
		Keywords: []string{"pasta", "spaghetti", "noodles", "chowmein", "italian", "পাস্তা", "নুডলস"},
		Items: []models.MenuItem{
			{
				ID: "p1", Name: "Creamy Chicken Pasta", NameBN: "ক্রিমি চিকেন পাস্তা", Price: 320,
				Description:   "Penne pasta in rich white sauce with grilled chicken.",
				DescriptionBN: "গ্রিলড চিকেন এবং হোয়াইট সস সহ পেনে পাস্তা।",
				Category:      "Pasta", CategoryBN: "পাস্তা",
				Image: "https://images.unsplash.com/photo-1555949258-eb67b1ef0ceb?w=500&q=80",
			},
			{
				ID: "p2", Name: "Oven Baked Pasta", NameBN: "ওভেন বেকড পাস্তা", Price: 380,
				Description:   "Loaded with cheese, beef, and mushrooms.",
				DescriptionBN: "চিজ, বিফ এবং মাশরুম দিয়ে তৈরি।",
				Category:      "Pasta", CategoryBN: "পাস্তা",
				Image: "https://images.unsplash.com/photo-1560035071-79b8823521b4?w=500&q=80",
			},
		},
	},
	{
		ID:       "sides",
		Name:     "Sides",
		NameBN:   "সাইডস",
		Keywords: []string{"sides", "fries", "wings", "starter", "appetizer", "snacks", "nachos", "ফ্রেঞ্চ", "ফ্রাই", "উইংস"},
		Items: []models.MenuItem{
			{
				ID: "s1", Name: "French Fries", NameBN: "ফ্রেঞ্চ ফ্রাই", Price: 120,
				Description:   "Crispy golden potato fries.",
				DescriptionBN: "ক্রিস্পি গোল্ডেন পটেটো ফ্রাই।",
				Category:      "Sides", CategoryBN: "সাইডস",
				Image: "https://images.unsplash.com/photo-1630384060421-a4323ceca041?w=500&q=80",
			},
			{
				ID: "s2", Name: "Chicken Wings (6pcs)", NameBN: "চিকেন উইংস (৬ পিস)", Price: 250,
				Description:   "Spicy BBQ glazed chicken wings.",
				DescriptionBN: "স্পাইসি বারবিকিউ চিকেন উইংস।",
				Category:      "Sides", CategoryBN: "সাইডস",
				Image: "https://images.unsplash.com/photo-1527477396000-64ca9c0016cb?w=500&q=80",
			},
			{
				ID: "s3", Name: "Garlic Mushrooms", NameBN: "গার্লিক মাশরুম", Price: 200,
				Description:   "Sautéed mushrooms with garlic and butter.",
				DescriptionBN: "রসুন এবং মাখন দিয়ে ভাজা মাশরুম।",
				Category:      "Sides", CategoryBN: "সাইডস",
				Image: "https://images.unsplash.com/photo-1588644458315-74895ee91931?w=500&q=80",
			},
		},
	},
	{
		ID:       "desserts",
		Name:     "Desserts",
		NameBN:   "ডেজার্ট",
		Keywords: []string{"dessert", "sweet", "cake", "brownie", "pudding", "ice cream", "mishti", "মিষ্টি", "ডেজার্ট", "কেক"},
		Items: []models.MenuItem{
			{
				ID: "ds1", Name: "Chocolate Brownie", NameBN: "চকলেট ব্রাউনি", Price: 150,
				Description:   "Fudgy brownie topped with chocolate sauce.",
				DescriptionBN: "চকলেট সস টপিংসহ ফাজি ব্রাউনি।",
				Category:      "Desserts", CategoryBN: "ডেজার্ট",
				Image: "https://images.unsplash.com/photo-1564355808539-22fda35bed7e?w=500&q=80",
			},
			{
				ID: "ds2", Name: "Caramel Pudding", NameBN: "ক্যারামেল পুডিং", Price: 100,
				Description:   "Smooth and creamy caramel custard.",
				DescriptionBN: "স্মুথ এবং ক্রিমি ক্যারামেল কাস্টার্ড।",
				Category:      "Desserts", CategoryBN: "ডেজার্ট",
				Image: "https://images.unsplash.com/photo-1599320623696-f36f0017a419?w=500&q=80",
			},
		},
	},
	{
		ID:       "drinks",
		Name:     "Drinks",
		NameBN:   "পানীয়",
		Keywords: []string{"drink", "juice", "coffee", "water", "coke", "beverage", "tea", "পানীয়", "জুস", "কফি"},
		Items: []models.MenuItem{
			{
				ID: "d1", Name: "Mint Lemonade", NameBN: "মিন্ট লেমোনেড", Price: 120,
				Category: "Drinks", CategoryBN: "পানীয়",
				Image: "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?w=500&q=80",
			},
			{
				ID: "d2", Name: "Cold Coffee", NameBN: "কোল্ড কফি", Price: 180,
				Category: "Drinks", CategoryBN: "পানীয়",
				Image: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=500&q=80",
			},
			{
				ID: "d3", Name: "Mango Lassi", NameBN: "ম্যাঙ্গো লাচ্ছি", Price: 150,
				Category: "Drinks", CategoryBN: "পানীয়",
				Image: "https://images.unsplash.com/photo-1546171753-97d7676e4602?w=500&q=80",
			},
		},
	},
}

// FindCategory looks a category up by its ID
func FindCategory(id string) (models.MenuCategory, bool) {
	for _, cat := range Menu {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.MenuCategory{}, false
}

// FindItem looks a menu item up by its ID across all categories
func FindItem(id string) (models.MenuItem, bool) {
	for _, cat := range Menu {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return models.MenuItem{}, false
}

// AllItems flattens every category into one list, menu order preserved
func AllItems() []models.MenuItem {
	var items []models.MenuItem
	for _, cat := range Menu {
		items = append(items, cat.Items...)
	}
	return items
}

// CategoryOptions returns one quick reply per category
func CategoryOptions(lang models.Language) []models.Option {
	opts := make([]models.Option, 0, len(Menu))
	for _, cat := range Menu {
		opts = append(opts, models.Option{ID: cat.ID, Label: cat.LocalizedName(lang)})
	}
	return opts
}

// FindBranch looks a branch up by its ID
func FindBranch(id string) (models.Branch, bool) {
	for _, b := range Branches {
		if b.ID == id {
			return b, true
		}
	}
	return models.Branch{}, false
}
