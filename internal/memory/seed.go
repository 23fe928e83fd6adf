package memory

import (
	"github.com/brewclub/storefront/internal/catalog"
	"github.com/brewclub/storefront/internal/tenant"
)

// Demo catalog for development and tests. Prices are minor currency units.

var (
	catCoffee   = catalog.Category{ID: "cat_coffee", Name: "Coffee", Slug: "coffee", SortOrder: 0, IconURL: "https://cdn.brewclub.dev/icons/coffee.png"}
	catFood     = catalog.Category{ID: "cat_food", Name: "Food", Slug: "food", SortOrder: 1, IconURL: "https://cdn.brewclub.dev/icons/food.png"}
	catDesserts = catalog.Category{ID: "cat_desserts", Name: "Desserts", Slug: "desserts", SortOrder: 2, IconURL: "https://cdn.brewclub.dev/icons/desserts.png"}
	catTea      = catalog.Category{ID: "cat_tea", Name: "Tea", Slug: "tea", SortOrder: 3, IconURL: "https://cdn.brewclub.dev/icons/tea.png"}
	catSets     = catalog.Category{ID: "cat_sets", Name: "Sets", Slug: "sets", SortOrder: 0, IconURL: "https://cdn.brewclub.dev/icons/sets.png"}
)

var milkAndSyrupAddons = []catalog.Addon{
	{ID: "s1", Name: "Caramel syrup", Price: 3000, Group: "Syrups"},
	{ID: "s2", Name: "Vanilla syrup", Price: 3000, Group: "Syrups"},
	{ID: "m1", Name: "Coconut milk", Price: 5000, Group: "Milk"},
	{ID: "m2", Name: "Almond milk", Price: 5000, Group: "Milk"},
	{ID: "t1", Name: "Cinnamon", Price: 0, Group: "Toppings"},
}

var productPool = map[string]catalog.Product{
	"espresso": {
		ID: "prod_espresso", CategoryID: "cat_coffee", Name: "Espresso",
		Description: "Rich taste and aroma", Price: 15000,
		ImageURL: "https://cdn.brewclub.dev/products/espresso.jpg", IsAvailable: true,
		Subcategory: "Black coffee",
		Addons: []catalog.Addon{
			{ID: "a_sugar", Name: "Sugar", Price: 0, Group: "Extras"},
			{ID: "a_water", Name: "Iced water", Price: 0, Group: "Extras"},
		},
	},
	"cap": {
		ID: "prod_cap", CategoryID: "cat_coffee", Name: "Cappuccino",
		Description: "The classic", Price: 18000,
		ImageURL: "https://cdn.brewclub.dev/products/cappuccino.jpg", IsAvailable: true,
		Subcategory: "Milk coffee",
		Addons:      milkAndSyrupAddons,
	},
	"latte": {
		ID: "prod_latte", CategoryID: "cat_coffee", Name: "Latte",
		Description: "Lots of milk", Price: 20000,
		ImageURL: "https://cdn.brewclub.dev/products/latte.jpg", IsAvailable: true,
		Subcategory: "Milk coffee",
		Addons:      milkAndSyrupAddons,
	},
	"sandwich": {
		ID: "prod_sandwich", CategoryID: "cat_food", Name: "Chicken sandwich",
		Description: "Fresh bread, sous-vide chicken", Price: 25000,
		ImageURL: "https://cdn.brewclub.dev/products/sandwich.jpg", IsAvailable: true,
	},
	"croissant": {
		ID: "prod_croissant", CategoryID: "cat_desserts", Name: "Croissant",
		Description: "Fresh bakery", Price: 15000,
		ImageURL: "https://cdn.brewclub.dev/products/croissant.jpg", IsAvailable: true,
	},
	"cheesecake": {
		ID: "prod_cheesecake", CategoryID: "cat_desserts", Name: "New York cheesecake",
		Description: "Delicate curd taste", Price: 28000,
		ImageURL: "https://cdn.brewclub.dev/products/cheesecake.jpg", IsAvailable: true,
	},
	"tea_green": {
		ID: "prod_tea_green", CategoryID: "cat_tea", Name: "Green tea",
		Description: "Sencha", Price: 12000,
		ImageURL: "https://cdn.brewclub.dev/products/green-tea.jpg", IsAvailable: true,
	},
	"set_breakfast": {
		ID: "prod_set_1", CategoryID: "cat_sets", Name: "Champion breakfast",
		Description: "Cappuccino + croissant + toast", Price: 55000,
		ImageURL: "https://cdn.brewclub.dev/products/breakfast-set.jpg", IsAvailable: true,
	},
}

func pooled(names ...string) []catalog.Product {
	products := make([]catalog.Product, 0, len(names))
	for _, name := range names {
		products = append(products, productPool[name])
	}
	return products
}

func seedCatalog(r *CatalogRepo) {
	r.shops = []catalog.Shop{
		{
			ID: "shop_1", Name: "Kommunistichesky 50", Description: "(Chizhik)",
			Address: "Kommunistichesky ave, 50",
			LogoURL: "https://cdn.brewclub.dev/shops/shop1-logo.jpg",
			BannerURL: "https://cdn.brewclub.dev/shops/shop1-banner.jpg",
			Currency: "RUB", ThemeColor: "#38bdf8",
			OpeningHours: "Mon - Sun: 08:00 - 22:00",
		},
		{
			ID: "shop_2", Name: "Kommunistichesky 119", Description: "(Vitim)",
			Address: "Kommunistichesky ave, 119",
			LogoURL: "https://cdn.brewclub.dev/shops/shop2-logo.jpg",
			BannerURL: "https://cdn.brewclub.dev/shops/shop2-banner.jpg",
			Currency: "RUB", ThemeColor: "#38bdf8",
			OpeningHours: "Mon - Sun: 09:00 - 23:00",
		},
		{
			ID: "shop_3", Name: "Ushayka 34", Description: "(Miramix)",
			Address: "Ushayka river embankment, 34",
			LogoURL: "https://cdn.brewclub.dev/shops/shop3-logo.jpg",
			BannerURL: "https://cdn.brewclub.dev/shops/shop3-banner.jpg",
			Currency: "RUB", ThemeColor: "#38bdf8",
			IsClosed: true, OpeningHours: "Mon - Sun: 10:00 - 20:00",
		},
		{
			ID: tenant.DeliveryShopID, Name: "Tomsk", Description: "Delivery",
			Address: "Central warehouse",
			LogoURL: "https://cdn.brewclub.dev/shops/delivery-logo.jpg",
			BannerURL: "https://cdn.brewclub.dev/shops/delivery-banner.jpg",
			Currency: "RUB", ThemeColor: "#38bdf8",
			OpeningHours: "Around the clock",
		},
	}

	// Shop 2 is a bakery and runs the cappuccino at a higher price.
	shop2Cap := productPool["cap"]
	shop2Cap.Price = 19000

	r.menus["shop_1"] = shopMenu{
		categories: []catalog.Category{catCoffee, catFood},
		products:   pooled("espresso", "cap", "latte", "sandwich"),
	}
	r.menus["shop_2"] = shopMenu{
		categories: []catalog.Category{catDesserts, catTea, catCoffee},
		products: append(
			pooled("croissant", "cheesecake", "tea_green"),
			shop2Cap,
		),
	}
	r.menus["shop_3"] = shopMenu{
		categories: []catalog.Category{catCoffee},
		products:   pooled("cap", "latte"),
	}
	r.menus[tenant.DeliveryShopID] = shopMenu{
		categories: []catalog.Category{catSets, catCoffee, catFood, catDesserts},
		products:   pooled("set_breakfast", "espresso", "cap", "sandwich", "cheesecake"),
	}

	r.banners = []catalog.Banner{
		{
			ID: "ban_1", Title: "Business lunch",
			Description: "Every Monday, 12:00 - 15:00",
			ImageURL:    "https://cdn.brewclub.dev/banners/lunch.jpg",
			TextColor:   "#ffffff",
		},
		{
			ID: "ban_2", Title: "Coffee to go -20%",
			Description: "When ordering in the app, 8:00 - 10:00",
			ImageURL:    "https://cdn.brewclub.dev/banners/coffee-to-go.jpg",
			TextColor:   "#ffffff",
		},
	}
}
