// Package catalog holds the shop's static product and offer data. Entries
// are fixed at deploy time and never mutated at runtime.
package catalog

import "github.com/harichselvamc/merakiartist/internal/domain"

type Catalog struct {
	products []domain.Product
	offers   []domain.Offer
	byID     map[string]domain.Product
}

func New() *Catalog {
	c := &Catalog{products: products, offers: offers, byID: make(map[string]domain.Product, len(products))}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

func (c *Catalog) All() []domain.Product {
	return c.products
}

func (c *Catalog) ByID(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Featured() []domain.Product {
	out := []domain.Product{}
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ByCategory(cat domain.Category) []domain.Product {
	out := []domain.Product{}
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Offers() []domain.Offer {
	return c.offers
}

var products = []domain.Product{
	{
		ID:          "invitation-01",
		Name:        "Custom Invitation Cards",
		Description: "Elegant and personalized invitation cards for weddings, engagements, and special occasions. Each design is carefully crafted to reflect your unique style.",
		Category:    domain.CategoryInvitations,
		Price:       1200,
		Images: []string{
			"/images/admin_product/invitation2.png",
			"/images/admin_product/invitation.png",
			"/images/admin_product/invitation1.png",
		},
		Sizes: []domain.SizeOption{
			{ID: "standard", Name: "Standard", Dimensions: `5" x 7"`, PriceModifier: 0},
			{ID: "premium", Name: "Premium", Dimensions: `6" x 8"`, PriceModifier: 300},
			{ID: "luxury", Name: "Luxury", Dimensions: `7" x 9"`, PriceModifier: 600},
		},
		Colors: []domain.ColorOption{
			{ID: "ivory", Name: "Ivory", Hex: "#FFFFF0"},
			{ID: "gold", Name: "Gold", Hex: "#FFD700"},
			{ID: "rose-gold", Name: "Rose Gold", Hex: "#E0BFB8"},
		},
		RequiresText: true,
		Featured:     true,
		Tags:         []string{"wedding invitations", "engagement cards", "special occasion"},
	},
	{
		ID:          "acrylic-01",
		Name:        "Acrylic on Canvas Art",
		Description: "A4 size acrylic paintings on premium canvas sheet with elegant frame. Custom designs available for home decor or special gifts.",
		Category:    domain.CategoryWallArt,
		Price:       2500,
		Images: []string{
			"/images/admin_product/acrylic.png",
			"/images/admin_product/acrylic1.png",
		},
		Sizes: []domain.SizeOption{
			{ID: "a4", Name: "A4", Dimensions: `8.3" x 11.7"`, PriceModifier: 0},
			{ID: "a3", Name: "A3", Dimensions: `11.7" x 16.5"`, PriceModifier: 800},
		},
		RequiresImage: true,
		MaxImages:     1,
		Featured:      true,
		Tags:          []string{"home decor", "acrylic painting", "custom art"},
	},
	{
		ID:          "nameboard-01",
		Name:        "Arabic Name Board",
		Description: "Elegant acrylic name boards perfect for weddings, home decor, or as thoughtful gifts. Custom Arabic calligraphy with your desired names.",
		Category:    domain.CategoryNameBoards,
		Price:       1800,
		Images:      []string{"/images/admin_product/arabicnameboard.png"},
		Sizes: []domain.SizeOption{
			{ID: "small", Name: "Small", Dimensions: `10" x 12"`, PriceModifier: 0},
			{ID: "medium", Name: "Medium", Dimensions: `12" x 16"`, PriceModifier: 500},
			{ID: "large", Name: "Large", Dimensions: `16" x 20"`, PriceModifier: 900},
		},
		Colors: []domain.ColorOption{
			{ID: "gold", Name: "Gold", Hex: "#D4AF37"},
			{ID: "silver", Name: "Silver", Hex: "#C0C0C0"},
			{ID: "rose-gold", Name: "Rose Gold", Hex: "#E0BFB8"},
		},
		RequiresText: true,
		Featured:     true,
		Tags:         []string{"arabic name boards", "wedding gift", "name plate", "home decor"},
	},
	{
		ID:          "hijab-bouquet-01",
		Name:        "Hijab Bouquet",
		Description: "Beautifully crafted hijab bouquets - a unique and thoughtful gift for special occasions, Ramadan, or Eid celebrations.",
		Category:    domain.CategoryGifts,
		Price:       1500,
		Images:      []string{"/images/admin_product/hijab bouquets.png"},
		Sizes: []domain.SizeOption{
			{ID: "standard", Name: "Standard", Dimensions: `12" arrangement`, PriceModifier: 0},
			{ID: "premium", Name: "Premium", Dimensions: `16" arrangement`, PriceModifier: 500},
		},
		Colors: []domain.ColorOption{
			{ID: "pink", Name: "Pink", Hex: "#FFC0CB"},
			{ID: "white", Name: "White", Hex: "#FFFFFF"},
			{ID: "blue", Name: "Blue", Hex: "#0000FF"},
		},
		Featured: true,
		Tags:     []string{"hijab bouquets", "Ramadan gifts", "for her", "Eid gifts"},
	},
	{
		ID:          "engagement-hamper-01",
		Name:        "Engagement Hamper",
		Description: "Luxurious engagement hampers filled with carefully selected items for the perfect pre-wedding celebration. Customizable contents available.",
		Category:    domain.CategoryHampers,
		Price:       3500,
		Images: []string{
			"/images/admin_product/engamenthampers.png",
			"/images/admin_product/engamenthampers1.png",
			"/images/admin_product/engamenthampers2.png",
			"/images/admin_product/engamenthampers3.png",
			"/images/admin_product/engamenthampers4.png",
		},
		Sizes: []domain.SizeOption{
			{ID: "standard", Name: "Standard", Dimensions: "Medium Basket", PriceModifier: 0},
			{ID: "premium", Name: "Premium", Dimensions: "Large Basket", PriceModifier: 1000},
			{ID: "luxury", Name: "Luxury", Dimensions: "XL Basket", PriceModifier: 2000},
		},
		RequiresText: true,
		Featured:     true,
		Tags:         []string{"engagement hampers", "bridal gifts", "wedding hampers"},
	},
	{
		ID:          "vanity-hamper-01",
		Name:        "Vanity Trolley Hamper",
		Description: "Stylish vanity trolley hampers perfect for him - a thoughtful gift containing grooming essentials in a beautiful presentation.",
		Category:    domain.CategoryHampers,
		Price:       2800,
		Images:      []string{"/images/admin_product/vanity trooley.png"},
		Sizes: []domain.SizeOption{
			{ID: "standard", Name: "Standard", Dimensions: "Small Trolley", PriceModifier: 0},
			{ID: "premium", Name: "Premium", Dimensions: "Medium Trolley", PriceModifier: 800},
		},
		Colors: []domain.ColorOption{
			{ID: "black", Name: "Black", Hex: "#000000"},
			{ID: "brown", Name: "Brown", Hex: "#964B00"},
		},
		Featured: true,
		Tags:     []string{"vanity trolley", "for him", "grooming gifts"},
	},
	{
		ID:          "calligraphy-01",
		Name:        "Arabic Calligraphy Art",
		Description: "Hand-painted Arabic calligraphy on canvas sheet with A3 frame. Custom verses, names, or quotes available in various styles.",
		Category:    domain.CategoryCalligraphy,
		Price:       2200,
		Images: []string{
			"/images/admin_product/arabic calligraphy.png",
			"/images/admin_product/arabic calligraphy (2).png",
		},
		Sizes: []domain.SizeOption{
			{ID: "a3", Name: "A3", Dimensions: `11.7" x 16.5"`, PriceModifier: 0},
			{ID: "a2", Name: "A2", Dimensions: `16.5" x 23.4"`, PriceModifier: 1000},
		},
		Colors: []domain.ColorOption{
			{ID: "gold", Name: "Gold", Hex: "#D4AF37"},
			{ID: "black", Name: "Black", Hex: "#000000"},
			{ID: "blue", Name: "Blue", Hex: "#0000FF"},
		},
		RequiresText: true,
		Featured:     true,
		Tags:         []string{"arabic calligraphy", "islamic art", "hand painted"},
	},
	{
		ID:          "faceless-01",
		Name:        "Faceless Portrait",
		Description: "Unique faceless portraits that capture the essence of your special moments without facial details. Perfect for modest art lovers.",
		Category:    domain.CategoryFacelessArt,
		Price:       3000,
		Images: []string{
			"/images/admin_product/faceless portraits (1).png",
			"/images/admin_product/faceless portraits (2).png",
			"/images/admin_product/faceless portraits (3).png",
			"/images/admin_product/faceless portraits (4).png",
			"/images/admin_product/faceless portraits (5).png",
			"/images/admin_product/faceless portraits (6).png",
		},
		Sizes: []domain.SizeOption{
			{ID: "small", Name: "Small", Dimensions: `8" x 10"`, PriceModifier: 0},
			{ID: "medium", Name: "Medium", Dimensions: `12" x 16"`, PriceModifier: 800},
			{ID: "large", Name: "Large", Dimensions: `16" x 20"`, PriceModifier: 1500},
		},
		Colors: []domain.ColorOption{
			{ID: "pastel", Name: "Pastel", Hex: "#F8C8DC"},
			{ID: "vibrant", Name: "Vibrant", Hex: "#FF5733"},
			{ID: "monochrome", Name: "Monochrome", Hex: "#36454F"},
		},
		RequiresImage: true,
		MaxImages:     2,
		Featured:      true,
		Tags:          []string{"faceless art", "custom portraits", "modest art"},
	},
	{
		ID:           "custom-gift-01",
		Name:         "Custom Gift Package",
		Description:  "Completely personalized gift packages tailored to your recipient's preferences. We work with you to create the perfect thoughtful gift.",
		Category:     domain.CategoryGifts,
		Price:        2000,
		Images:       []string{"/images/admin_product/custom gifts.png"},
		RequiresText: true,
		Featured:     true,
		Tags:         []string{"custom gifts", "personalized presents", "thoughtful gifting"},
	},
}

var offers = []domain.Offer{
	{
		ID:                 "early-bird",
		Title:              "Early Bird Special",
		Description:        "Get 10% off on your first order when you place it 10 days in advance.",
		DiscountPercentage: 10,
		Image:              "https://images.pexels.com/photos/5778899/pexels-photo-5778899.jpeg",
	},
	{
		ID:                 "bundle-deal",
		Title:              "Bundle & Save",
		Description:        "Order 3 or more Faceless Artworks and get 15% off on your total order.",
		DiscountPercentage: 15,
		Image:              "https://images.pexels.com/photos/4207791/pexels-photo-4207791.jpeg",
	},
	{
		ID:          "seasonal-special",
		Title:       "Wedding Season Special",
		Description: "Special prices on all wedding invitations and Nikkah Nama designs.",
		Image:       "https://images.pexels.com/photos/5409757/pexels-photo-5409757.jpeg",
	},
}
