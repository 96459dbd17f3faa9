package domain

type Category string

const (
	CategoryFacelessArt Category = "faceless-art"
	CategoryCalligraphy Category = "calligraphy"
	CategoryHampers     Category = "hampers"
	CategoryInvitations Category = "invitations"
	CategoryWallArt     Category = "wall-art"
	CategoryNameBoards  Category = "name-boards"
	CategoryGifts       Category = "gifts"
)

// Product is an immutable catalog entry. Prices are whole rupees.
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Category      Category      `json:"category"`
	Price         int           `json:"price"`
	Images        []string      `json:"images"`
	Sizes         []SizeOption  `json:"sizes"`
	Colors        []ColorOption `json:"colors"`
	RequiresText  bool          `json:"requiresText"`
	RequiresImage bool          `json:"requiresImage"`
	MaxImages     int           `json:"maxImages,omitempty"`
	Featured      bool          `json:"featured"`
	Tags          []string      `json:"tags,omitempty"`
}

type SizeOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Dimensions    string `json:"dimensions"`
	PriceModifier int    `json:"priceModifier"`
}

type ColorOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type Offer struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	DiscountPercentage int    `json:"discountPercentage,omitempty"`
	Image              string `json:"image,omitempty"`
}

// Size returns the size option with the given id, if the product has it.
func (p Product) Size(id string) (SizeOption, bool) {
	for _, s := range p.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return SizeOption{}, false
}

// Color returns the color option with the given id, if the product has it.
func (p Product) Color(id string) (ColorOption, bool) {
	for _, c := range p.Colors {
		if c.ID == id {
			return c, true
		}
	}
	return ColorOption{}, false
}
