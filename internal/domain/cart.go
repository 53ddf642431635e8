package domain

// CartItem is one line item in the cart. The same listing may appear more
// than once: every add is a new line, and removal targets all lines that
// share a listing id.
type CartItem struct {
	ListingID string `json:"listingId"`
	Breed     string `json:"breed"`
	Price     int64  `json:"price"`
	Image     string `json:"image,omitempty"`
	AgeMonths int    `json:"ageMonths,omitempty"`
}
