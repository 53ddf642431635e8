package domain

// Listing is a marketplace catalog entry. The catalog collection carries a
// collection-level schema version rather than per-record versions.
type Listing struct {
	ListingID   string   `json:"listingId"`
	Breed       string   `json:"breed"`
	Price       int64    `json:"price"`
	AgeMonths   int      `json:"ageMonths"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
