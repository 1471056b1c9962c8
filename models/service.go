package models

// HomeService is a priced service record fetched from the marketplace API by
// slug. Immutable once fetched; only ID and Price participate in pricing.
type HomeService struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Price     float64 `json:"price"`
	Duration  string  `json:"duration,omitempty"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	About     string  `json:"about,omitempty"`
}
