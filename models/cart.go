package models

// CartItem is a single service the user intends to book, identified by its
// marketplace slug. The cart is owned by the shopping component; the booking
// flow only reads it. Entries keep insertion order and are not deduplicated.
type CartItem struct {
	Slug string `json:"slug"`
}
