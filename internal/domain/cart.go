package domain

// CartLine references a catalog product by id, as sent by a client.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CartQuote struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Subtotal  float64    `json:"subtotal"`
	Shipping  float64    `json:"shipping"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
}
