package catalog

import "github.com/actuallystonmai/storefront-assistant/internal/domain"

// DefaultProducts is the demo storefront's built-in product list.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Wireless Bluetooth Headphones",
			Price:       99.99,
			Category:    "electronics",
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Stock:       15,
			Rating:      4.5,
			Tags:        []string{"audio", "wireless", "bluetooth"},
		},
		{
			ID:          2,
			Name:        "Smart Fitness Watch",
			Price:       249.99,
			Category:    "electronics",
			Description: "Advanced fitness tracking with heart rate monitor, GPS, and smartphone integration.",
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			Stock:       8,
			Rating:      4.3,
			Tags:        []string{"fitness", "smartwatch", "health"},
		},
		{
			ID:          3,
			Name:        "Premium Coffee Beans",
			Price:       24.99,
			Category:    "food",
			Description: "Single-origin arabica coffee beans, medium roast with chocolate notes.",
			Image:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=500",
			Stock:       25,
			Rating:      4.8,
			Tags:        []string{"coffee", "organic", "premium"},
		},
		{
			ID:          4,
			Name:        "Ergonomic Office Chair",
			Price:       299.99,
			Category:    "furniture",
			Description: "Comfortable ergonomic chair with lumbar support and adjustable height.",
			Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500",
			Stock:       5,
			Rating:      4.6,
			Tags:        []string{"office", "ergonomic", "furniture"},
		},
		{
			ID:          5,
			Name:        "Wireless Phone Charger",
			Price:       39.99,
			Category:    "electronics",
			Description: "Fast wireless charging pad compatible with all Qi-enabled devices.",
			Image:       "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=500",
			Stock:       20,
			Rating:      4.2,
			Tags:        []string{"charging", "wireless", "convenience"},
		},
		{
			ID:          6,
			Name:        "Organic Green Tea",
			Price:       18.99,
			Category:    "food",
			Description: "Premium organic green tea leaves with antioxidants and natural flavor.",
			Image:       "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=500",
			Stock:       30,
			Rating:      4.4,
			Tags:        []string{"tea", "organic", "health"},
		},
	}
}

// Default returns a catalog of DefaultProducts.
func Default() *Catalog {
	c, err := New(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return c
}
