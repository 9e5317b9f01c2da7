package catalog

import (
	"fmt"
	"os"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"gopkg.in/yaml.v3"
)

type fileSpec struct {
	Products []domain.Product `yaml:"products"`
}

// LoadFile reads a YAML catalog of the form `products: [...]`.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(b)
}

func Parse(data []byte) (*Catalog, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, p := range spec.Products {
		if p.Price < 0 || p.Stock < 0 {
			return nil, fmt.Errorf("product %d: negative price or stock", p.ID)
		}
	}
	return New(spec.Products)
}
