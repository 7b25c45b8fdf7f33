package memory

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
)

//go:embed seed/products.json seed/categories.json
var seedFS embed.FS

// SeedProducts returns the bundled mock catalog.
func SeedProducts() ([]domain.Product, error) {
	var products []domain.Product
	if err := decodeSeed("seed/products.json", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func SeedCategories() ([]domain.Category, error) {
	var categories []domain.Category
	if err := decodeSeed("seed/categories.json", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func decodeSeed(name string, v any) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
