package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Size struct {
	Name     string          `json:"name"`
	Servings int             `json:"servings"`
	Price    decimal.Decimal `json:"price"`
}

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Sizes        []Size          `json:"sizes"`
	Flavors      []string        `json:"flavors"`
	Images       []string        `json:"images"`
	Customizable bool            `json:"customizable"`

	// Rating and CreatedAt back the "rating" and "newest" sort keys.
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

func (p Product) HasFlavor(flavor string) bool {
	for _, f := range p.Flavors {
		if f == flavor {
			return true
		}
	}
	return false
}

// SizeByName returns the size option the customer picked on the product page.
func (p Product) SizeByName(name string) (Size, bool) {
	for _, s := range p.Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}

// Clone returns a deep copy so callers cannot alias catalog slices.
func (p Product) Clone() Product {
	c := p
	c.Sizes = append([]Size(nil), p.Sizes...)
	c.Flavors = append([]string(nil), p.Flavors...)
	c.Images = append([]string(nil), p.Images...)
	return c
}

// Flavors returns every flavor offered across products, in first-seen order.
func Flavors(products []Product) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range products {
		for _, f := range p.Flavors {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

// Matches is the storefront search predicate: case-insensitive substring match on
// name, description or any flavor.
func (p Product) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, f := range p.Flavors {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
