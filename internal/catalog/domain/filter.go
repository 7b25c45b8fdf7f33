package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type PriceRange int

const (
	PriceAny PriceRange = iota
	PriceUnder50
	Price50To100
	Price100To200
	Price200Plus
)

var priceRangeNames = map[PriceRange]string{
	PriceAny:      "",
	PriceUnder50:  "0-50",
	Price50To100:  "50-100",
	Price100To200: "100-200",
	Price200Plus:  "200+",
}

var (
	fifty       = decimal.NewFromInt(50)
	oneHundred  = decimal.NewFromInt(100)
	twoHundred  = decimal.NewFromInt(200)
	zeroDecimal = decimal.Zero
)

func ParsePriceRange(s string) (PriceRange, error) {
	s = strings.TrimSpace(s)
	for r, name := range priceRangeNames {
		if name == s {
			return r, nil
		}
	}
	return PriceAny, fmt.Errorf("unknown price range %q", s)
}

func (r PriceRange) String() string { return priceRangeNames[r] }

// Contains reports whether price falls in the bracket. Bounded brackets are
// inclusive at both ends; 200+ is open-ended.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	switch r {
	case PriceUnder50:
		return between(price, zeroDecimal, fifty)
	case Price50To100:
		return between(price, fifty, oneHundred)
	case Price100To200:
		return between(price, oneHundred, twoHundred)
	case Price200Plus:
		return price.GreaterThanOrEqual(twoHundred)
	default:
		return true
	}
}

func between(v, lo, hi decimal.Decimal) bool {
	return v.GreaterThanOrEqual(lo) && v.LessThanOrEqual(hi)
}

type SortKey int

const (
	SortByName SortKey = iota
	SortByPriceLow
	SortByPriceHigh
	SortByRating
	SortByNewest
)

var sortKeyNames = map[SortKey]string{
	SortByName:      "name",
	SortByPriceLow:  "price-low",
	SortByPriceHigh: "price-high",
	SortByRating:    "rating",
	SortByNewest:    "newest",
}

// ParseSortKey accepts the wire names; empty means the default (name).
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortByName, nil
	}
	for k, name := range sortKeyNames {
		if name == s {
			return k, nil
		}
	}
	return SortByName, fmt.Errorf("unknown sort key %q", s)
}

func (k SortKey) String() string { return sortKeyNames[k] }

type Filters struct {
	Category   string
	Flavor     string
	PriceRange PriceRange
	SortBy     SortKey
}

// DefaultFilters is the state after "clear filters": the category implied by the
// current route is kept, everything else is reset.
func DefaultFilters(routeCategory string) Filters {
	return Filters{Category: routeCategory, SortBy: SortByName}
}

// Active reports whether any narrowing filter is set.
func (f Filters) Active() bool {
	return f.Category != "" || f.Flavor != "" || f.PriceRange != PriceAny
}

// Apply narrows and orders products. The input slice is never modified.
func Apply(products []Product, f Filters) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Flavor != "" && !p.HasFlavor(f.Flavor) {
			continue
		}
		if !f.PriceRange.Contains(p.BasePrice) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.SortBy)
	return out
}

func sortProducts(ps []Product, key SortKey) {
	switch key {
	case SortByPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].BasePrice.LessThan(ps[j].BasePrice) })
	case SortByPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].BasePrice.GreaterThan(ps[j].BasePrice) })
	case SortByRating:
		sort.SliceStable(ps, func(i, j int) bool {
			if ps[i].Rating != ps[j].Rating {
				return ps[i].Rating > ps[j].Rating
			}
			return ps[i].ReviewCount > ps[j].ReviewCount
		})
	case SortByNewest:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].CreatedAt.After(ps[j].CreatedAt) })
	default:
		// collate.Collator is not safe for concurrent use.
		col := collate.New(language.English)
		sort.SliceStable(ps, func(i, j int) bool { return col.CompareString(ps[i].Name, ps[j].Name) < 0 })
	}
}
