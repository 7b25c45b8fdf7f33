package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	TaxRate               = decimal.RequireFromString("0.08")
	FreeShippingThreshold = decimal.NewFromInt(100)
	FlatShipping          = decimal.NewFromInt(15)
)

// Line is one cart line as seen by checkout.
type Line struct {
	ProductID    int64
	Name         string
	Size         string
	Flavor       string
	Message      string
	DeliveryDate *time.Time
	Quantity     int
	UnitPrice    decimal.Decimal
}

func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Summary holds exact amounts. Round only for presentation or persistence.
type Summary struct {
	ItemCount       int
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
	FreeShippingGap decimal.Decimal
}

// Summarize prices a set of lines. Shipping is free only when the subtotal is
// strictly above the threshold. The result does not depend on line order.
func Summarize(lines []Line) Summary {
	var count int
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
		count += l.Quantity
	}

	tax := subtotal.Mul(TaxRate)

	shipping := FlatShipping
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	gap := decimal.Zero
	if subtotal.LessThan(FreeShippingThreshold) {
		gap = FreeShippingThreshold.Sub(subtotal)
	}

	return Summary{
		ItemCount:       count,
		Subtotal:        subtotal,
		Tax:             tax,
		Shipping:        shipping,
		Total:           subtotal.Add(tax).Add(shipping),
		FreeShippingGap: gap,
	}
}

// Rounded returns the summary in whole cents with the total rebuilt from the
// rounded parts, the form an order is recorded in.
func (s Summary) Rounded() Summary {
	r := Summary{
		ItemCount:       s.ItemCount,
		Subtotal:        s.Subtotal.Round(2),
		Tax:             s.Tax.Round(2),
		Shipping:        s.Shipping.Round(2),
		FreeShippingGap: s.FreeShippingGap.Round(2),
	}
	r.Total = r.Subtotal.Add(r.Tax).Add(r.Shipping)
	return r
}

type SummaryView struct {
	ItemCount       int    `json:"itemCount"`
	Subtotal        string `json:"subtotal"`
	Tax             string `json:"tax"`
	Shipping        string `json:"shipping"`
	Total           string `json:"total"`
	FreeShippingGap string `json:"freeShippingGap"`
}

func (s Summary) Display() SummaryView {
	return SummaryView{
		ItemCount:       s.ItemCount,
		Subtotal:        s.Subtotal.StringFixed(2),
		Tax:             s.Tax.StringFixed(2),
		Shipping:        s.Shipping.StringFixed(2),
		Total:           s.Total.StringFixed(2),
		FreeShippingGap: s.FreeShippingGap.StringFixed(2),
	}
}

type QuoteLine struct {
	Line
	Total decimal.Decimal
}

type Quote struct {
	Lines   []QuoteLine
	Summary Summary
}

type PlacedOrder struct {
	ID        int64
	Status    string
	Total     decimal.Decimal
	OrderDate time.Time
}
