package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxQuantity bounds a single line.
const MaxQuantity = 999

// Key identifies a line: the same product in a different size or flavor is a different line.
type Key struct {
	ProductID int64
	Size      string
	Flavor    string
}

type LineItem struct {
	ProductID    int64
	Quantity     int
	Size         string
	Flavor       string
	Message      string
	DeliveryDate *time.Time
	UnitPrice    decimal.Decimal
}

func (l LineItem) Key() Key {
	return Key{ProductID: l.ProductID, Size: l.Size, Flavor: l.Flavor}
}

func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered list of line items with unique keys and quantities >= 1.
// It is not safe for concurrent use; owners serialize access.
type Cart struct {
	items []LineItem
}

// New returns a cart holding items, merged in order as if each had been added.
func New(items ...LineItem) Cart {
	var c Cart
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Add merges item into the line with the same key or appends it as a new line.
func (c *Cart) Add(item LineItem) {
	if i := c.index(item.Key()); i >= 0 {
		c.items[i].Quantity += item.Quantity
		if c.items[i].Quantity <= 0 {
			c.removeAt(i)
		}
		return
	}
	if item.Quantity <= 0 {
		return
	}
	c.items = append(c.items, item)
}

// Update replaces the line identified by key with updated. A quantity <= 0
// removes the line. If updated carries a different key that already exists,
// the two lines are merged: quantities add up and the other fields come from
// updated. It reports whether a line matched key; a miss leaves the cart
// unchanged.
func (c *Cart) Update(key Key, updated LineItem) bool {
	i := c.index(key)
	if i < 0 {
		return false
	}

	if updated.Quantity <= 0 {
		c.removeAt(i)
		return true
	}

	if newKey := updated.Key(); newKey != key {
		if j := c.index(newKey); j >= 0 {
			updated.Quantity += c.items[j].Quantity
			c.items[j] = updated
			c.removeAt(i)
			return true
		}
	}

	c.items[i] = updated
	return true
}

// Remove drops every line of the product, whatever its size or flavor, and
// returns how many lines were removed.
func (c *Cart) Remove(productID int64) int {
	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if it.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

// Deduct takes quantity units off the line with key and drops the line once
// nothing is left. It reports whether a line matched.
func (c *Cart) Deduct(key Key, quantity int) bool {
	i := c.index(key)
	if i < 0 {
		return false
	}
	c.items[i].Quantity -= quantity
	if c.items[i].Quantity <= 0 {
		c.removeAt(i)
	}
	return true
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c Cart) Len() int { return len(c.items) }

// ItemCount is the badge number: the sum of all quantities.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool { return len(c.items) == 0 }

// Quantity returns the quantity held on the line with key, 0 when absent.
func (c Cart) Quantity(k Key) int {
	if i := c.index(k); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Clone returns an independent copy.
func (c Cart) Clone() Cart {
	return Cart{items: c.Items()}
}

func (c *Cart) index(k Key) int {
	for i, it := range c.items {
		if it.Key() == k {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.items = append(c.items[:i], c.items[i+1:]...)
}
