package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID int64, size, flavor string, qty int, price int64) LineItem {
	return LineItem{
		ProductID: productID,
		Size:      size,
		Flavor:    flavor,
		Quantity:  qty,
		UnitPrice: decimal.NewFromInt(price),
	}
}

func TestAddMergesSameKey(t *testing.T) {
	var c Cart
	for _, q := range []int{1, 2, 3, 4} {
		c.Add(line(1, "Medium", "Vanilla", q, 40))
	}

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0].Quantity)
	assert.Equal(t, 10, c.ItemCount())
}

func TestAddKeepsDistinctKeysApart(t *testing.T) {
	c := New(
		line(1, "Medium", "Vanilla", 1, 40),
		line(1, "Large", "Vanilla", 1, 60),
		line(1, "Medium", "Chocolate", 1, 40),
		line(2, "Medium", "Vanilla", 1, 55),
	)

	items := c.Items()
	require.Len(t, items, 4)
	assert.Equal(t, Key{1, "Medium", "Vanilla"}, items[0].Key())
	assert.Equal(t, Key{1, "Large", "Vanilla"}, items[1].Key())
	assert.Equal(t, Key{1, "Medium", "Chocolate"}, items[2].Key())
	assert.Equal(t, Key{2, "Medium", "Vanilla"}, items[3].Key())
}

func TestAddNeverStoresNonPositiveQuantity(t *testing.T) {
	var c Cart
	c.Add(line(1, "Small", "Lemon", 0, 20))
	assert.True(t, c.IsEmpty())

	c.Add(line(1, "Small", "Lemon", 2, 20))
	c.Add(line(1, "Small", "Lemon", -2, 20))
	assert.True(t, c.IsEmpty(), "merge down to zero removes the line")
}

func TestUpdate(t *testing.T) {
	t.Run("replaces wholesale", func(t *testing.T) {
		c := New(line(1, "Medium", "Vanilla", 2, 40))
		updated := line(1, "Medium", "Vanilla", 5, 40)
		updated.Message = "Happy Birthday"

		assert.True(t, c.Update(Key{1, "Medium", "Vanilla"}, updated))
		assert.Equal(t, []LineItem{updated}, c.Items())
	})

	t.Run("missing key is a no-op", func(t *testing.T) {
		c := New(line(1, "Medium", "Vanilla", 2, 40))
		before := c.Items()

		assert.False(t, c.Update(Key{1, "Large", "Vanilla"}, line(1, "Large", "Vanilla", 9, 60)))
		assert.Equal(t, before, c.Items())
	})

	t.Run("non-positive quantity removes", func(t *testing.T) {
		c := New(line(1, "Medium", "Vanilla", 2, 40), line(2, "Small", "Lemon", 1, 20))

		assert.True(t, c.Update(Key{1, "Medium", "Vanilla"}, line(1, "Medium", "Vanilla", 0, 40)))
		require.Len(t, c.Items(), 1)
		assert.Equal(t, int64(2), c.Items()[0].ProductID)
	})

	t.Run("changing to an existing key merges", func(t *testing.T) {
		c := New(line(1, "Medium", "Vanilla", 2, 40), line(1, "Large", "Vanilla", 1, 60))

		assert.True(t, c.Update(Key{1, "Medium", "Vanilla"}, line(1, "Large", "Vanilla", 2, 60)))
		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, Key{1, "Large", "Vanilla"}, items[0].Key())
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("merge keeps the replacement details", func(t *testing.T) {
		delivery := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)
		c := New(line(1, "Medium", "Vanilla", 1, 40), line(1, "Large", "Vanilla", 1, 60))

		updated := line(1, "Large", "Vanilla", 2, 65)
		updated.Message = "Congrats Sam"
		updated.DeliveryDate = &delivery

		assert.True(t, c.Update(Key{1, "Medium", "Vanilla"}, updated))
		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, "Congrats Sam", items[0].Message)
		require.NotNil(t, items[0].DeliveryDate)
		assert.True(t, delivery.Equal(*items[0].DeliveryDate))
		assert.True(t, decimal.NewFromInt(65).Equal(items[0].UnitPrice))
	})
}

func TestDeduct(t *testing.T) {
	c := New(line(1, "Medium", "Vanilla", 3, 40), line(2, "Small", "Lemon", 1, 20))

	assert.True(t, c.Deduct(Key{1, "Medium", "Vanilla"}, 2))
	assert.Equal(t, 1, c.Items()[0].Quantity)

	assert.True(t, c.Deduct(Key{2, "Small", "Lemon"}, 1))
	assert.Equal(t, 1, c.Len())

	assert.False(t, c.Deduct(Key{9, "Small", "Lemon"}, 1))
	assert.True(t, c.Deduct(Key{1, "Medium", "Vanilla"}, 5), "over-deducting drops the line")
	assert.True(t, c.IsEmpty())
}

func TestRemoveDropsEveryVariant(t *testing.T) {
	c := New(
		line(1, "Medium", "Vanilla", 1, 40),
		line(2, "Small", "Lemon", 1, 20),
		line(1, "Large", "Chocolate", 3, 60),
	)

	assert.Equal(t, 2, c.Remove(1))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)

	assert.Zero(t, c.Remove(42))
}

func TestClear(t *testing.T) {
	c := New(line(1, "Medium", "Vanilla", 1, 40), line(2, "Small", "Lemon", 1, 20))
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.ItemCount())
	assert.Empty(t, c.Items())
}

func TestItemsAndCloneAreCopies(t *testing.T) {
	c := New(line(1, "Medium", "Vanilla", 1, 40))

	items := c.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, c.Items()[0].Quantity)

	snap := c.Clone()
	c.Add(line(1, "Medium", "Vanilla", 1, 40))
	assert.Equal(t, 1, snap.Items()[0].Quantity)
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestLineTotal(t *testing.T) {
	l := LineItem{Quantity: 3, UnitPrice: decimal.RequireFromString("12.35")}
	assert.True(t, decimal.RequireFromString("37.05").Equal(l.LineTotal()))
}
