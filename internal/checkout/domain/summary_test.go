package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(price string, qty int) Line {
	return Line{UnitPrice: decimal.RequireFromString(price), Quantity: qty}
}

func TestSummarize(t *testing.T) {
	cases := []struct {
		name  string
		lines []Line
		want  SummaryView
	}{
		{
			name:  "below threshold pays flat shipping",
			lines: []Line{line("40.00", 2)},
			want:  SummaryView{ItemCount: 2, Subtotal: "80.00", Tax: "6.40", Shipping: "15.00", Total: "101.40", FreeShippingGap: "20.00"},
		},
		{
			name:  "exactly at threshold still pays shipping",
			lines: []Line{line("100.00", 1)},
			want:  SummaryView{ItemCount: 1, Subtotal: "100.00", Tax: "8.00", Shipping: "15.00", Total: "123.00", FreeShippingGap: "0.00"},
		},
		{
			name:  "one cent above threshold ships free",
			lines: []Line{line("100.01", 1)},
			want:  SummaryView{ItemCount: 1, Subtotal: "100.01", Tax: "8.00", Shipping: "0.00", Total: "108.01", FreeShippingGap: "0.00"},
		},
		{
			name:  "empty cart",
			lines: nil,
			want:  SummaryView{ItemCount: 0, Subtotal: "0.00", Tax: "0.00", Shipping: "15.00", Total: "15.00", FreeShippingGap: "100.00"},
		},
		{
			name:  "mixed lines",
			lines: []Line{line("45.00", 1), line("12.50", 4), line("89.99", 1)},
			want:  SummaryView{ItemCount: 6, Subtotal: "184.99", Tax: "14.80", Shipping: "0.00", Total: "199.79", FreeShippingGap: "0.00"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Summarize(tc.lines).Display())
		})
	}
}

func TestSummarizeKeepsExactAmounts(t *testing.T) {
	s := Summarize([]Line{line("12.99", 1)})
	assert.Equal(t, "1.0392", s.Tax.String())
	assert.Equal(t, "29.0292", s.Total.String())
	assert.Equal(t, "29.03", s.Display().Total)
}

func TestSummarizeIsOrderIndependent(t *testing.T) {
	lines := []Line{line("45.00", 1), line("12.50", 4), line("89.99", 1), line("3.33", 3), line("0.01", 7)}
	want := Summarize(lines)

	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		shuffled := append([]Line(nil), lines...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Summarize(shuffled)
		assert.True(t, want.Total.Equal(got.Total))
		assert.True(t, want.Tax.Equal(got.Tax))
		assert.Equal(t, want.ItemCount, got.ItemCount)
	}
}

func TestRounded(t *testing.T) {
	r := Summarize([]Line{line("12.99", 1)}).Rounded()
	assert.Equal(t, "1.04", r.Tax.String())
	assert.Equal(t, "29.03", r.Total.String())
	assert.True(t, r.Total.Equal(r.Subtotal.Add(r.Tax).Add(r.Shipping)))
}

func TestValidate(t *testing.T) {
	full := CustomerInfo{
		FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", Phone: "555-0100",
		DeliveryType: DeliveryTypeDelivery, Address: "1 Baker St", City: "Austin", State: "TX", ZipCode: "78701",
	}
	pay := PaymentInfo{CardNumber: "4242424242424242", ExpiryDate: "12/30", CVV: "123", CardholderName: "Ada Byron"}

	require.NoError(t, Validate(full, pay))

	t.Run("pickup skips address", func(t *testing.T) {
		c := full
		c.DeliveryType = DeliveryTypePickup
		c.Address, c.City, c.State, c.ZipCode = "", "", "", ""
		assert.NoError(t, Validate(c, pay))
	})

	t.Run("empty delivery type requires address", func(t *testing.T) {
		c := full
		c.DeliveryType = ""
		c.ZipCode = "  "
		err := Validate(c, pay)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{"zipCode": "Zip code is required"}, verr.Fields)
	})

	t.Run("reports every missing field", func(t *testing.T) {
		err := Validate(CustomerInfo{}, PaymentInfo{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 12)
		assert.Equal(t, "CVV is required", verr.Fields["cvv"])
		assert.Contains(t, err.Error(), "address: Address is required; cardNumber:")
	})

	t.Run("unknown delivery type", func(t *testing.T) {
		c := full
		c.DeliveryType = "drone"
		var verr *ValidationError
		require.ErrorAs(t, Validate(c, pay), &verr)
		assert.Contains(t, verr.Fields, "deliveryType")
	})
}
