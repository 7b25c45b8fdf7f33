package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatedDeliveryDate(t *testing.T) {
	orderDate := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		status Status
		want   string
		ok     bool
	}{
		{StatusPending, "2024-01-15", true},
		{StatusConfirmed, "2024-01-13", true},
		{StatusShipped, "2024-01-11", true},
		{Status("on-hold"), "2024-01-15", true},
		{StatusDelivered, "", false},
		{StatusCancelled, "", false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			got, ok := Order{Status: tc.status, OrderDate: orderDate}.EstimatedDeliveryDate()
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got.Format("2006-01-02"))
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestEstimatedDeliveryDateCrossesMonthEnd(t *testing.T) {
	got, ok := Order{Status: StatusPending, OrderDate: time.Date(2024, 2, 27, 9, 0, 0, 0, time.UTC)}.EstimatedDeliveryDate()
	require.True(t, ok)
	assert.Equal(t, "2024-03-03", got.Format("2006-01-02"))
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusDelivered, StatusCancelled},
		StatusDelivered: nil,
		StatusCancelled: nil,
	}
	all := []Status{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}

	for from, tos := range allowed {
		for _, to := range all {
			want := false
			for _, a := range tos {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestParse(t *testing.T) {
	s, err := ParseStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, s)
	_, err = ParseStatus("lost")
	assert.Error(t, err)

	dt, err := ParseDeliveryType("pickup")
	require.NoError(t, err)
	assert.Equal(t, DeliveryTypePickup, dt)
	_, err = ParseDeliveryType("drone")
	assert.Error(t, err)
}

func TestCloneDetachesItems(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	o := Order{ID: 1, Items: []Item{{ProductID: 1, Quantity: 1, DeliveryDate: &d}}}

	c := o.Clone()
	c.Items[0].Quantity = 7
	*c.Items[0].DeliveryDate = d.AddDate(0, 0, 1)

	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, d, *o.Items[0].DeliveryDate)
}
