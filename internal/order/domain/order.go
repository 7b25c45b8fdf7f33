package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo encodes pending -> confirmed -> shipped -> delivered, with
// cancelled reachable from every non-terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	}
	return false
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

func ParseDeliveryType(s string) (DeliveryType, error) {
	switch dt := DeliveryType(s); dt {
	case DeliveryTypeDelivery, DeliveryTypePickup:
		return dt, nil
	}
	return "", fmt.Errorf("unknown delivery type %q", s)
}

type CustomerInfo struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	State               string `json:"state,omitempty"`
	ZipCode             string `json:"zipCode,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Item is a cart line frozen at checkout time.
type Item struct {
	ProductID    int64           `json:"productId"`
	Name         string          `json:"name"`
	Size         string          `json:"size"`
	Flavor       string          `json:"flavor"`
	Message      string          `json:"message,omitempty"`
	DeliveryDate *time.Time      `json:"deliveryDate,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

type Order struct {
	ID           int64
	Items        []Item
	Customer     CustomerInfo
	DeliveryType DeliveryType
	Status       Status
	OrderDate    time.Time
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Shipping     decimal.Decimal
	Total        decimal.Decimal
}

type CreateOrderRequest struct {
	Items        []Item
	Customer     CustomerInfo
	DeliveryType DeliveryType
	Status       Status
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Shipping     decimal.Decimal
	Total        decimal.Decimal
}

// deliveryOffsetDays is a heuristic, not carrier data.
var deliveryOffsetDays = map[Status]int{
	StatusPending:   5,
	StatusConfirmed: 3,
	StatusShipped:   1,
}

const defaultDeliveryOffsetDays = 5

// EstimatedDeliveryDate derives the expected delivery date from the current
// status. Delivered and cancelled orders have no estimate. The value is never
// stored; call it whenever the order is presented.
func (o Order) EstimatedDeliveryDate() (time.Time, bool) {
	if o.Status.Terminal() {
		return time.Time{}, false
	}
	days, ok := deliveryOffsetDays[o.Status]
	if !ok {
		days = defaultDeliveryOffsetDays
	}
	return o.OrderDate.AddDate(0, 0, days), true
}

// Clone deep-copies the order so stored item lists cannot be modified through it.
func (o Order) Clone() Order {
	c := o
	c.Items = make([]Item, len(o.Items))
	for i, it := range o.Items {
		if it.DeliveryDate != nil {
			d := *it.DeliveryDate
			it.DeliveryDate = &d
		}
		c.Items[i] = it
	}
	return c
}
