package domain

import (
	"sort"
	"strings"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type CustomerInfo struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	DeliveryType        DeliveryType
	Address             string
	City                string
	State               string
	ZipCode             string
	SpecialInstructions string
}

// PaymentInfo is checked for presence only and never stored.
type PaymentInfo struct {
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
}

// ValidationError maps form field names to messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the checkout form. An empty delivery type means delivery,
// so the address block is required unless pickup was chosen.
func Validate(c CustomerInfo, p PaymentInfo) error {
	fields := make(map[string]string)
	require := func(name, value, msg string) {
		if strings.TrimSpace(value) == "" {
			fields[name] = msg
		}
	}

	require("firstName", c.FirstName, "First name is required")
	require("lastName", c.LastName, "Last name is required")
	require("email", c.Email, "Email is required")
	require("phone", c.Phone, "Phone number is required")

	switch c.DeliveryType {
	case "", DeliveryTypeDelivery:
		require("address", c.Address, "Address is required")
		require("city", c.City, "City is required")
		require("state", c.State, "State is required")
		require("zipCode", c.ZipCode, "Zip code is required")
	case DeliveryTypePickup:
	default:
		fields["deliveryType"] = "Delivery type must be delivery or pickup"
	}

	require("cardNumber", p.CardNumber, "Card number is required")
	require("expiryDate", p.ExpiryDate, "Expiry date is required")
	require("cvv", p.CVV, "CVV is required")
	require("cardholderName", p.CardholderName, "Cardholder name is required")

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
