package adapter

import (
	"context"
	"errors"
	"fmt"

	checkoutapp "github.com/dwikikusuma/sweet-layers/internal/checkout/app"
	"github.com/dwikikusuma/sweet-layers/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/sweet-layers/internal/order/app"
	orderdomain "github.com/dwikikusuma/sweet-layers/internal/order/domain"
)

type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) CreateOrder(ctx context.Context, draft checkoutapp.OrderDraft) (domain.PlacedOrder, error) {
	items := make([]orderdomain.Item, 0, len(draft.Lines))
	for _, l := range draft.Lines {
		items = append(items, orderdomain.Item{
			ProductID:    l.ProductID,
			Name:         l.Name,
			Size:         l.Size,
			Flavor:       l.Flavor,
			Message:      l.Message,
			DeliveryDate: l.DeliveryDate,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
		})
	}

	c := draft.Customer
	o, err := w.svc.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		Items: items,
		Customer: orderdomain.CustomerInfo{
			FirstName:           c.FirstName,
			LastName:            c.LastName,
			Email:               c.Email,
			Phone:               c.Phone,
			Address:             c.Address,
			City:                c.City,
			State:               c.State,
			ZipCode:             c.ZipCode,
			SpecialInstructions: c.SpecialInstructions,
		},
		DeliveryType: orderdomain.DeliveryType(c.DeliveryType),
		Status:       orderdomain.Status(draft.Status),
		Subtotal:     draft.Summary.Subtotal,
		Tax:          draft.Summary.Tax,
		Shipping:     draft.Summary.Shipping,
		Total:        draft.Summary.Total,
	})
	if errors.Is(err, orderapp.ErrTransientLoad) {
		return domain.PlacedOrder{}, fmt.Errorf("%w: %v", checkoutapp.ErrUnavailable, err)
	}
	if err != nil {
		return domain.PlacedOrder{}, err
	}

	return domain.PlacedOrder{
		ID:        o.ID,
		Status:    string(o.Status),
		Total:     o.Total,
		OrderDate: o.OrderDate,
	}, nil
}
