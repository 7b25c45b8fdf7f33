package grpc

import (
	"context"
	"errors"
	"sort"
	"time"

	checkoutv1 "github.com/dwikikusuma/sweet-layers/api/gen/checkout/v1"
	"github.com/dwikikusuma/sweet-layers/internal/checkout/app"
	"github.com/dwikikusuma/sweet-layers/internal/checkout/domain"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	checkoutv1.UnimplementedCheckoutServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Quote(ctx context.Context, req *checkoutv1.QuoteRequest) (*checkoutv1.QuoteResponse, error) {
	q, err := s.svc.Quote(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}

	lines := make([]*checkoutv1.QuoteLine, 0, len(q.Lines))
	for _, l := range q.Lines {
		ql := &checkoutv1.QuoteLine{
			ProductId: l.ProductID,
			Name:      l.Name,
			Size:      l.Size,
			Flavor:    l.Flavor,
			Message:   l.Message,
			Quantity:  int32(l.Quantity),
			UnitPrice: l.UnitPrice.StringFixed(2),
			LineTotal: l.Total.StringFixed(2),
		}
		if l.DeliveryDate != nil {
			ql.DeliveryDate = l.DeliveryDate.Format("2006-01-02")
		}
		lines = append(lines, ql)
	}

	return &checkoutv1.QuoteResponse{Lines: lines, Summary: summaryToProto(q.Summary)}, nil
}

func (s *Server) PlaceOrder(ctx context.Context, req *checkoutv1.PlaceOrderRequest) (*checkoutv1.PlaceOrderResponse, error) {
	var (
		customer domain.CustomerInfo
		payment  domain.PaymentInfo
	)
	if c := req.CustomerInfo; c != nil {
		customer = domain.CustomerInfo{
			FirstName:           c.FirstName,
			LastName:            c.LastName,
			Email:               c.Email,
			Phone:               c.Phone,
			DeliveryType:        domain.DeliveryType(c.DeliveryType),
			Address:             c.Address,
			City:                c.City,
			State:               c.State,
			ZipCode:             c.ZipCode,
			SpecialInstructions: c.SpecialInstructions,
		}
	}
	if p := req.PaymentInfo; p != nil {
		payment = domain.PaymentInfo{
			CardNumber:     p.CardNumber,
			ExpiryDate:     p.ExpiryDate,
			CVV:            p.Cvv,
			CardholderName: p.CardholderName,
		}
	}

	placed, err := s.svc.PlaceOrder(ctx, req.SessionId, customer, payment)
	if err != nil {
		return nil, mapErr(err)
	}

	return &checkoutv1.PlaceOrderResponse{
		OrderId:   placed.ID,
		Status:    placed.Status,
		Total:     placed.Total.StringFixed(2),
		OrderDate: placed.OrderDate.UTC().Format(time.RFC3339),
	}, nil
}

func summaryToProto(s domain.Summary) *checkoutv1.Summary {
	v := s.Display()
	return &checkoutv1.Summary{
		ItemCount:       int32(v.ItemCount),
		Subtotal:        v.Subtotal,
		Tax:             v.Tax,
		Shipping:        v.Shipping,
		Total:           v.Total,
		FreeShippingGap: v.FreeShippingGap,
	}
}

func mapErr(err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationStatus(verr)
	case errors.Is(err, app.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrSessionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

// validationStatus carries each failed field as a BadRequest violation.
func validationStatus(verr *domain.ValidationError) error {
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	br := &errdetails.BadRequest{}
	for _, f := range fields {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f,
			Description: verr.Fields[f],
		})
	}

	st := status.New(codes.InvalidArgument, "please fill in all required fields")
	if withDetails, err := st.WithDetails(br); err == nil {
		st = withDetails
	}
	return st.Err()
}
