package grpc

import (
	"context"
	"net"
	"testing"

	cartv1 "github.com/dwikikusuma/sweet-layers/api/gen/cart/v1"
	"github.com/dwikikusuma/sweet-layers/internal/cart/app"
	"github.com/dwikikusuma/sweet-layers/internal/cart/infra/memory"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/dwikikusuma/sweet-layers/pkg/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) cartv1.CartServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(rpc.UnaryRecover(logger.Discard())))
	svc := app.NewService(memory.NewSessionRepo(), nil, logger.Discard())
	cartv1.RegisterCartServiceServer(srv, NewServer(svc))

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := rpc.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return cartv1.NewCartServiceClient(conn)
}

func TestCartServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	opened, err := client.OpenSession(ctx, &cartv1.OpenSessionRequest{})
	require.NoError(t, err)
	sid := opened.SessionId
	require.NotEmpty(t, sid)

	item := &cartv1.LineItem{ProductId: 7, Quantity: 2, Size: "Medium", Flavor: "Lemon", UnitPrice: "42.5", DeliveryDate: "2024-03-01"}
	added, err := client.AddItem(ctx, &cartv1.AddItemRequest{SessionId: sid, Item: item})
	require.NoError(t, err)
	require.Len(t, added.Cart.Items, 1)
	assert.Equal(t, "42.50", added.Cart.Items[0].UnitPrice)
	assert.Equal(t, "85.00", added.Cart.Items[0].LineTotal)
	assert.Equal(t, "2024-03-01", added.Cart.Items[0].DeliveryDate)

	_, err = client.AddItem(ctx, &cartv1.AddItemRequest{SessionId: sid, Item: item})
	require.NoError(t, err)

	got, err := client.GetCart(ctx, &cartv1.GetCartRequest{SessionId: sid})
	require.NoError(t, err)
	require.Len(t, got.Cart.Items, 1)
	assert.Equal(t, int32(4), got.Cart.Items[0].Quantity)
	assert.Equal(t, int32(4), got.Cart.ItemCount)

	upd, err := client.UpdateItem(ctx, &cartv1.UpdateItemRequest{
		SessionId: sid,
		Key:       &cartv1.LineKey{ProductId: 7, Size: "Small", Flavor: "Lemon"},
		Item:      &cartv1.LineItem{ProductId: 7, Quantity: 1, Size: "Small", Flavor: "Lemon"},
	})
	require.NoError(t, err)
	assert.False(t, upd.Matched)
	assert.Equal(t, int32(4), upd.Cart.ItemCount)

	removed, err := client.RemoveItem(ctx, &cartv1.RemoveItemRequest{SessionId: sid, ProductId: 7})
	require.NoError(t, err)
	assert.Empty(t, removed.Cart.Items)
}

func TestCartServiceErrorCodes(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.GetCart(ctx, &cartv1.GetCartRequest{SessionId: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetCart(ctx, &cartv1.GetCartRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	opened, err := client.OpenSession(ctx, &cartv1.OpenSessionRequest{})
	require.NoError(t, err)

	_, err = client.AddItem(ctx, &cartv1.AddItemRequest{SessionId: opened.SessionId})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.AddItem(ctx, &cartv1.AddItemRequest{
		SessionId: opened.SessionId,
		Item:      &cartv1.LineItem{ProductId: 1, Quantity: 1, Size: "Small", Flavor: "Vanilla", DeliveryDate: "next week"},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.AddItem(ctx, &cartv1.AddItemRequest{
		SessionId: opened.SessionId,
		Item:      &cartv1.LineItem{ProductId: 1, Quantity: 0, Size: "Small", Flavor: "Vanilla"},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
