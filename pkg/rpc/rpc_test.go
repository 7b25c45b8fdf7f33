package rpc

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type echoMsg struct {
	Text string
}

type echoImpl struct{}

func (echoImpl) Echo(_ context.Context, in *echoMsg) (*echoMsg, error) {
	if in.Text == "panic" {
		panic("boom")
	}
	if in.Text == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}
	return &echoMsg{Text: in.Text}, nil
}

func TestDialSpeaksProtobuf(t *testing.T) {
	lis := bufconn.Listen(1 << 16)
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	resp, err = healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestInterceptors(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	info := &grpc.UnaryServerInfo{FullMethod: "/test.v1.Echo/Echo"}
	call := func(text string) error {
		handler := func(ctx context.Context, req any) (any, error) {
			return echoImpl{}.Echo(ctx, req.(*echoMsg))
		}
		recovering := func(ctx context.Context, req any) (any, error) {
			return UnaryRecover(log)(ctx, req, info, handler)
		}
		_, err := UnaryLogging(log)(context.Background(), &echoMsg{Text: text}, info, recovering)
		return err
	}

	require.NoError(t, call("ok"))
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)

	buf.Reset()
	assert.Equal(t, codes.InvalidArgument, status.Code(call("")))
	assert.Contains(t, buf.String(), `"level":"WARN"`)

	buf.Reset()
	assert.Equal(t, codes.Internal, status.Code(call("panic")))
	assert.Contains(t, buf.String(), `"msg":"rpc panic"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}
