// Package rpc holds the pieces shared by the storefront gRPC services and
// their callers: client dialing and server interceptors.
package rpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial creates a plaintext client connection; the storefront runs behind the
// gateway on a private network.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	return grpc.NewClient(target, append(base, opts...)...)
}
