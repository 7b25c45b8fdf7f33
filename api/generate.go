// Package api holds the storefront protobuf contracts. Generated Go code
// lives under gen/.
package api

//go:generate protoc -I proto --go_out=gen --go_opt=paths=source_relative --go-grpc_out=gen --go-grpc_opt=paths=source_relative catalog/v1/catalog.proto cart/v1/cart.proto checkout/v1/checkout.proto order/v1/order.proto
