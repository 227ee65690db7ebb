package grpc

import (
	"context"

	jwtcompression "github.com/tokensplit/go-jwt-compression"
	"google.golang.org/grpc/metadata"
)

// carrierFromIncoming flattens the incoming gRPC metadata into an ordered
// pair list. Within a key, metadata.MD preserves append order, so the
// carrier's last-occurrence-wins lookup matches gRPC semantics.
func carrierFromIncoming(ctx context.Context) (jwtcompression.Carrier, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, false
	}

	carrier := make(jwtcompression.Carrier, 0, md.Len())
	for key, values := range md {
		for _, value := range values {
			carrier.Append(key, value)
		}
	}
	return carrier, true
}

// appendToOutgoing appends every carrier entry to the outgoing metadata of
// ctx, preserving order and leaving existing entries untouched.
func appendToOutgoing(ctx context.Context, carrier jwtcompression.Carrier) context.Context {
	if len(carrier) == 0 {
		return ctx
	}

	kv := make([]string, 0, len(carrier)*2)
	for _, pair := range carrier {
		kv = append(kv, pair.Key, pair.Value)
	}
	return metadata.AppendToOutgoingContext(ctx, kv...)
}
