// Package grpc integrates JWT compression with gRPC transports.
//
// Client interceptors attach the token from the call context to outgoing
// metadata, compressed into x-jwt-* entries when enabled so HPACK can index
// the stable fragments. Server interceptors reassemble the token from
// incoming metadata (compressed form first, bearer authorization fallback)
// and place it in the handler context. Forwarding interceptors let a
// mid-tier service re-attach the token it received to its own outbound
// calls.
//
// A missing or malformed token never fails the RPC here: the handler runs
// without a token in context, and whether that is acceptable is an
// authorization decision that belongs downstream.
package grpc
