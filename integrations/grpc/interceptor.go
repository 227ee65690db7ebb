package grpc

import (
	"context"

	jwtcompression "github.com/tokensplit/go-jwt-compression"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Interceptor provides JWT attachment and reassembly for gRPC clients and
// servers.
type Interceptor struct {
	compressor   *jwtcompression.Compressor
	skipMethods  map[string]bool
	skipServices []string
	logger       jwtcompression.Logger
}

// New creates a gRPC interceptor with the provided options.
// WithCompressor option is required.
func New(opts ...Option) (*Interceptor, error) {
	interceptor := &Interceptor{
		skipMethods: make(map[string]bool),
		logger:      &jwtcompression.DefaultLogger{},
	}

	for _, opt := range opts {
		if err := opt(interceptor); err != nil {
			return nil, err
		}
	}

	if interceptor.compressor == nil {
		return nil, ErrCompressorNil
	}

	return interceptor, nil
}

// UnaryClientInterceptor returns a grpc.UnaryClientInterceptor that
// attaches the context token to outgoing metadata, compressed when the
// Compressor has compression enabled.
func (i *Interceptor) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		ctx = i.attachOutgoing(ctx, method)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor returns a grpc.StreamClientInterceptor that
// attaches the context token to outgoing metadata.
func (i *Interceptor) StreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		ctx = i.attachOutgoing(ctx, method)
		return streamer(ctx, desc, cc, method, opts...)
	}
}

func (i *Interceptor) attachOutgoing(ctx context.Context, method string) context.Context {
	if i.skip(method) {
		return ctx
	}

	token, ok := TokenFromContext(ctx)
	if !ok {
		return ctx
	}

	var carrier jwtcompression.Carrier
	i.compressor.Attach(&carrier, token)
	ctx = appendToOutgoing(ctx, carrier)

	if i.compressor.Enabled() {
		i.logger.Debugf("attached jwt to %s as %d metadata entries", method, len(carrier))
	} else {
		i.logger.Debugf("attached full jwt to %s (%d bytes)", method, len(token))
	}
	return ctx
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that
// reassembles the token from incoming metadata and makes it available in
// the handler context. A malformed fragment set is logged and the handler
// runs without a token; the RPC itself is never rejected here.
func (i *Interceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if i.skip(info.FullMethod) {
			return handler(ctx, req)
		}
		return handler(i.reassembleIncoming(ctx, info.FullMethod), req)
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that
// reassembles the token from incoming stream metadata.
func (i *Interceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.skip(info.FullMethod) {
			return handler(srv, ss)
		}

		wrapped := &wrappedServerStream{
			ServerStream: ss,
			ctx:          i.reassembleIncoming(ss.Context(), info.FullMethod),
		}
		return handler(srv, wrapped)
	}
}

func (i *Interceptor) reassembleIncoming(ctx context.Context, method string) context.Context {
	carrier, ok := carrierFromIncoming(ctx)
	if !ok {
		return ctx
	}

	token, err := i.compressor.Reassemble(carrier)
	if err != nil {
		i.logger.Warnf("failed to reassemble jwt for %s, continuing without token: %v", method, err)
		return ctx
	}
	if token == "" {
		return ctx
	}

	return SetToken(ctx, token)
}

// ForwardingUnaryClientInterceptor returns a client interceptor for
// mid-tier services: the token reassembled by the server interceptor is
// re-attached to outbound calls. Services that never registered the server
// interceptor fall back to copying an incoming bearer entry verbatim.
func (i *Interceptor) ForwardingUnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		ctx = i.forwardOutgoing(ctx, method)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// ForwardingStreamClientInterceptor is the streaming counterpart of
// ForwardingUnaryClientInterceptor.
func (i *Interceptor) ForwardingStreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		ctx = i.forwardOutgoing(ctx, method)
		return streamer(ctx, desc, cc, method, opts...)
	}
}

func (i *Interceptor) forwardOutgoing(ctx context.Context, method string) context.Context {
	if i.skip(method) {
		return ctx
	}

	if HasToken(ctx) {
		return i.attachOutgoing(ctx, method)
	}

	// No reassembled token in context; pass through a raw bearer entry if
	// one arrived with the request.
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	auth := md.Get(jwtcompression.MetadataKeyAuthorization)
	if len(auth) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, jwtcompression.MetadataKeyAuthorization, auth[len(auth)-1])
}

// wrappedServerStream wraps grpc.ServerStream with a custom context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context carrying the reassembled token.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
