package main

import (
	"context"

	middleware "github.com/grpc-ecosystem/go-grpc-middleware/v2"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/hol-api/internal/pkg/idgen"
)

const requestIDMetadataKey = "x-request-id"

// requestIDInterceptor tags every call with a request id, reusing the
// caller's when present, and echoes it back in the response header
func requestIDInterceptor(gen idgen.Generator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, id := withRequestID(ctx, gen)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDMetadataKey, id))
		return handler(ctx, req)
	}
}

// requestIDStreamInterceptor is the streaming counterpart of requestIDInterceptor
func requestIDStreamInterceptor(gen idgen.Generator) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, id := withRequestID(ss.Context(), gen)
		_ = ss.SetHeader(metadata.Pairs(requestIDMetadataKey, id))

		wrapped := middleware.WrapServerStream(ss)
		wrapped.WrappedContext = ctx
		return handler(srv, wrapped)
	}
}

func withRequestID(ctx context.Context, gen idgen.Generator) (context.Context, string) {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIDMetadataKey); len(ids) > 0 {
			id = ids[0]
		}
	}
	if id == "" {
		id = gen.Generate()
	}
	return grpc_logging.InjectFields(ctx, grpc_logging.Fields{"request_id", id}), id
}
