package main

import (
	"context"
	"testing"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/hol-api/internal/pkg/idgen"
)

func runWithRequestID(t *testing.T, ctx context.Context) grpc_logging.Fields {
	t.Helper()

	var fields grpc_logging.Fields
	interceptor := requestIDInterceptor(idgen.NewSequential("req"))
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		fields = grpc_logging.ExtractFields(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	return fields
}

func TestRequestIDGenerated(t *testing.T) {
	fields := runWithRequestID(t, context.Background())
	assert.Equal(t, grpc_logging.Fields{"request_id", "req_1"}, fields)
}

func TestRequestIDFromCaller(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDMetadataKey, "abc"))
	fields := runWithRequestID(t, ctx)
	assert.Equal(t, grpc_logging.Fields{"request_id", "abc"}, fields)
}

type headerStream struct {
	grpc.ServerStream
	ctx    context.Context
	header metadata.MD
}

func (s *headerStream) Context() context.Context {
	return s.ctx
}

func (s *headerStream) SetHeader(md metadata.MD) error {
	s.header = metadata.Join(s.header, md)
	return nil
}

func TestStreamRequestID(t *testing.T) {
	stream := &headerStream{
		ctx: metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDMetadataKey, "abc")),
	}

	var fields grpc_logging.Fields
	interceptor := requestIDStreamInterceptor(idgen.NewSequential("req"))
	err := interceptor(nil, stream, &grpc.StreamServerInfo{}, func(_ any, ss grpc.ServerStream) error {
		fields = grpc_logging.ExtractFields(ss.Context())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, grpc_logging.Fields{"request_id", "abc"}, fields)
	assert.Equal(t, []string{"abc"}, stream.header.Get(requestIDMetadataKey))
}

func TestStreamRequestIDGenerated(t *testing.T) {
	stream := &headerStream{ctx: context.Background()}

	var fields grpc_logging.Fields
	interceptor := requestIDStreamInterceptor(idgen.NewSequential("req"))
	err := interceptor(nil, stream, &grpc.StreamServerInfo{}, func(_ any, ss grpc.ServerStream) error {
		fields = grpc_logging.ExtractFields(ss.Context())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, grpc_logging.Fields{"request_id", "req_1"}, fields)
}
