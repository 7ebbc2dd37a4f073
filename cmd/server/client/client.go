// Package client provides commands that call a running hol-api server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	holv1alpha1 "github.com/KirkDiggler/hol-api/api/hol/v1alpha1"
	"github.com/KirkDiggler/hol-api/internal/handlers/hol/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Identity flags
	userID string
	asGM   bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the hol-api server",
	Long:  `Client commands make real gRPC requests against a running hol-api server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&userID, "user", "cli", "user id sent with each request")
	ClientCmd.PersistentFlags().BoolVar(&asGM, "gm", false, "send requests as a GM")

	ClientCmd.AddCommand(weaponCmd)
	ClientCmd.AddCommand(importsCmd)
	ClientCmd.AddCommand(sheetCmd)
}

// createClient connects to the server and returns a cleanup func
func createClient() (holv1alpha1.HolServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return holv1alpha1.NewHolServiceClient(conn), cleanup, nil
}

// callFunc is one HolServiceClient method
type callFunc func(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

// call sends fields to the server as the configured user and prints the
// response as indented JSON
func call(pick func(holv1alpha1.HolServiceClient) callFunc, fields map[string]any) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pairs := []string{v1alpha1.UserMetadataKey, userID}
	if asGM {
		pairs = append(pairs, v1alpha1.RoleMetadataKey, v1alpha1.GMRole)
	}
	ctx = metadata.AppendToOutgoingContext(ctx, pairs...)

	resp, err := pick(client)(ctx, req)
	if err != nil {
		return err
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
