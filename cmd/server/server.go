package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	holv1alpha1 "github.com/KirkDiggler/hol-api/api/hol/v1alpha1"
	"github.com/KirkDiggler/hol-api/internal/config"
	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/handlers/hol/v1alpha1"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/seed"
	"github.com/KirkDiggler/hol-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hol-api/internal/pkg/telemetry"
)

const serviceName = "hol-api"

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the hol-api gRPC server with the weapon, seed and sheet services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides HOL_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	setupLogging(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.OTelEndpoint,
		Enabled:     cfg.OTelEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if cfg.SeedOnStartup {
		seedOnStartup(ctx, a)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		slog.ErrorContext(ctx, "recovered from panic", "panic", p)
		return errors.ToGRPCError(errors.Internal("internal error"))
	})

	requestIDs := idgen.NewUUID("req")
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			requestIDInterceptor(requestIDs),
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			requestIDStreamInterceptor(requestIDs),
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthServer, err := registerServices(srv, a)
	if err != nil {
		_ = lis.Close()
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// registerServices registers the HolService, health and reflection services
func registerServices(srv *grpc.Server, a *app) (*health.Server, error) {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		WeaponService:   a.weaponService,
		SeedService:     a.seedService,
		SheetController: a.sheetController,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create handler: %w", err)
	}

	holv1alpha1.RegisterHolServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(holv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	return healthServer, nil
}

// seedOnStartup imports every category once without clearing. Failures are
// logged and never stop the server.
func seedOnStartup(ctx context.Context, a *app) {
	out, err := a.seedService.ImportAll(ctx, &seed.ImportAllInput{Principal: hol.SystemPrincipal})
	if err != nil {
		slog.ErrorContext(ctx, "startup seeding failed", "error", err)
		return
	}
	slog.InfoContext(ctx, "startup seeding finished",
		"created", out.Summary.Created,
		"updated", out.Summary.Updated,
		"skipped", out.Summary.Skipped,
		"failed", out.Summary.Failed)
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
