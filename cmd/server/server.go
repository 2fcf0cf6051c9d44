package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/codequest/internal/config"
	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
	"github.com/KirkDiggler/codequest/internal/handlers/rest"
	"github.com/KirkDiggler/codequest/internal/logging"
)

var (
	grpcPort int
	httpPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the CodeQuest game service on gRPC with a JSON/HTTP mirror.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.Server.GRPCPort = grpcPort
	}
	if httpPort != 0 {
		cfg.Server.HTTPPort = httpPort
	}
	if cfg.Logging.Debug && !debug {
		if logger, err = logging.New(true); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, err := buildApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer game.Close(logger)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	interceptorLogger := logging.InterceptorLogger(logger.Named("grpc"))
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	gamev1.RegisterGameServiceServer(srv, game.handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(gamev1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	router, err := rest.NewRouter(&rest.Config{Game: game.handler, Logger: logger.Named("http")})
	if err != nil {
		return err
	}
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server starting", zap.Int("port", cfg.Server.GRPCPort))
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve grpc: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP server starting", zap.Int("port", cfg.Server.HTTPPort))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown incomplete", zap.Error(err))
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("Servers stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}
