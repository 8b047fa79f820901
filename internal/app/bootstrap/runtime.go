package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	cacheadapter "github.com/Cherry-CIC/Cherry-Backend/internal/adapters/cache"
	eventadapter "github.com/Cherry-CIC/Cherry-Backend/internal/adapters/events"
	httpadapter "github.com/Cherry-CIC/Cherry-Backend/internal/adapters/http"
	mongoadapter "github.com/Cherry-CIC/Cherry-Backend/internal/adapters/mongo"
	"github.com/Cherry-CIC/Cherry-Backend/internal/adapters/security"
	stripeadapter "github.com/Cherry-CIC/Cherry-Backend/internal/adapters/stripe"
	"github.com/Cherry-CIC/Cherry-Backend/internal/application"
	"github.com/Cherry-CIC/Cherry-Backend/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	grpcServer *grpc.Server
	grpcLis    net.Listener
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping cherry backend", "http_port", cfg.HTTPPort, "grpc_port", cfg.GRPCPort)

	mongoClient, db, err := mongoadapter.Connect(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("init redis client: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	var verifier ports.TokenVerifier
	if cfg.FirebaseCredentialsFile != "" {
		verifier, err = security.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			_ = redisClient.Close()
			_ = mongoClient.Disconnect(ctx)
			return nil, fmt.Errorf("init firebase verifier: %w", err)
		}
	} else {
		logger.Warn("using dev token verifier for local/dev runtime")
		verifier = security.NewDevTokenVerifier(cfg.DevTokenSecret)
	}

	repos := mongoadapter.NewRepositories(db)
	gateway := stripeadapter.NewGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName:         cfg.ServiceID,
			Currency:            cfg.Currency,
			SurchargeMinorUnits: cfg.SurchargeMinorUnits,
			PublishableKey:      cfg.StripePublishableKey,
			FrontendBaseURL:     cfg.FrontendBaseURL,
			EventDedupTTL:       cfg.EventDedupTTL,
		},
		Users:      repos.Users,
		Orders:     repos.Orders,
		Products:   repos.Products,
		Categories: repos.Categories,
		Charities:  repos.Charities,
		Gateway:    gateway,
		Dedup:      cacheadapter.NewRedisEventDedupStore(redisClient),
		Publisher:  eventadapter.NewLoggingPublisher(logger),
	})

	handler := httpadapter.NewHandler(svc, verifier)
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		_ = redisClient.Close()
		_ = mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("listen gRPC: %w", err)
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		grpcServer: grpcServer,
		grpcLis:    lis,
		cleanupFn: func(ctx context.Context) {
			_ = redisClient.Close()
			_ = mongoClient.Disconnect(ctx)
		},
	}, nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		r.logger.Info("grpc server started", "addr", r.grpcLis.Addr().String())
		if err := r.grpcServer.Serve(r.grpcLis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.grpcServer.GracefulStop()
	r.cleanupFn(shutdownCtx)
	return nil
}
