package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/balancer"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/clickhouse"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/config"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/dal"
	grpcserver "github.com/Billy-Davies-2/futsal-team-maker/internal/grpc"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/handlers"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/metrics"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/mocks"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/pubsub"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/session"
	pb "github.com/Billy-Davies-2/futsal-team-maker/proto/teams/v1"
)

const sweepInterval = 5 * time.Minute

// broker is the upstream event bus: embedded NATS locally, JetStream in production
type broker interface {
	pubsub.Upstream
	Connected() bool
	Close()
}

// analytics records balances and summarizes them for the health check
type analytics interface {
	session.Recorder
	handlers.Analytics
	Close() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize logger first
	logger.Init(cfg.LogLevel, cfg.Development())
	logger.Info("Starting futsal team maker", "environment", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := openStore(cfg)
	defer store.Close()

	bus := openBroker(cfg)
	defer bus.Close()
	ps := pubsub.NewWithUpstream(bus)

	recorder := openAnalytics(cfg)
	defer recorder.Close()

	m := metrics.New()
	manager := session.NewManager(store, balancer.New(),
		session.WithPublisher(ps),
		session.WithRecorder(recorder),
		session.WithMetrics(m),
		session.WithDefaults(cfg.DefaultTeamCount, cfg.DefaultRosterSize),
		session.WithTTL(cfg.SessionTTL),
	)
	if cfg.SessionTTL > 0 {
		manager.StartSweeper(ctx, sweepInterval)
	} else {
		logger.Info("Session expiry disabled")
	}

	// Start gRPC server in a goroutine
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.UnaryLogger))
	pb.RegisterTeamServiceServer(grpcServer, grpcserver.NewServer(manager))

	grpcAddr := "0.0.0.0:" + cfg.GRPCPort
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logger.Error("Failed to listen for gRPC", "error", err, "port", cfg.GRPCPort)
		log.Fatalf("Failed to listen for gRPC: %v", err)
	}
	go func() {
		logger.Info("gRPC server starting", "address", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("Failed to serve gRPC", "error", err)
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	// Set up HTTP routes
	mux := http.NewServeMux()
	handlers.NewAPIHandlers(manager, ps).Register(mux)
	handlers.NewHealthHandlers(store, recorder, bus).Register(mux)
	mux.Handle("/metrics", m.Handler())

	addr := "0.0.0.0:" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// open SSE streams hold Shutdown until the deadline
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown did not complete", "error", err)
	}
	grpcServer.GracefulStop()
}

func openStore(cfg config.Config) dal.SessionDAL {
	switch cfg.DBDriver {
	case "sqlite":
		store, err := dal.NewSQLiteDAL(cfg.SQLiteFile)
		if err != nil {
			logger.Error("Failed to initialize SQLite", "error", err)
			log.Fatalf("Failed to initialize SQLite: %v", err)
		}
		logger.Info("Connected to SQLite database", "file", cfg.SQLiteFile)
		return store
	case "postgres":
		store, err := dal.NewPostgresDAL(cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize Postgres", "error", err)
			log.Fatalf("Failed to initialize Postgres: %v", err)
		}
		logger.Info("Connected to Postgres database")
		return store
	case "mockpostgres":
		store, err := mocks.NewMockPostgresDAL(cfg.SQLiteFile)
		if err != nil {
			logger.Error("Failed to initialize mock Postgres", "error", err)
			log.Fatalf("Failed to initialize mock Postgres: %v", err)
		}
		return store
	default:
		logger.Info("Using in-memory data store")
		return dal.NewMemoryDAL()
	}
}

// openBroker uses embedded NATS in development mode, real NATS in production
func openBroker(cfg config.Config) broker {
	if cfg.Development() {
		logger.Info("Starting embedded NATS server for local development")
		opts := pubsub.DefaultEmbeddedNATSOptions()
		opts.Subject = cfg.NATSSubject
		embedded, err := pubsub.NewEmbeddedNATSPubSub(opts)
		if err != nil {
			logger.Error("Failed to initialize embedded NATS", "error", err)
			log.Fatalf("Failed to initialize embedded NATS: %v", err)
		}
		logger.Info("Embedded NATS server ready", "url", embedded.GetServerURL())
		return embedded
	}

	logger.Info("Using real NATS JetStream for production")
	remote, err := pubsub.NewNATSPubSub(cfg.NATSURL, cfg.NATSSubject)
	if err != nil {
		logger.Error("Failed to initialize NATS", "error", err)
		log.Fatalf("Failed to initialize NATS: %v", err)
	}
	logger.Info("Connected to NATS", "url", cfg.NATSURL)
	return remote
}

// openAnalytics uses an in-memory recorder in development so no ClickHouse
// server is required
func openAnalytics(cfg config.Config) analytics {
	if cfg.Development() {
		logger.Info("Using mock ClickHouse for local development (no ClickHouse server required)")
		return mocks.NewMockAnalytics()
	}

	client, err := clickhouse.NewClient(cfg.ClickHouseAddr, cfg.ClickHouseDB, cfg.ClickHouseUser, cfg.ClickHousePassword)
	if err != nil {
		logger.Error("Failed to initialize ClickHouse", "error", err, "address", cfg.ClickHouseAddr)
		log.Fatalf("Failed to initialize ClickHouse: %v", err)
	}
	logger.Info("Connected to ClickHouse", "address", cfg.ClickHouseAddr, "database", cfg.ClickHouseDB)
	return client
}
