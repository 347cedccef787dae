package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/residensync/residensync-backend/api/routes"
	"github.com/residensync/residensync-backend/internal/approvals"
	"github.com/residensync/residensync-backend/internal/auth"
	"github.com/residensync/residensync-backend/internal/docrequests"
	"github.com/residensync/residensync-backend/internal/lostfound"
	"github.com/residensync/residensync-backend/internal/pets"
	"github.com/residensync/residensync-backend/internal/posts"
	"github.com/residensync/residensync-backend/internal/users"
	"github.com/residensync/residensync-backend/pkg/auth/session"
	"github.com/residensync/residensync-backend/pkg/config"
	"github.com/residensync/residensync-backend/pkg/db"
	"github.com/residensync/residensync-backend/pkg/logger"
	"github.com/residensync/residensync-backend/pkg/metrics"
	"github.com/residensync/residensync-backend/pkg/migrate"
	"github.com/residensync/residensync-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		TxRunner:       dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	userService, err := users.NewService(users.ServiceParams{UserRepo: userRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	approvalService, err := approvals.NewService(approvals.ServiceParams{UserRepo: userRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create approval service", err)
		os.Exit(1)
	}

	postService, err := posts.NewService(posts.ServiceParams{
		PostRepo:   posts.NewRepository(dbClient.DB()),
		AuthorRepo: userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create post service", err)
		os.Exit(1)
	}

	lostFoundService, err := lostfound.NewService(lostfound.ServiceParams{
		ItemRepo:     lostfound.NewRepository(dbClient.DB()),
		ReporterRepo: userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create lost-and-found service", err)
		os.Exit(1)
	}

	docRequestService, err := docrequests.NewService(docrequests.ServiceParams{
		RequestRepo:   docrequests.NewRepository(dbClient.DB()),
		RequesterRepo: userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create document-request service", err)
		os.Exit(1)
	}

	petService, err := pets.NewService(pets.ServiceParams{
		PetRepo: pets.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create pet service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			DBPinger:        dbClient,
			RedisPinger:     redisClient,
			SessionChecker:  sessionManager,
			HTTPMetrics:     httpMetrics,
			Registry:        registry,
			AuthService:     authService,
			RegisterService: registerService,
			UserService:     userService,
			ApprovalService: approvalService,
			PostService:     postService,
			LostFoundSvc:    lostFoundService,
			DocRequestSvc:   docRequestService,
			PetService:      petService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
