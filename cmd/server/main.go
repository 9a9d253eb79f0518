package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/lunaria/lunaria/internal/api"
	v1 "github.com/lunaria/lunaria/internal/api/v1"
	"github.com/lunaria/lunaria/internal/cache"
	"github.com/lunaria/lunaria/internal/config"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/postgres"
	"github.com/lunaria/lunaria/internal/repository"
	"github.com/lunaria/lunaria/internal/service"
)

func main() {
	// Optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := postgres.NewDB(cfg, logg)
	if err != nil {
		logg.Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	resultCache := cache.NewInMemoryCache(cfg)

	params := service.ServiceParams{
		Logger:           logg,
		Config:           cfg,
		DB:               db,
		Cache:            resultCache,
		CustomerRepo:     repository.NewCustomerRepository(db, logg),
		PlanRepo:         repository.NewServicePlanRepository(db, logg),
		SubscriptionRepo: repository.NewSubscriptionRepository(db, logg),
		HoroscopeRepo:    repository.NewHoroscopeRepository(db, logg),
		MessageRepo:      repository.NewMessageRepository(db, logg),
	}

	handlers := api.Handlers{
		Dashboard:    v1.NewDashboardHandler(service.NewDashboardService(params), logg),
		Stats:        v1.NewStatsHandler(service.NewStatsService(params), logg),
		Customer:     v1.NewCustomerHandler(service.NewCustomerService(params), logg),
		Subscription: v1.NewSubscriptionHandler(service.NewSubscriptionService(params), logg),
		Horoscope:    v1.NewHoroscopeHandler(service.NewHoroscopeService(params), logg),
		Message:      v1.NewMessageHandler(service.NewMessageService(params), logg),
	}

	router := api.NewRouter(handlers)

	logg.Infow("starting server", "address", cfg.Server.Address)
	if err := router.Run(cfg.Server.Address); err != nil {
		logg.Fatalw("server stopped", "error", err)
	}
}
