package service

import (
	"github.com/lunaria/lunaria/internal/cache"
	"github.com/lunaria/lunaria/internal/config"
	"github.com/lunaria/lunaria/internal/domain/customer"
	"github.com/lunaria/lunaria/internal/domain/horoscope"
	"github.com/lunaria/lunaria/internal/domain/message"
	"github.com/lunaria/lunaria/internal/domain/plan"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache

	// Repositories
	CustomerRepo     customer.Repository
	PlanRepo         plan.Repository
	SubscriptionRepo subscription.Repository
	HoroscopeRepo    horoscope.Repository
	MessageRepo      message.Repository
}
