package repository

import (
	"github.com/lunaria/lunaria/internal/domain/customer"
	"github.com/lunaria/lunaria/internal/domain/horoscope"
	"github.com/lunaria/lunaria/internal/domain/message"
	"github.com/lunaria/lunaria/internal/domain/plan"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/postgres"
	postgresRepo "github.com/lunaria/lunaria/internal/repository/postgres"
)

func NewCustomerRepository(db *postgres.DB, logger *logger.Logger) customer.Repository {
	return postgresRepo.NewCustomerRepository(db, logger)
}

func NewServicePlanRepository(db *postgres.DB, logger *logger.Logger) plan.Repository {
	return postgresRepo.NewServicePlanRepository(db, logger)
}

func NewSubscriptionRepository(db *postgres.DB, logger *logger.Logger) subscription.Repository {
	return postgresRepo.NewSubscriptionRepository(db, logger)
}

func NewHoroscopeRepository(db *postgres.DB, logger *logger.Logger) horoscope.Repository {
	return postgresRepo.NewHoroscopeRepository(db, logger)
}

func NewMessageRepository(db *postgres.DB, logger *logger.Logger) message.Repository {
	return postgresRepo.NewMessageRepository(db, logger)
}
