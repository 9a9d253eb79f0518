package service

import (
	"time"

	"github.com/lunaria/lunaria/internal/domain/customer"
	"github.com/lunaria/lunaria/internal/domain/horoscope"
	"github.com/lunaria/lunaria/internal/domain/message"
	"github.com/lunaria/lunaria/internal/domain/plan"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/shopspring/decimal"
)

func fixturePlan(id, name string, price float64, durationDays int, isTrial bool) *plan.ServicePlan {
	return &plan.ServicePlan{
		ID:           id,
		Name:         name,
		Price:        decimal.NewFromFloat(price),
		DurationDays: durationDays,
		IsTrial:      isTrial,
		IsActive:     true,
		BaseModel:    types.GetDefaultBaseModel(),
	}
}

func fixtureCustomer(id, name, sign, ascendant string) *customer.Customer {
	return &customer.Customer{
		ID:          id,
		Name:        name,
		PhoneNumber: "+3933300" + id,
		ZodiacSign:  sign,
		Ascendant:   ascendant,
		BaseModel:   types.GetDefaultBaseModel(),
	}
}

func fixtureSubscription(id, customerID, planID string, createdAt, endDate time.Time, status types.SubscriptionStatus, isActive bool) *subscription.Subscription {
	return &subscription.Subscription{
		ID:                 id,
		CustomerID:         customerID,
		PlanID:             planID,
		StartDate:          createdAt,
		EndDate:            endDate,
		IsActive:           isActive,
		SubscriptionStatus: status,
		PaymentStatus:      types.PaymentStatusPaid,
		BaseModel: types.BaseModel{
			Status:    types.StatusPublished,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
}

func fixtureHoroscope(id string, date time.Time, sign, ascendant string) *horoscope.DailyHoroscope {
	return &horoscope.DailyHoroscope{
		ID:            id,
		HoroscopeDate: date,
		ZodiacSign:    sign,
		Ascendant:     ascendant,
		Text:          "The stars align for " + sign,
		BaseModel:     types.GetDefaultBaseModel(),
	}
}

func fixtureMessage(id, phone, pushName, messageType string, createdAt time.Time) *message.Message {
	return &message.Message{
		ID:          id,
		PhoneNumber: phone,
		PushName:    pushName,
		MessageType: messageType,
		Body:        "hello",
		CreatedAt:   createdAt,
	}
}
