package v1

import (
	"net/http"
	"strconv"

	"github.com/lunaria/lunaria/internal/api/dto"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/service"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

func NewCustomerHandler(service service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// ListCustomers returns one page of customers, optionally narrowed to a
// segment via ?segment=active|trial|expired
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var filter types.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	segment := types.CustomerSegment(c.DefaultQuery("segment", string(types.CustomerSegmentAll)))

	resp, err := h.service.ListCustomers(c.Request.Context(), segment, &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	resp, err := h.service.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) GetSubscriptionHistory(c *gin.Context) {
	resp, err := h.service.GetSubscriptionHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetHoroscopes returns the customer's recent horoscopes, ?days=N lookback
func (h *CustomerHandler) GetHoroscopes(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("days must be an integer").
				Mark(ierr.ErrValidation))
			return
		}
		days = parsed
	}

	resp, err := h.service.GetCustomerHoroscopes(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) GetTimeline(c *gin.Context) {
	resp, err := h.service.GetTimeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
