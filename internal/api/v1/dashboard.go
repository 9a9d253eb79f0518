package v1

import (
	"net/http"
	"strconv"

	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewDashboardHandler(service service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

// GetCustomerStats returns the headline customer classification
func (h *DashboardHandler) GetCustomerStats(c *gin.Context) {
	resp, err := h.service.GetCustomerStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetHoroscopeCompletion returns today's horoscope generation progress
func (h *DashboardHandler) GetHoroscopeCompletion(c *gin.Context) {
	resp, err := h.service.GetHoroscopeCompletion(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetExpiringSubscriptions returns the bucketed expiry report
func (h *DashboardHandler) GetExpiringSubscriptions(c *gin.Context) {
	horizon := service.DefaultExpiryHorizonDays
	if raw := c.Query("horizon_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("horizon_days must be an integer").
				Mark(ierr.ErrValidation))
			return
		}
		horizon = parsed
	}

	resp, err := h.service.GetExpiringSubscriptions(c.Request.Context(), horizon)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
