package v1

import (
	"net/http"

	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/service"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service service.StatsService
	log     *logger.Logger
}

func NewStatsHandler(service service.StatsService, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log,
	}
}

// GetSummary returns the full statistics page payload
func (h *StatsHandler) GetSummary(c *gin.Context) {
	resp, err := h.service.GetStatsSummary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRevenue returns the recurring revenue metrics alone
func (h *StatsHandler) GetRevenue(c *gin.Context) {
	resp, err := h.service.GetRevenueStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPeriodStats returns activity counts for one period (today, week, month)
func (h *StatsHandler) GetPeriodStats(c *gin.Context) {
	period := types.StatsPeriod(c.Param("period"))

	resp, err := h.service.GetPeriodStats(c.Request.Context(), period)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
