package v1

import (
	"net/http"
	"time"

	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/service"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/gin-gonic/gin"
)

type HoroscopeHandler struct {
	service service.HoroscopeService
	log     *logger.Logger
}

func NewHoroscopeHandler(service service.HoroscopeService, log *logger.Logger) *HoroscopeHandler {
	return &HoroscopeHandler{
		service: service,
		log:     log,
	}
}

func (h *HoroscopeHandler) List(c *gin.Context) {
	var filter types.HoroscopeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByDate returns every horoscope generated for one day (YYYY-MM-DD)
func (h *HoroscopeHandler) GetByDate(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.Local)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Date must be formatted as YYYY-MM-DD").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetByDate(c.Request.Context(), date)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HoroscopeHandler) GetArchiveStats(c *gin.Context) {
	resp, err := h.service.GetArchiveStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
