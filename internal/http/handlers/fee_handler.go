// README: Fee quote handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courierfee/internal/modules/fee"
	"courierfee/internal/modules/weather"
)

type FeeHandler struct {
	fee *fee.Service
}

func NewFeeHandler(svc *fee.Service) *FeeHandler {
	return &FeeHandler{fee: svc}
}

// Calculate handles GET /api/v1/fees/calculate?city=tallinn&vehicleType=bike.
func (h *FeeHandler) Calculate(c *gin.Context) {
	city, err := weather.ParseCity(c.Query("city"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	vehicle, err := fee.ParseVehicleType(c.Query("vehicleType"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	total, err := h.fee.Quote(ctx, city, vehicle)
	if err != nil {
		writeFeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fee": total})
}
