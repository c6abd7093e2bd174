// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courierfee/internal/modules/fee"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeFeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fee.ErrNoObservationData):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, fee.ErrVehicleForbidden):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
