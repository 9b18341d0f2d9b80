package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler defines the interface for the liveness probe endpoint
type HealthHandler interface {
	Check(ctx *gin.Context)
}

type healthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() HealthHandler {
	return &healthHandler{}
}

// Check handles the GET request used by container health probes
// @Summary Health check
// @Description Report that the application server is up and able to serve requests.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health-check [get]
func (handler *healthHandler) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Msg: "success"})
}
