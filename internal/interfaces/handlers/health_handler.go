package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lindenb1/impress/internal/domain/services"
	"github.com/lindenb1/impress/internal/interfaces/dto"
	"go.uber.org/zap"
)

type HealthHandler struct {
	healthSvc *services.HealthService
	logger    *zap.Logger
}

func NewHealthHandler(healthSvc *services.HealthService, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{healthSvc: healthSvc, logger: logger}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "OK"})
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.healthSvc.Ready(c.Request.Context()); err != nil {
		h.logger.Error("readiness check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: "Error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "OK"})
}
