package handler

import (
	"context"
	"errors"
	"net/http"

	"przypadek/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// statusClientClosedRequest marks drills abandoned by the caller (nginx convention)
const statusClientClosedRequest = 499

// ErrorResponse is the body of every failed drill request
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes wires the HTTP endpoints onto the router
func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/healthz", h.Health)
	router.Any("/", h.Drill)
}

// Drill serves a freshly translated case drill.
// All methods get the same response.
func (h *Handler) Drill(c *gin.Context) {
	drill, err := h.drills.Next(c.Request.Context())
	if errors.Is(err, context.Canceled) {
		h.logger.Warn("Client went away before drill was ready",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}
	if err != nil {
		_ = c.Error(err)

		status := http.StatusBadGateway
		message := "translation failed"
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
			message = "translation timed out"
		}

		h.logger.Error("Failed to serve drill",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Int("status", status),
			zap.Error(err),
		)
		c.JSON(status, ErrorResponse{Error: message})
		return
	}

	c.Header("Access-Control-Allow-Origin", "*")
	c.JSON(http.StatusOK, drill)
}

// Health reports service status along with dependency checks
func (h *Handler) Health(c *gin.Context) {
	status := "healthy"
	checkResults := make(map[string]string)

	for name, checkFunc := range h.checks {
		if err := checkFunc(); err != nil {
			checkResults[name] = "unhealthy: " + err.Error()
			status = "unhealthy"
		} else {
			checkResults[name] = "healthy"
		}
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:  status,
		Service: h.service,
		Version: h.version,
		Checks:  checkResults,
	})
}
