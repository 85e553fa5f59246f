package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outfitcast/internal/domain/outfitcast"
	"github.com/yanqian/outfitcast/internal/infra/config"
	apperrors "github.com/yanqian/outfitcast/pkg/errors"
)

// Handler wires the HTTP transport to the forecast service.
type Handler struct {
	forecastSvc     outfitcast.Service
	strictLocations bool
	known           map[string]struct{}
	logger          *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, forecastSvc outfitcast.Service, logger *slog.Logger) *Handler {
	locations := forecastSvc.Locations()
	known := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		known[loc] = struct{}{}
	}
	return &Handler{
		forecastSvc:     forecastSvc,
		strictLocations: cfg.Forecast.StrictLocations,
		known:           known,
		logger:          logger.With("component", "http.handler"),
	}
}

// Forecast returns the synthetic weather, hourly outlook and outfit for a location.
func (h *Handler) Forecast(c *gin.Context) {
	var req outfitcast.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	// Catalog membership is a transport concern; blank keys are left to the service.
	if h.strictLocations && strings.TrimSpace(req.Location) != "" {
		if _, ok := h.known[req.Location]; !ok {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "unknown_location", "location is not in the supported catalog", nil))
			return
		}
	}

	resp, err := h.forecastSvc.Forecast(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "forecast_failed"
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			status = http.StatusBadRequest
			code = apperrors.CodeInvalidInput
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListLocations returns the location keys accepted by Forecast.
func (h *Handler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.forecastSvc.Locations()})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
