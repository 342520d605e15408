package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linksnip/linksnip/internal/domain"
	"github.com/linksnip/linksnip/internal/logger"
	"github.com/linksnip/linksnip/internal/service"
	"github.com/linksnip/linksnip/pkg/response"
	"github.com/linksnip/linksnip/pkg/summary"
)

type AnalyticsService interface {
	Summarize(ctx context.Context, shortCode string, window *domain.StatsRequest) (*domain.LinkStats, error)
}

type AnalyticsHandler struct {
	service AnalyticsService
}

func NewAnalyticsHandler(svc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

type summaryRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Summary aggregates a link's click log, optionally inside an inclusive
// [from, to] window, and attaches the generated text digest.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	shortCode := c.Param("shortCode")
	if shortCode == "" {
		response.BadRequest(c, "short code is required")
		return
	}

	var req summaryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request body")
			return
		}
	}

	window, err := parseWindow(req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stats, err := h.service.Summarize(c.Request.Context(), shortCode, window)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "short link not found")
			return
		}

		logger.FromContext(c.Request.Context()).Error("stats aggregation failed",
			"short_code", shortCode,
			"error", err,
		)
		response.InternalServerError(c, "failed to aggregate link stats")
		return
	}

	response.OK(c, "stats aggregated", gin.H{
		"short_id": stats.ShortCode,
		"summary":  summary.Generate(stats),
		"stats":    stats,
	})
}

func parseWindow(req summaryRequest) (*domain.StatsRequest, error) {
	if req.From == "" && req.To == "" {
		return nil, nil
	}

	window := &domain.StatsRequest{}

	if req.From != "" {
		from, err := parseTimestamp(req.From)
		if err != nil {
			return nil, fmt.Errorf("from must be an ISO-8601 timestamp")
		}
		window.From = &from
	}

	if req.To != "" {
		to, err := parseTimestamp(req.To)
		if err != nil {
			return nil, fmt.Errorf("to must be an ISO-8601 timestamp")
		}
		window.To = &to
	}

	if window.From != nil && window.To != nil && window.To.Before(*window.From) {
		return nil, fmt.Errorf("to must not precede from")
	}

	return window, nil
}

// parseTimestamp accepts full RFC 3339 timestamps and bare dates.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}
