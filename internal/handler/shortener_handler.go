package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linksnip/linksnip/internal/domain"
	"github.com/linksnip/linksnip/internal/logger"
	"github.com/linksnip/linksnip/internal/service"
	"github.com/linksnip/linksnip/pkg/response"
	"github.com/linksnip/linksnip/pkg/validator"
)

type ShortenerService interface {
	CreateLink(ctx context.Context, req *domain.CreateLinkRequest) (*domain.Link, error)
	ListLinks(ctx context.Context, ownerID string) ([]domain.Link, error)
}

type ShortenerHandler struct {
	service ShortenerService
	baseURL string
}

func NewShortenerHandler(svc ShortenerService, baseURL string) *ShortenerHandler {
	return &ShortenerHandler{
		service: svc,
		baseURL: baseURL,
	}
}

func (h *ShortenerHandler) ShortenURL(c *gin.Context) {
	var req domain.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if validationErrors := validator.Validate(&req); len(validationErrors) > 0 {
		response.ValidationErrors(c, validationErrors)
		return
	}

	if req.Alias != "" && validator.IsReservedKeyword(req.Alias) {
		response.BadRequest(c, fmt.Sprintf("alias %q is reserved", req.Alias))
		return
	}

	link, err := h.service.CreateLink(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAliasTaken):
			response.Conflict(c, "alias already taken")
		case errors.Is(err, service.ErrUnsafeURL):
			response.UnprocessableEntity(c, "destination URL was flagged as unsafe")
		default:
			logger.FromContext(c.Request.Context()).Error("link creation failed", "error", err)
			response.InternalServerError(c, "failed to create short link")
		}
		return
	}

	response.Created(c, "short link created", gin.H{
		"short_url":  fmt.Sprintf("%s/%s", h.baseURL, link.ShortCode),
		"short_code": link.ShortCode,
		"long_url":   link.LongURL,
	})
}

func (h *ShortenerHandler) ListLinks(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		response.BadRequest(c, "owner_id is required")
		return
	}

	links, err := h.service.ListLinks(c.Request.Context(), ownerID)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("link listing failed", "error", err)
		response.InternalServerError(c, "failed to list links")
		return
	}

	response.OK(c, "links retrieved", links)
}
