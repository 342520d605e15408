package handler

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/linksnip/linksnip/internal/domain"
	"github.com/linksnip/linksnip/internal/logger"
	"github.com/linksnip/linksnip/internal/service"
	"github.com/linksnip/linksnip/pkg/detector"
	"github.com/linksnip/linksnip/pkg/response"
)

type RedirectResolver interface {
	Resolve(ctx context.Context, rawCode string, meta *domain.ClickMetadata) (*domain.RedirectResult, error)
}

type RedirectHandler struct {
	service      RedirectResolver
	notFoundPage []byte
}

// NewRedirectHandler loads the optional static not-found page once at
// startup; when it is absent the 404 degrades to a JSON body.
func NewRedirectHandler(svc RedirectResolver, notFoundPagePath string) *RedirectHandler {
	h := &RedirectHandler{service: svc}

	if notFoundPagePath != "" {
		if page, err := os.ReadFile(notFoundPagePath); err == nil {
			h.notFoundPage = page
		} else {
			logger.Get().Warn("not-found page unreadable, falling back to JSON", "path", notFoundPagePath, "error", err)
		}
	}

	return h
}

func (h *RedirectHandler) Redirect(c *gin.Context) {
	meta := &domain.ClickMetadata{
		UserAgent:      c.Request.UserAgent(),
		AcceptLanguage: c.GetHeader("Accept-Language"),
		Referrer:       c.Request.Referer(),
		IP:             detector.GetClientIP(c.Request.RemoteAddr, c.GetHeader("X-Forwarded-For"), c.GetHeader("X-Real-IP")),
		Source:         c.Query("src"),
	}

	result, err := h.service.Resolve(c.Request.Context(), c.Param("code"), meta)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}

		logger.FromContext(c.Request.Context()).Error("redirect lookup failed",
			"code", c.Param("code"),
			"error", err,
		)
		response.InternalServerError(c, "failed to resolve short link")
		return
	}

	c.Redirect(http.StatusFound, result.LongURL)
}

func (h *RedirectHandler) notFound(c *gin.Context) {
	if h.notFoundPage != nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", h.notFoundPage)
		return
	}

	response.NotFound(c, "short link not found")
}
