package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linksnip/linksnip/internal/domain"
	"github.com/linksnip/linksnip/internal/service"
	"github.com/linksnip/linksnip/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func redirectRouter(h *RedirectHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:code", h.Redirect)
	return router
}

func TestRedirect_Found(t *testing.T) {
	mockResolver := new(mocks.MockRedirectResolver)
	h := NewRedirectHandler(mockResolver, "")
	router := redirectRouter(h)

	result := &domain.RedirectResult{
		LinkID:    primitive.NewObjectID(),
		ShortCode: "abc123",
		LongURL:   "https://example.com",
	}
	mockResolver.On("Resolve", mock.Anything, "abc123", mock.AnythingOfType("*domain.ClickMetadata")).
		Return(result, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Location"))
	mockResolver.AssertExpectations(t)
}

func TestRedirect_PassesRequestMetadata(t *testing.T) {
	mockResolver := new(mocks.MockRedirectResolver)
	h := NewRedirectHandler(mockResolver, "")
	router := redirectRouter(h)

	result := &domain.RedirectResult{ShortCode: "abc123", LongURL: "https://example.com"}
	mockResolver.On("Resolve", mock.Anything, "abc123", mock.MatchedBy(func(meta *domain.ClickMetadata) bool {
		return meta.UserAgent == "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X)" &&
			meta.AcceptLanguage == "fr" &&
			meta.Source == "newsletter" &&
			meta.Referrer == "https://news.example.org" &&
			meta.IP == "203.0.113.9"
	})).Return(result, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/abc123?src=newsletter", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X)")
	req.Header.Set("Accept-Language", "fr")
	req.Header.Set("Referer", "https://news.example.org")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	mockResolver.AssertExpectations(t)
}

func TestRedirect_UnknownCode_JSONFallback(t *testing.T) {
	mockResolver := new(mocks.MockRedirectResolver)
	h := NewRedirectHandler(mockResolver, "")
	router := redirectRouter(h)

	mockResolver.On("Resolve", mock.Anything, "missing", mock.Anything).
		Return(nil, service.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), "short link not found")
}

func TestRedirect_UnknownCode_StaticPage(t *testing.T) {
	page := filepath.Join(t.TempDir(), "404.html")
	assert.NoError(t, os.WriteFile(page, []byte("<html><body>gone</body></html>"), 0644))

	mockResolver := new(mocks.MockRedirectResolver)
	h := NewRedirectHandler(mockResolver, page)
	router := redirectRouter(h)

	mockResolver.On("Resolve", mock.Anything, "missing", mock.Anything).
		Return(nil, service.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "gone")
}

func TestRedirect_StoreFailure_InternalError(t *testing.T) {
	mockResolver := new(mocks.MockRedirectResolver)
	h := NewRedirectHandler(mockResolver, "")
	router := redirectRouter(h)

	mockResolver.On("Resolve", mock.Anything, "abc123", mock.Anything).
		Return(nil, errors.New("no reachable servers")).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to resolve short link")
}
