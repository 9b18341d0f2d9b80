package proxy

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/Renz00/recipe-vault/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse mirrors the application server's error body shape so edge
// failures look the same to clients.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ForwardHandler relays requests to the application server.
type ForwardHandler interface {
	Forward(ctx *gin.Context)
}

// forwardHandler wraps a single-host reverse proxy with a body size cap.
type forwardHandler struct {
	reverseProxy *httputil.ReverseProxy
	maxBodyBytes int64
	logger       logger.Logger
}

// NewForwardHandler creates a new forwardHandler relaying to the upstream
// base URL. Request bodies beyond maxBodyMB are rejected with 413.
func NewForwardHandler(upstream string, maxBodyMB int, logger logger.Logger) (ForwardHandler, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("failed to parse upstream url %s: %w", upstream, err)
	}

	handler := &forwardHandler{
		reverseProxy: httputil.NewSingleHostReverseProxy(target),
		maxBodyBytes: int64(maxBodyMB) << 20,
		logger:       logger,
	}
	handler.reverseProxy.ErrorHandler = handler.upstreamError
	return handler, nil
}

// Forward relays the request to the application server. The reverse proxy
// appends the client address to X-Forwarded-For on the way through.
func (handler *forwardHandler) Forward(ctx *gin.Context) {
	if ctx.Request.ContentLength > handler.maxBodyBytes {
		var errorResponse ErrorResponse
		errorResponse.Message = "request body too large"
		ctx.JSON(http.StatusRequestEntityTooLarge, errorResponse)
		return
	}

	// Chunked uploads carry no Content-Length, so the cap is enforced
	// while the body streams upstream.
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxBodyBytes)
	handler.reverseProxy.ServeHTTP(ctx.Writer, ctx.Request)
}

// upstreamError answers for the application server when the relay fails.
func (handler *forwardHandler) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		writeProxyError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	handler.logger.Warn("Upstream request failed: ", err)
	writeProxyError(w, http.StatusBadGateway, "application server unavailable")
}

// writeProxyError emits the JSON error body outside a gin context, since
// the reverse proxy error hook only sees the raw response writer.
func writeProxyError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}
