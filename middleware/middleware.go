package middleware

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/estante-app/estante/http/request"
	"github.com/estante-app/estante/log"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

func (m *Middleware) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Max-Age", "7200")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoggingRequest tags every request with an id and logs it on the way out.
func (m *Middleware) LoggingRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		clientIP := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			clientIP = host
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, request.RequestIDContextKey, requestID)
		ctx = context.WithValue(ctx, request.ClientIPContextKey, clientIP)

		next.ServeHTTP(w, r.WithContext(ctx))

		log.Debug("Handled request",
			zap.String("request_id", requestID),
			zap.String("client_ip", clientIP),
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
