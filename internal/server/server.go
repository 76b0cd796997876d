package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"heating_controller/internal/config"
)

const maxHeaderBytes = 1 << 20

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
	timeouts   config.HTTPConfig
}

// New returns a server using the given timeouts. Zero values fall back to
// 10s for headers and writes and 60s for idle connections.
func New(timeouts config.HTTPConfig) *Server {
	if timeouts.ReadHeaderTimeout <= 0 {
		timeouts.ReadHeaderTimeout = 10 * time.Second
	}
	if timeouts.WriteTimeout <= 0 {
		timeouts.WriteTimeout = 10 * time.Second
	}
	if timeouts.IdleTimeout <= 0 {
		timeouts.IdleTimeout = 60 * time.Second
	}
	return &Server{timeouts: timeouts}
}

func (s *Server) newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: s.timeouts.ReadHeaderTimeout,
		WriteTimeout:      s.timeouts.WriteTimeout,
		IdleTimeout:       s.timeouts.IdleTimeout,
	}
}

// normalizeAddr accepts "8080" or ":8080".
func normalizeAddr(port string) string {
	if port == "" || strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// Run blocks serving handler on port. It returns http.ErrServerClosed after
// Shutdown.
func (s *Server) Run(port string, handler http.Handler) error {
	s.httpServer = s.newHTTPServer(normalizeAddr(port), handler)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
