package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// TLSConfig carries the certificate pair for HTTPS serving. A zero value
// means plain HTTP.
type TLSConfig struct {
	Enable   bool
	CertFile string
	KeyFile  string
}

// HTTPServer wraps an http.Server with address and lifecycle methods.
type HTTPServer struct {
	server *http.Server
	tls    TLSConfig
}

// NewHTTPServer creates an HTTPServer serving handler on addr.
func NewHTTPServer(handler http.Handler, addr string, tls TLSConfig) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		tls: tls,
	}
}

// Start begins serving. It blocks until the server stops and returns nil
// on graceful shutdown.
func (s *HTTPServer) Start() error {
	var err error
	if s.tls.Enable {
		err = s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
	} else {
		err = s.server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.server.Addr
}
