package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

type httpServer struct {
	inner http.Server

	name string
}

func newHTTPServer(name string, handler http.Handler) *httpServer {
	const (
		readHeaderTimeout = 20 * time.Second
		readTimeout       = 20 * time.Second
		writeTimeout      = 20 * time.Second
	)

	return &httpServer{
		inner: http.Server{
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,

			Handler: handler,
		},

		name: name,
	}
}

func (s *httpServer) String() string {
	return s.name
}

// Serve blocks until `ctx` is done or the listener fails.
func (s *httpServer) Serve(ctx context.Context, l net.Listener) error {
	go func() {
		<-ctx.Done()

		s.inner.Close()
	}()

	if err := s.inner.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *httpServer) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
