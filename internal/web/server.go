package web

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ItsNotGoodName/webdesk/internal/core"
)

const shutdownTimeout = 5 * time.Second

// Server is a suture service that listens on Address until its context ends.
type Server struct {
	Address string
	Handler http.Handler
}

func NewServer(address string, handler http.Handler) Server {
	return Server{
		Address: address,
		Handler: handler,
	}
}

func (s Server) String() string {
	return "web.Server"
}

func (s Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Address)
	if err != nil {
		return err
	}

	return s.serve(ctx, ln)
}

func (s Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errC := make(chan error, 1)
	go func() { errC <- srv.Serve(ln) }()

	slog.Info("Listening", "package", "web", "address", ln.Addr().String(), "url", core.BrowseURL(ln.Addr().String()))

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errC; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
