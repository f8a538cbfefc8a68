package node

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Config describes where the node's HTTP server runs.
type Config interface {
	// IP provides the IP address where the server is intended to run.
	IP() string
	// Port provides the port where the server is supposed to run.
	Port() string
}

// Start begins the node's operation as a http server serving handler.
//
// It blocks until ctx is cancelled, then waits up to shutdownTimeout for
// in-flight requests before returning.
func Start(ctx context.Context, cfg Config, handler http.Handler, shutdownTimeout time.Duration, log zerolog.Logger) error {
	if err := checkValidPort(cfg.Port()); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(cfg.IP(), cfg.Port()))
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	log.Info().Str("addr", ln.Addr().String()).Msg("starting server")

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	return gracefulShutdown(server, shutdownTimeout, log)
}

// gracefulShutdown gives currently serving requests until the deadline.
func gracefulShutdown(server *http.Server, timeout time.Duration, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info().Msg("shutting down")
	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return err
	}
	if portInt < 0 || portInt > 65535 {
		return ErrInvalidPort
	}
	return nil
}
