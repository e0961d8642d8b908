package http_server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler:           handler,
		ReadHeaderTimeout: config.Timeout,
		ReadTimeout:       config.Timeout,
		WriteTimeout:      config.Timeout,
		IdleTimeout:       2 * config.Timeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
