package http

import (
	"context"
	"errors"

	http_router "github.com/lintang-b-s/gps-heatmap/pkg/http/http-router"
	"github.com/lintang-b-s/gps-heatmap/pkg/http/http-router/controllers"
	http_server "github.com/lintang-b-s/gps-heatmap/pkg/http/server"

	"go.uber.org/zap"
)

type Server struct {
	Log *zap.Logger

	config        http_server.Config
	tracksService controllers.TracksService
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	config http_server.Config,
	tracksService controllers.TracksService,
) (*Server, error) {
	if tracksService == nil {
		return nil, errors.New("tracks service is required")
	}
	s.config = config
	s.tracksService = tracksService
	return s, nil
}

func (s *Server) Config() http_server.Config {
	return s.config
}

// Run blocks until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	server := http_router.NewAPI(s.Log)
	return server.Run(ctx, s.config, s.tracksService)
}
