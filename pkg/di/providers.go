package di

import (
	"github.com/lintang-b-s/gps-heatmap/pkg/builder"
	"github.com/lintang-b-s/gps-heatmap/pkg/di/config"
	"github.com/lintang-b-s/gps-heatmap/pkg/geo"
	"github.com/lintang-b-s/gps-heatmap/pkg/heatmap"
	heatmapHttp "github.com/lintang-b-s/gps-heatmap/pkg/http"
	"github.com/lintang-b-s/gps-heatmap/pkg/http/http-router/controllers"
	http_server "github.com/lintang-b-s/gps-heatmap/pkg/http/server"
	"github.com/lintang-b-s/gps-heatmap/pkg/output"

	"go.uber.org/zap"
)

func NewLoader(log *zap.Logger, cfg *config.Config) *geo.Loader {
	return geo.NewLoader(log, cfg.Workers, true)
}

func NewCleaner(log *zap.Logger, cfg *config.Config) *heatmap.Cleaner {
	return heatmap.NewCleaner(log, cfg.Radius)
}

func NewBuildOptions(cfg *config.Config) (builder.Options, error) {
	format, err := output.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return builder.Options{}, err
	}
	return builder.Options{
		InputDir:   cfg.InputDir,
		OutputFile: cfg.OutputFile,
		Format:     format,
	}, nil
}

func NewServerConfig(cfg *config.Config) http_server.Config {
	return http_server.Config{
		Port:    cfg.APIPort,
		Timeout: cfg.APITimeout,
	}
}

func NewTracksAPIServer(log *zap.Logger, config http_server.Config,
	tracksService controllers.TracksService) (*heatmapHttp.Server, error) {
	api := heatmapHttp.NewServer(log)

	apiService, err := api.Use(config, tracksService)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}
