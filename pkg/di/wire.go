//go:build wireinject

//go:generate wire
package di

import (
	"github.com/lintang-b-s/gps-heatmap/pkg/builder"
	"github.com/lintang-b-s/gps-heatmap/pkg/di/config"
	kv_di "github.com/lintang-b-s/gps-heatmap/pkg/di/kv"
	logger_di "github.com/lintang-b-s/gps-heatmap/pkg/di/logger"
	"github.com/lintang-b-s/gps-heatmap/pkg/geo"
	"github.com/lintang-b-s/gps-heatmap/pkg/heatmap"
	heatmapHttp "github.com/lintang-b-s/gps-heatmap/pkg/http"
	"github.com/lintang-b-s/gps-heatmap/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/gps-heatmap/pkg/http/usecases"
	"github.com/lintang-b-s/gps-heatmap/pkg/kvdb"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	config.New,
	logger_di.New,
	kv_di.New,
)

var buildSet = wire.NewSet(
	defaultSet,
	NewLoader,
	NewCleaner,
	NewBuildOptions,
	builder.New,
	wire.Bind(new(builder.TrackLoader), new(*geo.Loader)),
	wire.Bind(new(builder.PathCleaner), new(*heatmap.Cleaner)),
	wire.Bind(new(builder.TrackSink), new(*kvdb.KVDB)),
)

var serveSet = wire.NewSet(
	defaultSet,
	usecases.New,
	NewServerConfig,
	NewTracksAPIServer,
	wire.Bind(new(usecases.TrackStore), new(*kvdb.KVDB)),
	wire.Bind(new(controllers.TracksService), new(*usecases.TracksService)),
)

func InitializeBuilder() (*builder.Builder, func(), error) {

	panic(wire.Build(buildSet))
}

func InitializeTracksAPIServer() (*heatmapHttp.Server, func(), error) {

	panic(wire.Build(serveSet))
}
