package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/gps-heatmap/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/gps-heatmap/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/gps-heatmap/pkg/http/server"
	"github.com/lintang-b-s/gps-heatmap/pkg/metrics"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the router with the full middleware chain.
func (api *API) Handler(tracksService controllers.TracksService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	tracksRoutes := controllers.New(tracksService, api.log)
	tracksRoutes.Routes(router_helper.NewRouteGroup(router, "/api"))
	tracksRoutes.ViewerRoutes(router_helper.NewRouteGroup(router, "/"))
	router.Handler(http.MethodGet, "/metrics", metrics.Handler())

	return alice.New(corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, metrics.Middleware, Heartbeat("healthz"), Logger(api.log), Labels).Then(router)
}

// Run serves until ctx is cancelled, then shuts the server down.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	tracksService controllers.TracksService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(tracksService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		defer cancel()
		api.log.Info("shutting down API")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
