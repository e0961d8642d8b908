package controllers

import (
	"bytes"
	_ "embed"
	"net/http"

	helper "github.com/lintang-b-s/gps-heatmap/pkg/http/http-router/router-helper"

	"github.com/julienschmidt/httprouter"
)

//go:embed static/index.html
var indexHTML []byte

// ViewerRoutes serves the map page and the data it plots.
func (api *tracksAPI) ViewerRoutes(group *helper.RouteGroup) {
	group.GET("/", api.index)
	group.GET("/data.js", api.dataJS)
}

func (api *tracksAPI) index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}

func (api *tracksAPI) dataJS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var buf bytes.Buffer
	if err := api.tracksService.WriteViewerData(&buf); err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
