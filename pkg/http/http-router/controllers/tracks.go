package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/lintang-b-s/gps-heatmap/pkg/datastructure"
	helper "github.com/lintang-b-s/gps-heatmap/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type tracksAPI struct {
	tracksService TracksService
	log           *zap.Logger
	validate      *validator.Validate
	trans         ut.Translator
}

func New(tracksService TracksService, log *zap.Logger) *tracksAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &tracksAPI{
		tracksService: tracksService,
		log:           log,
		validate:      validate,
		trans:         trans,
	}
}

func (api *tracksAPI) Routes(group *helper.RouteGroup) {
	group.GET("/tracks", api.listTracks)
	group.GET("/tracks/:id", api.getTrack)
	group.GET("/meta", api.getMeta)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// bboxRequest model info
//
//	@Description	bounding box filter for the track list.
type bboxRequest struct {
	MinLat float64 `json:"min_lat" validate:"min=-90,max=90"`
	MinLon float64 `json:"min_lon" validate:"min=-180,max=180"`
	MaxLat float64 `json:"max_lat" validate:"min=-90,max=90,gtefield=MinLat"`
	MaxLon float64 `json:"max_lon" validate:"min=-180,max=180,gtefield=MinLon"`
}

// trackResponse model info
//
//	@Description	a cleaned track with its points as [lat, lon] pairs.
type trackResponse struct {
	datastructure.Track
	Points datastructure.Path `json:"points"`
}

func newTrackResponse(track datastructure.Track) trackResponse {
	return trackResponse{Track: track, Points: track.Path}
}

// parseBBox reads min_lat, min_lon, max_lat and max_lon. All four or none
// must be given; nil means no filter.
func (api *tracksAPI) parseBBox(r *http.Request) (*datastructure.BoundingBox, error) {
	qs := r.URL.Query()
	var (
		request bboxRequest
		given   int
	)
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"min_lat", &request.MinLat},
		{"min_lon", &request.MinLon},
		{"max_lat", &request.MaxLat},
		{"max_lon", &request.MaxLon},
	} {
		v, ok, err := readFloat(qs, f.key)
		if err != nil {
			return nil, err
		}
		if ok {
			given++
			*f.dst = v
		}
	}

	switch given {
	case 0:
		return nil, nil
	case 4:
	default:
		return nil, fmt.Errorf("min_lat, min_lon, max_lat and max_lon must be given together")
	}

	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return nil, fmt.Errorf("validation error: %v", vvString)
	}

	return &datastructure.BoundingBox{
		Min: datastructure.Point{Lat: request.MinLat, Lon: request.MinLon},
		Max: datastructure.Point{Lat: request.MaxLat, Lon: request.MaxLon},
	}, nil
}

// listTracks godoc
// @Summary		list the cleaned tracks, optionally only those crossing a bounding box.
// @Tags			tracks
// @ID list-tracks
// @Param			min_lat	query	number	false	"south edge"
// @Param			min_lon	query	number	false	"west edge"
// @Param			max_lat	query	number	false	"north edge"
// @Param			max_lon	query	number	false	"east edge"
// @Produce		application/json
// @Router			/api/tracks [get]
// @Success		200	{array}	trackResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *tracksAPI) listTracks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bbox, err := api.parseBBox(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	tracks, err := api.tracksService.ListTracks(bbox)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	resp := make([]trackResponse, 0, len(tracks))
	for _, track := range tracks {
		resp = append(resp, newTrackResponse(track))
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// getTrack godoc
// @Summary		get one cleaned track by id.
// @Tags			tracks
// @ID get-track
// @Param			id	path	int	true	"track id"
// @Produce		application/json
// @Router			/api/tracks/{id} [get]
// @Success		200	{object}	trackResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *tracksAPI) getTrack(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil || id < 0 {
		api.BadRequestResponse(w, r, fmt.Errorf("id must be a non-negative integer"))
		return
	}

	track, err := api.tracksService.GetTrack(id)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newTrackResponse(track)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// getMeta godoc
// @Summary		statistics of the build that produced the stored tracks.
// @Tags			tracks
// @ID get-meta
// @Produce		application/json
// @Router			/api/meta [get]
// @Success		200	{object}	kvdb.RunMeta
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *tracksAPI) getMeta(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	meta, err := api.tracksService.GetMeta()
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": meta}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
