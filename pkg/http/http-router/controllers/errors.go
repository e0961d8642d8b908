package controllers

import (
	"errors"
	"net/http"

	"github.com/lintang-b-s/gps-heatmap/pkg"

	"go.uber.org/zap"
)

func (api *tracksAPI) logError(r *http.Request, err error) {
	api.log.Error("request failed",
		zap.String("method", r.Method), zap.String("url", r.URL.String()), zap.Error(err))
}

func (api *tracksAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	var resp errorResponse
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = message

	if err := api.writeJSON(w, status, envelope{"error": resp.Error}, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *tracksAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, pkg.MessageInternalServerError)
}

func (api *tracksAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *tracksAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

// serviceErrorResponse picks the response from the code attached by the usecase.
func (api *tracksAPI) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch code := pkg.ErrorCode(err); {
	case errors.Is(code, pkg.ErrNotFound):
		api.NotFoundResponse(w, r, err)
	case errors.Is(code, pkg.ErrBadParamInput):
		api.BadRequestResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
