package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/spellkit-go/spellkit/pkg"

	"go.uber.org/zap"
)

// writeJSON marshals data structure to encoded JSON response.
func (api *spellAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

func (api *spellAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int,
	message string) {
	var payload errorResponse
	payload.Error.Code = http.StatusText(status)
	payload.Error.Message = message

	js, err := json.MarshalIndent(payload, "", "\t")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

func (api *spellAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *spellAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	api.errorResponse(w, r, http.StatusInternalServerError, pkg.MessageInternalServerError)
}
