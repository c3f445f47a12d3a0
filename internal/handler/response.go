package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/abdalahsamh/New-cashir/internal/catalog"
	"github.com/abdalahsamh/New-cashir/internal/history"
	"github.com/abdalahsamh/New-cashir/internal/invoice"
	"github.com/abdalahsamh/New-cashir/internal/order"
	"github.com/abdalahsamh/New-cashir/internal/station"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP status codes. Unrecognized errors
// become opaque 500s; the detail goes to the log only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, catalog.ErrDuplicateService),
		errors.Is(err, catalog.ErrProtectedService):
		code = http.StatusConflict
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, history.ErrNotFound),
		errors.Is(err, station.ErrUnknownStation),
		errors.Is(err, invoice.ErrNothingStaged),
		errors.Is(err, errNoDraft):
		code = http.StatusNotFound
	case errors.Is(err, invoice.ErrInvalidDiscount),
		errors.Is(err, order.ErrIncompleteOrder):
		code = http.StatusUnprocessableEntity
	}

	if code == http.StatusInternalServerError {
		zctx.From(r.Context()).Error("request failed", zap.Error(err))
		writeJSON(w, code, errorBody{Code: code, Message: "internal error"})
		return
	}
	writeJSON(w, code, errorBody{Code: code, Message: err.Error()})
}

// decodeBody reads a JSON request body into v, replying 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
		return false
	}
	return true
}
