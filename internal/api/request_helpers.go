package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tdw-edu/questions-api/internal/api/shared"
	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/service/auth"
)

// getPathID parses a numeric path parameter. Routes constrain ids to digits,
// so only a missing parameter or an overflow fails here.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.ErrInvalidID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Join(domain.ErrInvalidID, err)
	}
	return id, nil
}

// handlePrincipalAndPathID extracts the principal and the path id, writing
// the error response itself when either is missing.
func handlePrincipalAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (auth.Principal, int64, bool) {
	p, ok := shared.GetPrincipal(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, catalog.MsgUnauthorized)
		return auth.Principal{}, 0, false
	}

	id, err := getPathID(r, paramName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, catalog.MsgPathNotFound, err)
		return auth.Principal{}, 0, false
	}
	return p, id, true
}

// handlePrincipal extracts the principal, writing a 401 when it is missing.
func handlePrincipal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := shared.GetPrincipal(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, catalog.MsgUnauthorized)
	}
	return p, ok
}

// decodePayload decodes the JSON body into v, answering 400 on malformed
// input.
func decodePayload(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, catalog.Generic(http.StatusBadRequest), err)
		return false
	}
	return true
}
