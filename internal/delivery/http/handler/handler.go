package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const msgNothingToUpdate = "Please provide data to update."

// updateRequest is implemented by every partial or full update DTO.
type updateRequest interface {
	IsEmpty() bool
}

// decodeJSON decodes the request body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// pathID parses the {id} route variable. A malformed id is reported as not found.
func pathID(w http.ResponseWriter, r *http.Request, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// bindCreate decodes and validates a create payload, writing the 400 itself on failure.
func bindCreate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := decodeJSON(r, req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

// bindUpdate is bindCreate for update payloads; an update naming no field is refused
// before validation so callers never reach persistence with it.
func bindUpdate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req updateRequest) bool {
	if err := decodeJSON(r, req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	if req.IsEmpty() {
		response.BadRequest(w, msgNothingToUpdate)
		return false
	}
	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

// writeCommonError maps errors shared by every resource; it returns false when err is not one of them.
func writeCommonError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, usecase.ErrNothingToUpdate):
		response.BadRequest(w, msgNothingToUpdate)
	case errors.Is(err, usecase.ErrInvalidIdentifier):
		response.BadRequest(w, "Invalid identifier")
	default:
		return false
	}
	return true
}
