package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/pendaftaran/constant"
	"github.com/muhammadheryan/pendaftaran/model"
	"github.com/muhammadheryan/pendaftaran/utils/errors"
)

// ValidationResponse reports the outcome of validating a registration form.
type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors model.FieldErrors `json:"errors"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// ValidatePendaftaran handler
// @Summary Validate registration form
// @Description Runs the registration field rules without contacting the registration API
// @Tags Pendaftaran
// @Accept json
// @Produce json
// @Param request body model.PendaftaranForm true "Registration form values"
// @Success 200 {object} transport.ValidationResponse
// @Failure 400 {object} transport.errorResponse
// @Failure 422 {object} transport.ValidationResponse
// @Router /api/pendaftaran/validate [post]
func (s *RestHandler) ValidatePendaftaran(w http.ResponseWriter, r *http.Request) {
	var req model.PendaftaranForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.PendaftaranApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	fieldErrors := s.PendaftaranApp.Validate(req)
	res := ValidationResponse{Valid: len(fieldErrors) == 0, Errors: fieldErrors}
	if !res.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}

	writeSuccess(w, res)
}

// Health handler
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} transport.HealthResponse
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, HealthResponse{Status: "ok"})
}
