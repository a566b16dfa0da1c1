package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinica-medicos-api/internal/delivery/dto"
	"clinica-medicos-api/internal/usecase"
	"clinica-medicos-api/pkg/response"
	"clinica-medicos-api/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicoHandler struct {
	medicoUsecase usecase.MedicoUsecase
	validator     *validator.CustomValidator
}

func NewMedicoHandler(medicoUsecase usecase.MedicoUsecase, validator *validator.CustomValidator) *MedicoHandler {
	return &MedicoHandler{
		medicoUsecase: medicoUsecase,
		validator:     validator,
	}
}

func (h *MedicoHandler) ListMedicos(w http.ResponseWriter, r *http.Request) {
	medicos, err := h.medicoUsecase.ListMedicos(r.Context())
	if err != nil {
		if err == usecase.ErrStoreUnavailable {
			response.ServiceUnavailable(w, "Base de datos no disponible")
			return
		}
		response.InternalServerError(w, "No se pudieron obtener los médicos")
		return
	}

	response.JSON(w, http.StatusOK, medicos)
}

func (h *MedicoHandler) GetMedico(w http.ResponseWriter, r *http.Request) {
	idMedico, ok := parseIDMedico(w, r)
	if !ok {
		return
	}

	medico, err := h.medicoUsecase.GetMedico(r.Context(), idMedico)
	if err != nil {
		switch err {
		case usecase.ErrMedicoNotFound:
			response.NotFound(w, "Médico no encontrado")
		case usecase.ErrUsuarioInconsistente:
			response.InternalServerError(w, "Registro de usuario inconsistente")
		case usecase.ErrStoreUnavailable:
			response.ServiceUnavailable(w, "Base de datos no disponible")
		default:
			response.InternalServerError(w, "No se pudo obtener el médico")
		}
		return
	}

	response.JSON(w, http.StatusOK, medico)
}

func (h *MedicoHandler) RegistrarMedico(w http.ResponseWriter, r *http.Request) {
	var req dto.RegistrarMedicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de la solicitud inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.medicoUsecase.RegistrarMedico(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrUsuarioInexistente:
			response.Conflict(w, "El usuario indicado no existe")
		case usecase.ErrStoreUnavailable:
			response.ServiceUnavailable(w, "Base de datos no disponible")
		default:
			response.InternalServerError(w, "No se pudo registrar el médico")
		}
		return
	}

	response.Message(w, http.StatusCreated, "Médico registrado exitosamente")
}

func (h *MedicoHandler) ActualizarDisponibilidad(w http.ResponseWriter, r *http.Request) {
	idMedico, ok := parseIDMedico(w, r)
	if !ok {
		return
	}

	var req dto.ActualizarDisponibilidadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de la solicitud inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.medicoUsecase.ActualizarDisponibilidad(r.Context(), idMedico, *req.Activo); err != nil {
		writeActivoError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Disponibilidad actualizada exitosamente")
}

func (h *MedicoHandler) InhabilitarMedico(w http.ResponseWriter, r *http.Request) {
	idMedico, ok := parseIDMedico(w, r)
	if !ok {
		return
	}

	if err := h.medicoUsecase.InhabilitarMedico(r.Context(), idMedico); err != nil {
		writeActivoError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Médico inhabilitado exitosamente")
}

// parseIDMedico reads the id_medico path variable; on failure it writes a 400
// and reports false.
func parseIDMedico(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	idMedico, err := strconv.Atoi(vars["id_medico"])
	if err != nil {
		response.BadRequest(w, "Identificador de médico inválido")
		return 0, false
	}
	return idMedico, true
}

func writeActivoError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrMedicoNotFound:
		response.NotFound(w, "Médico no encontrado")
	case usecase.ErrStoreUnavailable:
		response.ServiceUnavailable(w, "Base de datos no disponible")
	default:
		response.InternalServerError(w, "No se pudo actualizar el médico")
	}
}
