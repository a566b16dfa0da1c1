package handler

import (
	"net/http"

	"clinica-medicos-api/internal/usecase"
	"clinica-medicos-api/pkg/response"
)

type HorarioHandler struct {
	horarioUsecase usecase.HorarioUsecase
}

func NewHorarioHandler(horarioUsecase usecase.HorarioUsecase) *HorarioHandler {
	return &HorarioHandler{
		horarioUsecase: horarioUsecase,
	}
}

// ListHorarios responds with a bare JSON array, empty when the medico has no
// active horarios or does not exist.
func (h *HorarioHandler) ListHorarios(w http.ResponseWriter, r *http.Request) {
	idMedico, ok := parseIDMedico(w, r)
	if !ok {
		return
	}

	horarios, err := h.horarioUsecase.ListHorariosByMedico(r.Context(), idMedico)
	if err != nil {
		if err == usecase.ErrStoreUnavailable {
			response.ServiceUnavailable(w, "Base de datos no disponible")
			return
		}
		response.InternalServerError(w, "No se pudieron obtener los horarios")
		return
	}

	response.JSON(w, http.StatusOK, horarios)
}
