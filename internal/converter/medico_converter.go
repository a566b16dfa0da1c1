package converter

import (
	"strconv"

	"clinica-medicos-api/internal/delivery/dto"
	"clinica-medicos-api/internal/domain/entity"
)

// NombreCompleto joins nombre and apellido with a single space, with no
// casing or whitespace normalization.
func NombreCompleto(usuario *entity.Usuario) string {
	return usuario.Nombre + " " + usuario.Apellido
}

// MedicoToResponse converts a Medico entity (with its Usuario loaded) to the
// wire representation.
func MedicoToResponse(medico *entity.Medico) *dto.MedicoResponse {
	if medico == nil {
		return nil
	}

	activo := true
	if medico.Activo != nil {
		activo = *medico.Activo
	}

	return &dto.MedicoResponse{
		ID:           strconv.Itoa(medico.IDMedico),
		Nombre:       NombreCompleto(&medico.Usuario),
		Especialidad: medico.Especialidad,
		Activo:       activo,
	}
}

// MedicosToResponses converts a slice of Medico entities. The result is never
// nil so an empty list serializes as a JSON array.
func MedicosToResponses(medicos []entity.Medico) []dto.MedicoResponse {
	responses := make([]dto.MedicoResponse, 0, len(medicos))
	for i := range medicos {
		responses = append(responses, *MedicoToResponse(&medicos[i]))
	}
	return responses
}
