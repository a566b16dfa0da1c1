package dto

// Request DTOs

type RegistrarMedicoRequest struct {
	IDUsuario    int    `json:"id_usuario" validate:"required"`
	Especialidad string `json:"especialidad" validate:"required"`
}

type ActualizarDisponibilidadRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

// Response DTOs

// MedicoResponse keeps the wire contract of the clinic frontend: the id is a
// decimal string and nombre carries the usuario's full name.
type MedicoResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
	Activo       bool   `json:"activo"`
}
