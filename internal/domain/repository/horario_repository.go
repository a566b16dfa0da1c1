package repository

import (
	"clinica-medicos-api/internal/domain/entity"

	"gorm.io/gorm"
)

// HorarioRepository is read-only: horarios are maintained by the scheduling
// service.
type HorarioRepository interface {
	FindActivosByMedicoID(db *gorm.DB, idMedico int) ([]entity.Horario, error)
}
