package repository

import (
	"clinica-medicos-api/internal/domain/entity"
	domainRepo "clinica-medicos-api/internal/domain/repository"

	"gorm.io/gorm"
)

type horarioRepository struct{}

func NewHorarioRepository() domainRepo.HorarioRepository {
	return &horarioRepository{}
}

// FindActivosByMedicoID returns the active horarios for a medico ordered by
// dia_semana (text order, not calendar order) then hora_inicio.
func (r *horarioRepository) FindActivosByMedicoID(db *gorm.DB, idMedico int) ([]entity.Horario, error) {
	var horarios []entity.Horario
	err := db.
		Where("id_medico = ? AND activo = ?", idMedico, true).
		Order("dia_semana ASC, hora_inicio ASC").
		Find(&horarios).Error
	if err != nil {
		return nil, err
	}
	return horarios, nil
}
