package repository

import (
	"errors"

	"clinica-medicos-api/internal/domain/entity"
	domainRepo "clinica-medicos-api/internal/domain/repository"

	"gorm.io/gorm"
)

type medicoRepository struct{}

func NewMedicoRepository() domainRepo.MedicoRepository {
	return &medicoRepository{}
}

func (r *medicoRepository) Create(db *gorm.DB, medico *entity.Medico) error {
	return db.Omit("Usuario").Create(medico).Error
}

func (r *medicoRepository) FindByID(db *gorm.DB, id int) (*entity.Medico, error) {
	var medico entity.Medico
	err := db.Where("id_medico = ?", id).First(&medico).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medico, nil
}

// FindAllWithUsuario returns medicos joined to their usuario record. Medicos
// whose id_usuario does not resolve are excluded by the inner join.
func (r *medicoRepository) FindAllWithUsuario(db *gorm.DB) ([]entity.Medico, error) {
	var medicos []entity.Medico
	err := db.
		Joins("JOIN usuarios ON usuarios.id_usuario = medicos.id_usuario").
		Preload("Usuario").
		Find(&medicos).Error
	if err != nil {
		return nil, err
	}
	return medicos, nil
}

func (r *medicoRepository) UpdateActivo(db *gorm.DB, id int, activo bool) (int64, error) {
	result := db.Model(&entity.Medico{}).Where("id_medico = ?", id).Update("activo", activo)
	return result.RowsAffected, result.Error
}
