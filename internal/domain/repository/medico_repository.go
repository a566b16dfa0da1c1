package repository

import (
	"clinica-medicos-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicoRepository interface {
	Create(db *gorm.DB, medico *entity.Medico) error
	FindByID(db *gorm.DB, id int) (*entity.Medico, error)
	FindAllWithUsuario(db *gorm.DB) ([]entity.Medico, error)
	UpdateActivo(db *gorm.DB, id int, activo bool) (int64, error)
}
