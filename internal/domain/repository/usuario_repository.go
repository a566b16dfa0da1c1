package repository

import (
	"clinica-medicos-api/internal/domain/entity"

	"gorm.io/gorm"
)

// UsuarioRepository is read-only: usuarios are owned by the central user
// service and this API never writes them.
type UsuarioRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Usuario, error)
}
