package repository

import (
	"errors"

	"clinica-medicos-api/internal/domain/entity"
	domainRepo "clinica-medicos-api/internal/domain/repository"

	"gorm.io/gorm"
)

type usuarioRepository struct{}

func NewUsuarioRepository() domainRepo.UsuarioRepository {
	return &usuarioRepository{}
}

func (r *usuarioRepository) FindByID(db *gorm.DB, id int) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := db.Where("id_usuario = ?", id).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}
