package usecase

import (
	"context"

	"clinica-medicos-api/internal/converter"
	"clinica-medicos-api/internal/delivery/dto"
	"clinica-medicos-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HorarioUsecase interface {
	ListHorariosByMedico(ctx context.Context, idMedico int) ([]dto.HorarioResponse, error)
}

type horarioUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	horarioRepo repository.HorarioRepository
}

func NewHorarioUsecase(db *gorm.DB, log *logrus.Logger, horarioRepo repository.HorarioRepository) HorarioUsecase {
	return &horarioUsecase{
		db:          db,
		log:         log,
		horarioRepo: horarioRepo,
	}
}

// ListHorariosByMedico returns the active horarios of a medico in (dia_semana,
// hora_inicio) order. A medico with no active horarios yields an empty list,
// not an error; an unknown id behaves the same way.
func (u *horarioUsecase) ListHorariosByMedico(ctx context.Context, idMedico int) ([]dto.HorarioResponse, error) {
	horarios, err := u.horarioRepo.FindActivosByMedicoID(u.db.WithContext(ctx), idMedico)
	if err != nil {
		u.log.Warnf("Failed to find horarios: %+v", err)
		return nil, classifyStoreError(err)
	}

	responses, err := converter.HorariosToResponses(horarios)
	if err != nil {
		u.log.Warnf("Failed to format horarios: %+v", err)
		return nil, err
	}

	return responses, nil
}
