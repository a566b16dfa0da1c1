package usecase

import (
	"context"
	"errors"
	"net"
	"strings"

	"clinica-medicos-api/internal/converter"
	"clinica-medicos-api/internal/delivery/dto"
	"clinica-medicos-api/internal/domain/entity"
	"clinica-medicos-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrMedicoNotFound marks a requested id_medico with no matching row.
	ErrMedicoNotFound = errors.New("medico not found")
	// ErrUsuarioInexistente marks a write whose id_usuario violates the
	// foreign key to usuarios.
	ErrUsuarioInexistente = errors.New("referenced usuario does not exist")
	// ErrUsuarioInconsistente marks a medico whose id_usuario no longer
	// resolves to a usuario row. This is a referential integrity failure in
	// the store, not a client error.
	ErrUsuarioInconsistente = errors.New("usuario row missing for medico")
	// ErrStoreUnavailable marks connectivity or transient store failures.
	ErrStoreUnavailable = errors.New("database unavailable")
)

type MedicoUsecase interface {
	ListMedicos(ctx context.Context) ([]dto.MedicoResponse, error)
	GetMedico(ctx context.Context, idMedico int) (*dto.MedicoResponse, error)
	RegistrarMedico(ctx context.Context, req *dto.RegistrarMedicoRequest) (*dto.MedicoResponse, error)
	ActualizarDisponibilidad(ctx context.Context, idMedico int, activo bool) error
	InhabilitarMedico(ctx context.Context, idMedico int) error
}

type medicoUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	medicoRepo  repository.MedicoRepository
	usuarioRepo repository.UsuarioRepository
}

func NewMedicoUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicoRepo repository.MedicoRepository,
	usuarioRepo repository.UsuarioRepository,
) MedicoUsecase {
	return &medicoUsecase{
		db:          db,
		log:         log,
		medicoRepo:  medicoRepo,
		usuarioRepo: usuarioRepo,
	}
}

func (u *medicoUsecase) ListMedicos(ctx context.Context) ([]dto.MedicoResponse, error) {
	medicos, err := u.medicoRepo.FindAllWithUsuario(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medicos: %+v", err)
		return nil, classifyStoreError(err)
	}

	return converter.MedicosToResponses(medicos), nil
}

func (u *medicoUsecase) GetMedico(ctx context.Context, idMedico int) (*dto.MedicoResponse, error) {
	medico, err := u.medicoRepo.FindByID(u.db.WithContext(ctx), idMedico)
	if err != nil {
		u.log.Warnf("Failed to find medico: %+v", err)
		return nil, classifyStoreError(err)
	}
	if medico == nil {
		return nil, ErrMedicoNotFound
	}

	usuario, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), medico.IDUsuario)
	if err != nil {
		u.log.Warnf("Failed to find usuario of medico: %+v", err)
		return nil, classifyStoreError(err)
	}
	if usuario == nil {
		u.log.Warnf("Medico %d references missing usuario %d", medico.IDMedico, medico.IDUsuario)
		return nil, ErrUsuarioInconsistente
	}

	medico.Usuario = *usuario
	return converter.MedicoToResponse(medico), nil
}

func (u *medicoUsecase) RegistrarMedico(ctx context.Context, req *dto.RegistrarMedicoRequest) (*dto.MedicoResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	activo := true
	medico := &entity.Medico{
		IDUsuario:    req.IDUsuario,
		Especialidad: req.Especialidad,
		Activo:       &activo,
	}

	if err := u.medicoRepo.Create(tx, medico); err != nil {
		u.log.Warnf("Failed to create medico: %+v", err)
		if isForeignKeyError(err, "usuario") {
			return nil, ErrUsuarioInexistente
		}
		return nil, classifyStoreError(err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, classifyStoreError(err)
	}

	return converter.MedicoToResponse(medico), nil
}

func (u *medicoUsecase) ActualizarDisponibilidad(ctx context.Context, idMedico int, activo bool) error {
	return u.setActivo(ctx, idMedico, activo)
}

// InhabilitarMedico clears the activo flag unconditionally; repeating the
// call is a no-op with the same outcome.
func (u *medicoUsecase) InhabilitarMedico(ctx context.Context, idMedico int) error {
	return u.setActivo(ctx, idMedico, false)
}

func (u *medicoUsecase) setActivo(ctx context.Context, idMedico int, activo bool) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.medicoRepo.UpdateActivo(tx, idMedico, activo)
	if err != nil {
		u.log.Warnf("Failed to update activo of medico: %+v", err)
		return classifyStoreError(err)
	}
	if affectedRows == 0 {
		return ErrMedicoNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return classifyStoreError(err)
	}

	return nil
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// classifyStoreError maps connectivity failures to ErrStoreUnavailable and
// leaves everything else untouched.
func classifyStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL class 08 = connection exceptions
		if strings.HasPrefix(pgErr.Code, "08") {
			return ErrStoreUnavailable
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ErrStoreUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrStoreUnavailable
	}

	return err
}
