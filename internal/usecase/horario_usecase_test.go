package usecase

import (
	"context"
	"errors"
	"testing"

	"clinica-medicos-api/internal/domain/entity"
	domainRepo "clinica-medicos-api/internal/domain/repository"
	"clinica-medicos-api/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func newHorarioUsecase(t *testing.T) (HorarioUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	u := NewHorarioUsecase(db, newTestLogger(), repository.NewHorarioRepository())
	return u, db
}

func seedHorario(t *testing.T, db *gorm.DB, idMedico int, dia, inicio, salida string, activo bool) {
	t.Helper()
	horario := &entity.Horario{
		IDMedico:   idMedico,
		DiaSemana:  dia,
		HoraInicio: inicio,
		HoraSalida: salida,
		Activo:     &activo,
	}
	if err := db.Omit("Medico").Create(horario).Error; err != nil {
		t.Fatalf("failed to seed horario: %v", err)
	}
}

func TestListHorarios_Empty(t *testing.T) {
	u, _ := newHorarioUsecase(t)

	horarios, err := u.ListHorariosByMedico(context.Background(), 404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if horarios == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(horarios) != 0 {
		t.Errorf("expected empty result, got %d entries", len(horarios))
	}
}

func TestListHorarios_FormattedAndOrdered(t *testing.T) {
	u, db := newHorarioUsecase(t)

	seedHorario(t, db, 1, "Lunes", "14:00:00", "18:00:00", true)
	seedHorario(t, db, 1, "Lunes", "08:00:00", "12:30:00", true)
	seedHorario(t, db, 1, "Martes", "09:00:00", "13:00:00", false)

	horarios, err := u.ListHorariosByMedico(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(horarios) != 2 {
		t.Fatalf("expected 2 horarios, got %d", len(horarios))
	}

	if horarios[0].HoraInicio != "08:00" || horarios[0].HoraSalida != "12:30" {
		t.Errorf("expected 08:00-12:30 first, got %s-%s", horarios[0].HoraInicio, horarios[0].HoraSalida)
	}
	if horarios[1].HoraInicio != "14:00" {
		t.Errorf("expected 14:00 second, got %s", horarios[1].HoraInicio)
	}
	if horarios[0].DiaSemana != "Lunes" {
		t.Errorf("expected diaSemana \"Lunes\", got %q", horarios[0].DiaSemana)
	}
	if horarios[0].IDHorario == "" {
		t.Error("expected idHorario as decimal string")
	}
}

func TestListHorarios_FormatFailure(t *testing.T) {
	u, db := newHorarioUsecase(t)

	seedHorario(t, db, 1, "Lunes", "", "12:00:00", true)

	if _, err := u.ListHorariosByMedico(context.Background(), 1); err == nil {
		t.Error("expected error for missing hora_inicio")
	}
}

// -- Mock repository for store-error paths --

type mockHorarioRepo struct {
	findErr error
}

func (m *mockHorarioRepo) FindActivosByMedicoID(_ *gorm.DB, _ int) ([]entity.Horario, error) {
	return nil, m.findErr
}

var _ domainRepo.HorarioRepository = (*mockHorarioRepo)(nil)

func TestListHorarios_StoreUnavailable(t *testing.T) {
	db := newTestDB(t)
	u := NewHorarioUsecase(db, newTestLogger(), &mockHorarioRepo{
		findErr: &pgconn.PgError{Code: "08006"},
	})

	if _, err := u.ListHorariosByMedico(context.Background(), 1); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}
