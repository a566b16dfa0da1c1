package repository

import (
	"fmt"
	"testing"

	"clinica-medicos-api/internal/domain/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the full schema.
// cache=shared keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&entity.Usuario{}, &entity.Medico{}, &entity.Horario{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func boolPtr(b bool) *bool {
	return &b
}

func seedUsuario(t *testing.T, db *gorm.DB, nombre, apellido, correo string) *entity.Usuario {
	t.Helper()
	usuario := &entity.Usuario{Nombre: nombre, Apellido: apellido, Correo: correo}
	if err := db.Create(usuario).Error; err != nil {
		t.Fatalf("failed to seed usuario: %v", err)
	}
	return usuario
}

func seedMedico(t *testing.T, db *gorm.DB, idUsuario int, especialidad string, activo bool) *entity.Medico {
	t.Helper()
	medico := &entity.Medico{IDUsuario: idUsuario, Especialidad: especialidad, Activo: boolPtr(activo)}
	if err := db.Omit("Usuario").Create(medico).Error; err != nil {
		t.Fatalf("failed to seed medico: %v", err)
	}
	return medico
}

func seedHorario(t *testing.T, db *gorm.DB, idMedico int, dia, inicio, salida string, activo bool) *entity.Horario {
	t.Helper()
	horario := &entity.Horario{
		IDMedico:   idMedico,
		DiaSemana:  dia,
		HoraInicio: inicio,
		HoraSalida: salida,
		Activo:     boolPtr(activo),
	}
	if err := db.Omit("Medico").Create(horario).Error; err != nil {
		t.Fatalf("failed to seed horario: %v", err)
	}
	return horario
}
