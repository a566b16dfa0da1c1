package converter

import (
	"fmt"
	"strconv"
	"time"

	"clinica-medicos-api/internal/delivery/dto"
	"clinica-medicos-api/internal/domain/entity"
)

var diasSemana = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// FormatDiaSemana returns the stored day name verbatim when it is one of the
// seven known values; any other value passes through as raw text. No
// translation happens today, the set only marks which values are recognized.
func FormatDiaSemana(dia string) string {
	for _, d := range diasSemana {
		if dia == d {
			return dia
		}
	}
	return dia
}

// FormatHora renders a stored time-of-day value as a zero-padded 24-hour
// HH:MM string. The store guarantees non-null times; an empty or unparsable
// value is an error.
func FormatHora(hora string) (string, error) {
	if hora == "" {
		return "", fmt.Errorf("empty time value")
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, hora); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("unrecognized time value %q", hora)
}

// HorarioToResponse converts a Horario entity to its wire representation.
func HorarioToResponse(horario *entity.Horario) (*dto.HorarioResponse, error) {
	if horario == nil {
		return nil, nil
	}

	inicio, err := FormatHora(horario.HoraInicio)
	if err != nil {
		return nil, fmt.Errorf("hora_inicio of horario %d: %w", horario.IDHorario, err)
	}
	salida, err := FormatHora(horario.HoraSalida)
	if err != nil {
		return nil, fmt.Errorf("hora_salida of horario %d: %w", horario.IDHorario, err)
	}

	return &dto.HorarioResponse{
		DiaSemana:  FormatDiaSemana(horario.DiaSemana),
		HoraInicio: inicio,
		HoraSalida: salida,
		IDHorario:  strconv.Itoa(horario.IDHorario),
	}, nil
}

// HorariosToResponses converts a slice of Horario entities. The result is
// never nil so an empty list serializes as a JSON array.
func HorariosToResponses(horarios []entity.Horario) ([]dto.HorarioResponse, error) {
	responses := make([]dto.HorarioResponse, 0, len(horarios))
	for i := range horarios {
		response, err := HorarioToResponse(&horarios[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}
