package converter

import (
	"testing"

	"clinica-medicos-api/internal/domain/entity"
)

func TestFormatHora(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"08:30:00", "08:30"},
		{"8:05:00", "08:05"},
		{"14:00", "14:00"},
		{"23:59:59", "23:59"},
		{"00:00:00", "00:00"},
	}

	for _, c := range cases {
		got, err := FormatHora(c.in)
		if err != nil {
			t.Errorf("FormatHora(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("FormatHora(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatHora_Invalid(t *testing.T) {
	for _, in := range []string{"", "mediodía", "25:00", "08h30"} {
		if _, err := FormatHora(in); err == nil {
			t.Errorf("FormatHora(%q): expected error", in)
		}
	}
}

func TestFormatDiaSemana(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Lunes", "Lunes"},
		{"Miércoles", "Miércoles"},
		{"Domingo", "Domingo"},
		// unrecognized values pass through as raw text
		{"funday", "funday"},
		{"LUNES", "LUNES"},
		{"", ""},
	}

	for _, c := range cases {
		if got := FormatDiaSemana(c.in); got != c.want {
			t.Errorf("FormatDiaSemana(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHorarioToResponse(t *testing.T) {
	horario := &entity.Horario{
		IDHorario:  7,
		IDMedico:   3,
		DiaSemana:  "Lunes",
		HoraInicio: "08:30:00",
		HoraSalida: "12:00:00",
	}

	resp, err := HorarioToResponse(horario)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IDHorario != "7" {
		t.Errorf("expected idHorario \"7\", got %q", resp.IDHorario)
	}
	if resp.DiaSemana != "Lunes" {
		t.Errorf("expected diaSemana \"Lunes\", got %q", resp.DiaSemana)
	}
	if resp.HoraInicio != "08:30" || resp.HoraSalida != "12:00" {
		t.Errorf("expected 08:30-12:00, got %s-%s", resp.HoraInicio, resp.HoraSalida)
	}
}

func TestHorarioToResponse_MissingHora(t *testing.T) {
	horario := &entity.Horario{
		IDHorario:  1,
		DiaSemana:  "Martes",
		HoraInicio: "",
		HoraSalida: "12:00:00",
	}

	if _, err := HorarioToResponse(horario); err == nil {
		t.Error("expected error for empty hora_inicio")
	}
}

func TestHorariosToResponses_Empty(t *testing.T) {
	resp, err := HorariosToResponses(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected non-nil slice for empty input")
	}
	if len(resp) != 0 {
		t.Errorf("expected empty slice, got %d entries", len(resp))
	}
}
