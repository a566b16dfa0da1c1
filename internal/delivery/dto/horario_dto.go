package dto

// HorarioResponse is the outward shape of a schedule entry. Hora values are
// zero-padded 24-hour HH:MM strings and idHorario is a decimal string.
type HorarioResponse struct {
	DiaSemana  string `json:"diaSemana"`
	HoraInicio string `json:"horaInicio"`
	HoraSalida string `json:"horaSalida"`
	IDHorario  string `json:"idHorario"`
}
