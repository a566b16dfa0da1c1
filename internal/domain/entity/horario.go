package entity

// Horario is a recurring weekly availability window for a medico.
// DiaSemana is stored as free text; hora values are time-of-day without date.
// Rows are maintained by the scheduling service and only read here.
type Horario struct {
	IDHorario  int    `gorm:"column:id_horario;primaryKey;autoIncrement" json:"id_horario"`
	IDMedico   int    `gorm:"column:id_medico;not null;index" json:"id_medico"`
	DiaSemana  string `gorm:"column:dia_semana;type:varchar(20)" json:"dia_semana"`
	HoraInicio string `gorm:"column:hora_inicio;type:time;not null" json:"hora_inicio"`
	HoraSalida string `gorm:"column:hora_salida;type:time;not null" json:"hora_salida"`
	Activo     *bool  `gorm:"column:activo;not null;default:true" json:"activo"`

	// Relationships
	Medico Medico `gorm:"foreignKey:IDMedico;references:IDMedico" json:"medico,omitempty"`
}

func (Horario) TableName() string {
	return "horarios"
}
