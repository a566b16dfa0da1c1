package entity

// Medico links a usuario to a medical specialty. Records are soft-disabled
// through the activo flag and never deleted.
type Medico struct {
	IDMedico     int    `gorm:"column:id_medico;primaryKey;autoIncrement" json:"id_medico"`
	IDUsuario    int    `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	Especialidad string `gorm:"column:especialidad;type:varchar(100)" json:"especialidad"`
	Activo       *bool  `gorm:"column:activo;not null;default:true" json:"activo"`

	// Relationships
	Usuario Usuario `gorm:"foreignKey:IDUsuario;references:IDUsuario" json:"usuario,omitempty"`
}

func (Medico) TableName() string {
	return "medicos"
}
