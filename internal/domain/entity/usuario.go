package entity

// Usuario is the identity record behind every medico. Rows are created and
// maintained by the central user service; this API only reads them.
type Usuario struct {
	IDUsuario int    `gorm:"column:id_usuario;primaryKey;autoIncrement" json:"id_usuario"`
	Nombre    string `gorm:"column:nombre;type:varchar(100)" json:"nombre"`
	Apellido  string `gorm:"column:apellido;type:varchar(100)" json:"apellido"`
	Correo    string `gorm:"column:correo;type:varchar(120);uniqueIndex" json:"correo"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
