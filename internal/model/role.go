package model

// Role is the principal kind embedded in every issued token.
type Role string

const (
	RoleUsuario   Role = "usuario"
	RoleAsistente Role = "asistente"
)

func (r Role) Valid() bool {
	return r == RoleUsuario || r == RoleAsistente
}

// RoleRecord is a row of the roles table referenced by usuarios.rol_id.
type RoleRecord struct {
	ID     int64  `json:"id" db:"id"`
	Nombre string `json:"nombre" db:"nombre"`
}
