package model

// User is an organizer account.
type User struct {
	ID        int64  `json:"id" db:"id"`
	Nombre    string `json:"nombre" db:"nombre"`
	Apellido  string `json:"apellido" db:"apellido"`
	Email     string `json:"email" db:"email"`
	Password  string `json:"password,omitempty" db:"password"`
	Telefono  int64  `json:"telefono" db:"telefono"`
	DNI       int64  `json:"dni" db:"dni"`
	RolID     int64  `json:"rol_id" db:"rol_id"`
	RolNombre string `json:"rol" db:"rol_nombre"`
}

func (u User) FullName() string     { return fullName(u.Nombre, u.Apellido) }
func (u User) ContactEmail() string { return u.Email }

func (u User) Masked() User {
	u.Password = MaskedPassword
	return u
}

func (u User) Claims() TokenClaims {
	return TokenClaims{
		UserID:    u.ID,
		UserEmail: u.Email,
		UserName:  u.Nombre,
		Role:      RoleUsuario,
	}
}

type CreateUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2"`
	Apellido string `json:"apellido" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Telefono int64  `json:"telefono" validate:"required,gt=0"`
	DNI      int64  `json:"dni" validate:"required,gt=0"`
	RolID    int64  `json:"rol_id" validate:"required,gt=0"`
}

type ReplaceUserRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2"`
	Apellido string `json:"apellido" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Telefono int64  `json:"telefono" validate:"required,gt=0"`
	DNI      int64  `json:"dni" validate:"required,gt=0"`
	RolID    int64  `json:"rol_id" validate:"required,gt=0"`
}

func (r ReplaceUserRequest) Patch() UserPatch {
	return UserPatch{
		Nombre:   &r.Nombre,
		Apellido: &r.Apellido,
		Email:    &r.Email,
		Telefono: &r.Telefono,
		DNI:      &r.DNI,
		RolID:    &r.RolID,
	}
}

type UserPatch struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=2"`
	Apellido *string `json:"apellido" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *int64  `json:"telefono" validate:"omitempty,gt=0"`
	DNI      *int64  `json:"dni" validate:"omitempty,gt=0"`
	RolID    *int64  `json:"rol_id" validate:"omitempty,gt=0"`
}

func (p UserPatch) Fields() []Field {
	var fields []Field
	fields = appendField(fields, "nombre", p.Nombre)
	fields = appendField(fields, "apellido", p.Apellido)
	fields = appendField(fields, "email", p.Email)
	fields = appendField(fields, "telefono", p.Telefono)
	fields = appendField(fields, "dni", p.DNI)
	fields = appendField(fields, "rol_id", p.RolID)
	return fields
}
