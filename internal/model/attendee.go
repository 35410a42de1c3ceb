package model

type Attendee struct {
	ID           int64   `json:"id" db:"id"`
	Nombre       string  `json:"nombre" db:"nombre"`
	Apellido     string  `json:"apellido" db:"apellido"`
	Email        string  `json:"email" db:"email"`
	Password     string  `json:"password,omitempty" db:"password"`
	Telefono     int64   `json:"telefono" db:"telefono"`
	DNI          int64   `json:"dni" db:"dni"`
	RefreshToken *string `json:"-" db:"refresh_token"`
}

func (a Attendee) FullName() string     { return fullName(a.Nombre, a.Apellido) }
func (a Attendee) ContactEmail() string { return a.Email }

// Masked returns a copy safe to serialize: the hash is replaced and the
// refresh token dropped.
func (a Attendee) Masked() Attendee {
	a.Password = MaskedPassword
	a.RefreshToken = nil
	return a
}

// Claims builds the identity embedded in tokens issued to this attendee.
func (a Attendee) Claims() TokenClaims {
	return TokenClaims{
		UserID:    a.ID,
		UserEmail: a.Email,
		UserName:  a.Nombre,
		Role:      RoleAsistente,
	}
}

type CreateAttendeeRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2"`
	Apellido string `json:"apellido" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Telefono int64  `json:"telefono" validate:"required,gt=0"`
	DNI      int64  `json:"dni" validate:"required,gt=0"`
}

// ReplaceAttendeeRequest is the PUT body: every mutable field is required.
type ReplaceAttendeeRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2"`
	Apellido string `json:"apellido" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Telefono int64  `json:"telefono" validate:"required,gt=0"`
	DNI      int64  `json:"dni" validate:"required,gt=0"`
}

func (r ReplaceAttendeeRequest) Patch() AttendeePatch {
	return AttendeePatch{
		Nombre:   &r.Nombre,
		Apellido: &r.Apellido,
		Email:    &r.Email,
		Telefono: &r.Telefono,
		DNI:      &r.DNI,
	}
}

// AttendeePatch is the PATCH body. Nil fields are left untouched.
type AttendeePatch struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=2"`
	Apellido *string `json:"apellido" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *int64  `json:"telefono" validate:"omitempty,gt=0"`
	DNI      *int64  `json:"dni" validate:"omitempty,gt=0"`
}

func (p AttendeePatch) Fields() []Field {
	var fields []Field
	fields = appendField(fields, "nombre", p.Nombre)
	fields = appendField(fields, "apellido", p.Apellido)
	fields = appendField(fields, "email", p.Email)
	fields = appendField(fields, "telefono", p.Telefono)
	fields = appendField(fields, "dni", p.DNI)
	return fields
}
