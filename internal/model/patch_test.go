package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendeePatch_FieldsFollowsSetPointers(t *testing.T) {
	email := "ana@example.com"
	tel := int64(1155550000)

	fields := AttendeePatch{Email: &email, Telefono: &tel}.Fields()

	assert.Equal(t, []Field{
		{Column: "email", Value: "ana@example.com"},
		{Column: "telefono", Value: int64(1155550000)},
	}, fields)
	assert.Empty(t, AttendeePatch{}.Fields())
}

func TestReplaceRequests_SetEveryColumn(t *testing.T) {
	assert.Len(t, ReplaceAttendeeRequest{}.Patch().Fields(), 5)
	assert.Len(t, ReplaceUserRequest{}.Patch().Fields(), 6)
	assert.Len(t, ReplaceEventRequest{}.Patch().Fields(), 5)

	// asistencia_real stays untouched unless given.
	assert.Len(t, ReplaceParticipationRequest{}.Patch().Fields(), 3)
	attended := true
	assert.Len(t, ReplaceParticipationRequest{AsistenciaReal: &attended}.Patch().Fields(), 4)
}

func TestMasked(t *testing.T) {
	token := "refresh"
	a := Attendee{ID: 1, Password: "$2a$10$hash", RefreshToken: &token}.Masked()
	assert.Equal(t, MaskedPassword, a.Password)
	assert.Nil(t, a.RefreshToken)

	u := User{Password: "$2a$10$hash"}.Masked()
	assert.Equal(t, "*********", u.Password)
}

func TestClaims(t *testing.T) {
	c := Attendee{ID: 3, Email: "a@b.c", Nombre: "Ana"}.Claims()
	assert.Equal(t, RoleAsistente, c.Role)
	assert.Equal(t, int64(3), c.UserID)

	assert.Equal(t, RoleUsuario, User{ID: 1}.Claims().Role)
	assert.True(t, RoleUsuario.Valid())
	assert.False(t, Role("admin").Valid())
}
