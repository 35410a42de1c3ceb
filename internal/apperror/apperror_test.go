package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"not found", NotFound("Usuario no encontrado."), http.StatusNotFound},
		{"unauthorized", Unauthorized("Credenciales inválidas."), http.StatusUnauthorized},
		{"forbidden", Forbidden("Acceso denegado."), http.StatusForbidden},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"wrapped sentinel", fmt.Errorf("ctx: %w", ErrNotFound), http.StatusNotFound},
		{"invalid token", ErrInvalidToken, http.StatusForbidden},
		{"storage", Storage("list attendees", errors.New("conn reset")), http.StatusInternalServerError},
		{"no fields", ErrNoFieldsToUpdate, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestStorage_WrapsBoth(t *testing.T) {
	cause := errors.New("conn reset")
	err := Storage("find event", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
}

func TestMessage_HidesInternals(t *testing.T) {
	err := Storage("find event", errors.New("pq: password authentication failed"))
	assert.Equal(t, "Error al procesar la solicitud.", Message(err, "Error al procesar la solicitud."))

	assert.Equal(t, "Token no válido.", Message(Forbidden("Token no válido."), "x"))
	assert.Equal(t, "No hay campos para actualizar", Message(ErrNoFieldsToUpdate, "x"))
}
