package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-eventos/internal/apperror"
)

var participationCols = []string{
	"id", "asistente_id", "evento_id", "confirmacion", "asistencia_real",
	"a_nombre", "a_apellido", "a_email", "a_telefono", "a_dni",
	"e_nombre", "e_ubicacion", "e_fecha", "e_descripcion", "e_realizado",
}

func TestParticipationRepository_ListByEvent_NestsAttendeeAndEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepository(db)

	day := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM participacion p.*WHERE p.evento_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(participationCols).
			AddRow(10, 2, 1, true, true,
				"Ana", "Pérez", "ana@example.com", 1155550000, 30111222,
				"Meetup Go", "Sala 1", day, "Charlas", true))

	participations, err := repo.ListByEvent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, participations, 1)

	p := participations[0]
	require.NotNil(t, p.Asistente)
	require.NotNil(t, p.Evento)
	require.NotNil(t, p.AsistenciaReal)
	assert.True(t, *p.AsistenciaReal)
	assert.Equal(t, int64(2), p.Asistente.ID)
	assert.Equal(t, "Ana Pérez", p.Asistente.FullName())
	assert.Empty(t, p.Asistente.Password)
	assert.Equal(t, "Meetup Go", p.Evento.Nombre)
	assert.Equal(t, "2026-11-03", p.Evento.Fecha.String())
}

func TestParticipationRepository_Create_DefaultsToConfirmed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepository(db)

	mock.ExpectQuery(`INSERT INTO participacion`).
		WithArgs(int64(2), int64(1), true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	created, err := repo.Create(context.Background(), 2, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.True(t, created.Confirmacion)
	assert.Nil(t, created.AsistenciaReal)
}

func TestParticipationRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepository(db)

	mock.ExpectQuery(`INSERT INTO participacion`).
		WillReturnError(&pq.Error{Code: pqUniqueViolation})

	_, err := repo.Create(context.Background(), 2, 1, nil)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestParticipationRepository_Create_UnknownEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepository(db)

	mock.ExpectQuery(`INSERT INTO participacion`).
		WillReturnError(&pq.Error{Code: pqForeignKeyViolation})

	_, err := repo.Create(context.Background(), 2, 404, nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestParticipationRepository_MarkAttendance(t *testing.T) {
	db, mock := newExactMockDB(t)
	repo := NewParticipationRepository(db)

	mock.ExpectExec("UPDATE participacion SET asistencia_real = $1 WHERE id = $2").
		WithArgs(true, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkAttendance(context.Background(), 10, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}
