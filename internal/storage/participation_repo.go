package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/model"
)

const participationSelect = `
	SELECT p.id, p.asistente_id, p.evento_id, p.confirmacion, p.asistencia_real,
	       a.nombre AS a_nombre, a.apellido AS a_apellido, a.email AS a_email,
	       a.telefono AS a_telefono, a.dni AS a_dni,
	       e.nombre AS e_nombre, e.ubicacion AS e_ubicacion, e.fecha AS e_fecha,
	       e.descripcion AS e_descripcion, e.realizado AS e_realizado
	FROM participacion p
	JOIN asistentes a ON a.id = p.asistente_id
	JOIN eventos e ON e.id = p.evento_id`

// participationRow is the flat shape of participationSelect.
type participationRow struct {
	ID             int64  `db:"id"`
	AsistenteID    int64  `db:"asistente_id"`
	EventoID       int64  `db:"evento_id"`
	Confirmacion   bool   `db:"confirmacion"`
	AsistenciaReal *bool  `db:"asistencia_real"`
	ANombre        string `db:"a_nombre"`
	AApellido      string `db:"a_apellido"`
	AEmail         string `db:"a_email"`
	ATelefono      int64  `db:"a_telefono"`
	ADNI           int64  `db:"a_dni"`

	ENombre      string     `db:"e_nombre"`
	EUbicacion   string     `db:"e_ubicacion"`
	EFecha       model.Date `db:"e_fecha"`
	EDescripcion string     `db:"e_descripcion"`
	ERealizado   bool       `db:"e_realizado"`
}

func (row participationRow) toModel() model.Participation {
	return model.Participation{
		ID:             row.ID,
		AsistenteID:    row.AsistenteID,
		EventoID:       row.EventoID,
		Confirmacion:   row.Confirmacion,
		AsistenciaReal: row.AsistenciaReal,
		Asistente: &model.Attendee{
			ID:       row.AsistenteID,
			Nombre:   row.ANombre,
			Apellido: row.AApellido,
			Email:    row.AEmail,
			Telefono: row.ATelefono,
			DNI:      row.ADNI,
		},
		Evento: &model.Event{
			ID:          row.EventoID,
			Nombre:      row.ENombre,
			Ubicacion:   row.EUbicacion,
			Fecha:       row.EFecha,
			Descripcion: row.EDescripcion,
			Realizado:   row.ERealizado,
		},
	}
}

type ParticipationRepository struct {
	db Executor
}

func NewParticipationRepository(db Executor) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

func (r *ParticipationRepository) List(ctx context.Context) ([]model.Participation, error) {
	return r.list(ctx, "list participations", participationSelect+` ORDER BY p.id`)
}

func (r *ParticipationRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Participation, error) {
	return r.list(ctx, "list participations by event",
		participationSelect+` WHERE p.evento_id = $1 ORDER BY p.id`, eventID)
}

func (r *ParticipationRepository) ListByAttendee(ctx context.Context, attendeeID int64) ([]model.Participation, error) {
	return r.list(ctx, "list participations by attendee",
		participationSelect+` WHERE p.asistente_id = $1 ORDER BY e.fecha, p.id`, attendeeID)
}

func (r *ParticipationRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]model.Participation, error) {
	var rows []participationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperror.Storage(op, err)
	}

	participations := make([]model.Participation, 0, len(rows))
	for _, row := range rows {
		participations = append(participations, row.toModel())
	}
	return participations, nil
}

func (r *ParticipationRepository) FindByID(ctx context.Context, id int64) (*model.Participation, error) {
	var row participationRow
	err := r.db.GetContext(ctx, &row, participationSelect+` WHERE p.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage("find participation", err)
	}
	participation := row.toModel()
	return &participation, nil
}

// Create registers the attendee for the event. Confirmation defaults to
// true when not given.
func (r *ParticipationRepository) Create(ctx context.Context, attendeeID, eventID int64, confirmacion *bool) (*model.Participation, error) {
	confirmed := true
	if confirmacion != nil {
		confirmed = *confirmacion
	}

	var id int64
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO participacion (asistente_id, evento_id, confirmacion)
		VALUES ($1, $2, $3)
		RETURNING id`,
		attendeeID, eventID, confirmed,
	).Scan(&id)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, apperror.Conflict("El asistente ya está inscripto en el evento")
		case isForeignKeyViolation(err):
			return nil, apperror.Validation("El asistente o el evento no existen")
		}
		return nil, apperror.Storage("create participation", err)
	}

	return &model.Participation{
		ID:           id,
		AsistenteID:  attendeeID,
		EventoID:     eventID,
		Confirmacion: confirmed,
	}, nil
}

func (r *ParticipationRepository) Update(ctx context.Context, id int64, patch model.ParticipationPatch) error {
	return execUpdate(ctx, r.db, participationTable, id, patch.Fields())
}

func (r *ParticipationRepository) Confirm(ctx context.Context, id int64, confirmacion bool) error {
	return r.Update(ctx, id, model.ParticipationPatch{Confirmacion: &confirmacion})
}

func (r *ParticipationRepository) MarkAttendance(ctx context.Context, id int64, attended bool) error {
	return r.Update(ctx, id, model.ParticipationPatch{AsistenciaReal: &attended})
}
