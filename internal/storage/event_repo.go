package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/model"
)

const eventColumns = `id, nombre, ubicacion, fecha, descripcion, realizado`

type EventRepository struct {
	db Executor
}

func NewEventRepository(db Executor) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	return r.list(ctx, "list events", `SELECT `+eventColumns+` FROM eventos ORDER BY fecha, id`)
}

// ListActive returns events not yet held, soonest first.
func (r *EventRepository) ListActive(ctx context.Context) ([]model.Event, error) {
	return r.list(ctx, "list active events",
		`SELECT `+eventColumns+` FROM eventos WHERE realizado = false ORDER BY fecha, id`)
}

func (r *EventRepository) list(ctx context.Context, op, query string) ([]model.Event, error) {
	events := []model.Event{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, apperror.Storage(op, err)
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	var event model.Event
	err := r.db.GetContext(ctx, &event, `SELECT `+eventColumns+` FROM eventos WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage("find event", err)
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO eventos (nombre, ubicacion, fecha, descripcion, realizado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + eventColumns

	var created model.Event
	err := r.db.QueryRowxContext(ctx, query,
		event.Nombre, event.Ubicacion, event.Fecha, event.Descripcion, event.Realizado,
	).StructScan(&created)
	if err != nil {
		return nil, apperror.Storage("create event", err)
	}
	return &created, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, patch model.EventPatch) error {
	return execUpdate(ctx, r.db, eventTable, id, patch.Fields())
}

// MarkPastEventsDone flags every pending event dated before today and
// returns how many were flagged.
func (r *EventRepository) MarkPastEventsDone(ctx context.Context, today model.Date) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE eventos SET realizado = true WHERE realizado = false AND fecha < $1`, today)
	if err != nil {
		return 0, apperror.Storage("sweep past events", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperror.Storage("sweep past events", err)
	}
	return rows, nil
}

// WithAttendees loads an event and its roster. Returns nil, nil when the
// event does not exist.
func (r *EventRepository) WithAttendees(ctx context.Context, id int64) (*model.EventWithAttendees, error) {
	event, err := r.FindByID(ctx, id)
	if err != nil || event == nil {
		return nil, err
	}

	query := `
		SELECT p.id, p.asistente_id, a.nombre, a.apellido, a.email, a.telefono, a.dni,
		       p.confirmacion, p.asistencia_real
		FROM participacion p
		JOIN asistentes a ON a.id = p.asistente_id
		WHERE p.evento_id = $1
		ORDER BY a.apellido, a.nombre, p.id`

	roster := []model.EventAttendee{}
	if err := r.db.SelectContext(ctx, &roster, query, id); err != nil {
		return nil, apperror.Storage("load event roster", err)
	}

	return &model.EventWithAttendees{
		EventoID:    event.ID,
		Nombre:      event.Nombre,
		Ubicacion:   event.Ubicacion,
		Fecha:       event.Fecha,
		Descripcion: event.Descripcion,
		Realizado:   event.Realizado,
		Asistentes:  roster,
	}, nil
}
