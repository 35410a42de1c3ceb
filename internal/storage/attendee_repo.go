package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/model"
)

const attendeeColumns = `id, nombre, apellido, email, password, telefono, dni, refresh_token`

type AttendeeRepository struct {
	db Executor
}

func NewAttendeeRepository(db Executor) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

func (r *AttendeeRepository) List(ctx context.Context) ([]model.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM asistentes ORDER BY id`

	attendees := []model.Attendee{}
	if err := r.db.SelectContext(ctx, &attendees, query); err != nil {
		return nil, apperror.Storage("list attendees", err)
	}
	return attendees, nil
}

// FindByID returns nil, nil when no attendee has the id.
func (r *AttendeeRepository) FindByID(ctx context.Context, id int64) (*model.Attendee, error) {
	return r.findOne(ctx, "find attendee", `SELECT `+attendeeColumns+` FROM asistentes WHERE id = $1`, id)
}

func (r *AttendeeRepository) FindByEmail(ctx context.Context, email string) (*model.Attendee, error) {
	return r.findOne(ctx, "find attendee by email", `SELECT `+attendeeColumns+` FROM asistentes WHERE email = $1`, email)
}

func (r *AttendeeRepository) findOne(ctx context.Context, op, query string, arg interface{}) (*model.Attendee, error) {
	var attendee model.Attendee
	err := r.db.GetContext(ctx, &attendee, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage(op, err)
	}
	return &attendee, nil
}

// Create inserts the attendee. Password must already be hashed.
func (r *AttendeeRepository) Create(ctx context.Context, attendee *model.Attendee) (*model.Attendee, error) {
	query := `
		INSERT INTO asistentes (nombre, apellido, email, password, telefono, dni)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendeeColumns

	var created model.Attendee
	err := r.db.QueryRowxContext(ctx, query,
		attendee.Nombre, attendee.Apellido, attendee.Email, attendee.Password,
		attendee.Telefono, attendee.DNI,
	).StructScan(&created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict("El email ya está registrado")
		}
		return nil, apperror.Storage("create attendee", err)
	}
	return &created, nil
}

func (r *AttendeeRepository) Update(ctx context.Context, id int64, patch model.AttendeePatch) error {
	return execUpdate(ctx, r.db, attendeeTable, id, patch.Fields())
}

func (r *AttendeeRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return r.execOne(ctx, "update attendee password", `UPDATE asistentes SET password = $1 WHERE id = $2`, hash, id)
}

func (r *AttendeeRepository) SetRefreshToken(ctx context.Context, id int64, token string) error {
	return r.execOne(ctx, "store refresh token", `UPDATE asistentes SET refresh_token = $1 WHERE id = $2`, token, id)
}

// RefreshToken returns the stored refresh token, or nil when the attendee
// does not exist or never logged in.
func (r *AttendeeRepository) RefreshToken(ctx context.Context, id int64) (*string, error) {
	var token sql.NullString
	err := r.db.GetContext(ctx, &token, `SELECT refresh_token FROM asistentes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage("load refresh token", err)
	}
	if !token.Valid || token.String == "" {
		return nil, nil
	}
	return &token.String, nil
}

func (r *AttendeeRepository) execOne(ctx context.Context, op, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Storage(op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Storage(op, err)
	}
	if rows == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
