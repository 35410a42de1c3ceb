package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/model"
)

const userSelect = `
	SELECT u.id, u.nombre, u.apellido, u.email, u.password, u.telefono, u.dni,
	       u.rol_id, r.nombre AS rol_nombre
	FROM usuarios u
	JOIN roles r ON r.id = u.rol_id`

type UserRepository struct {
	db Executor
}

func NewUserRepository(db Executor) *UserRepository {
	return &UserRepository{db: db}
}

// List never exposes password hashes.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.db.SelectContext(ctx, &users, userSelect+` ORDER BY u.id`); err != nil {
		return nil, apperror.Storage("list users", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, "find user", userSelect+` WHERE u.id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "find user by email", userSelect+` WHERE u.email = $1`, email)
}

func (r *UserRepository) findOne(ctx context.Context, op, query string, arg interface{}) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage(op, err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		WITH inserted AS (
			INSERT INTO usuarios (nombre, apellido, email, password, telefono, dni, rol_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT u.id, u.nombre, u.apellido, u.email, u.password, u.telefono, u.dni,
		       u.rol_id, r.nombre AS rol_nombre
		FROM inserted u
		JOIN roles r ON r.id = u.rol_id`

	var created model.User
	err := r.db.QueryRowxContext(ctx, query,
		user.Nombre, user.Apellido, user.Email, user.Password,
		user.Telefono, user.DNI, user.RolID,
	).StructScan(&created)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, apperror.Conflict("El email ya está registrado")
		case isForeignKeyViolation(err):
			return nil, apperror.Validation("El rol indicado no existe")
		}
		return nil, apperror.Storage("create user", err)
	}
	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch model.UserPatch) error {
	return execUpdate(ctx, r.db, userTable, id, patch.Fields())
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE usuarios SET password = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return apperror.Storage("update user password", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Storage("update user password", err)
	}
	if rows == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
