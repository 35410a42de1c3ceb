package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/model"
)

type RoleRepository struct {
	db Executor
}

func NewRoleRepository(db Executor) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context) ([]model.RoleRecord, error) {
	roles := []model.RoleRecord{}
	if err := r.db.SelectContext(ctx, &roles, `SELECT id, nombre FROM roles ORDER BY id`); err != nil {
		return nil, apperror.Storage("list roles", err)
	}
	return roles, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*model.RoleRecord, error) {
	var role model.RoleRecord
	err := r.db.GetContext(ctx, &role, `SELECT id, nombre FROM roles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage("find role", err)
	}
	return &role, nil
}
