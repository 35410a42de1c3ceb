package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/model"
)

// updatableTable is the static allow-list of columns a partial update may
// touch. Identifiers, passwords and refresh tokens are never listed.
type updatableTable struct {
	name    string
	columns map[string]struct{}
}

func newUpdatableTable(name string, columns ...string) updatableTable {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return updatableTable{name: name, columns: set}
}

var (
	attendeeTable      = newUpdatableTable("asistentes", "nombre", "apellido", "email", "telefono", "dni")
	userTable          = newUpdatableTable("usuarios", "nombre", "apellido", "email", "telefono", "dni", "rol_id")
	eventTable         = newUpdatableTable("eventos", "nombre", "ubicacion", "fecha", "descripcion", "realizado")
	participationTable = newUpdatableTable("participacion", "asistente_id", "evento_id", "confirmacion", "asistencia_real")
)

// buildUpdate assembles a single parameterized UPDATE assigning exactly the
// given fields.
func buildUpdate(table updatableTable, id int64, fields []model.Field) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, apperror.ErrNoFieldsToUpdate
	}

	assignments := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if _, ok := table.columns[f.Column]; !ok {
			return "", nil, fmt.Errorf("column %q is not updatable on %s", f.Column, table.name)
		}
		if _, dup := seen[f.Column]; dup {
			return "", nil, fmt.Errorf("column %q assigned twice on %s", f.Column, table.name)
		}
		seen[f.Column] = struct{}{}

		args = append(args, f.Value)
		assignments = append(assignments, f.Column+" = $"+strconv.Itoa(len(args)))
	}
	args = append(args, id)

	query := "UPDATE " + table.name + " SET " + strings.Join(assignments, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args))
	return query, args, nil
}

// execUpdate runs a partial update. No statement is issued when fields is
// empty.
func execUpdate(ctx context.Context, db Executor, table updatableTable, id int64, fields []model.Field) error {
	query, args, err := buildUpdate(table, id, fields)
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return apperror.Conflict("Ya existe un registro con esos datos")
		case isForeignKeyViolation(err):
			return apperror.Validation("La referencia indicada no existe")
		}
		return apperror.Storage("update "+table.name, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Storage("update "+table.name, err)
	}
	if rows == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
