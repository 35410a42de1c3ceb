package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gestion-eventos/internal/config"
)

// Executor is the query surface repositories depend on. *Database and
// *sqlx.Tx both satisfy it.
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Database owns the connection pool. It is opened once at startup and
// injected into every repository.
type Database struct {
	*sqlx.DB
}

func NewDatabase(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	return &Database{DB: db}, nil
}

func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) RunMigrations(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id BIGSERIAL PRIMARY KEY,
			nombre VARCHAR(50) UNIQUE NOT NULL
		)`,
		`INSERT INTO roles (nombre) VALUES ('administrador'), ('organizador')
		 ON CONFLICT (nombre) DO NOTHING`,
		`CREATE TABLE IF NOT EXISTS asistentes (
			id BIGSERIAL PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL,
			apellido VARCHAR(100) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			telefono BIGINT NOT NULL,
			dni BIGINT NOT NULL,
			refresh_token TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS usuarios (
			id BIGSERIAL PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL,
			apellido VARCHAR(100) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			telefono BIGINT NOT NULL,
			dni BIGINT NOT NULL,
			rol_id BIGINT NOT NULL REFERENCES roles(id)
		)`,
		`CREATE TABLE IF NOT EXISTS eventos (
			id BIGSERIAL PRIMARY KEY,
			nombre VARCHAR(150) NOT NULL,
			ubicacion VARCHAR(255) NOT NULL,
			fecha DATE NOT NULL,
			descripcion TEXT NOT NULL DEFAULT '',
			realizado BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS participacion (
			id BIGSERIAL PRIMARY KEY,
			asistente_id BIGINT NOT NULL REFERENCES asistentes(id) ON DELETE CASCADE,
			evento_id BIGINT NOT NULL REFERENCES eventos(id) ON DELETE CASCADE,
			confirmacion BOOLEAN NOT NULL DEFAULT true,
			asistencia_real BOOLEAN,
			UNIQUE (asistente_id, evento_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_eventos_fecha ON eventos(fecha)`,
		`CREATE INDEX IF NOT EXISTS idx_eventos_realizado ON eventos(realizado)`,
		`CREATE INDEX IF NOT EXISTS idx_participacion_evento ON participacion(evento_id)`,
		`CREATE INDEX IF NOT EXISTS idx_participacion_asistente ON participacion(asistente_id)`,
	}

	for _, migration := range migrations {
		if _, err := d.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
