package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gestion-notas/internal/domain/sectores"
)

type SectoresRepo struct {
	db *sql.DB
}

func NewSectoresRepo(db *sql.DB) *SectoresRepo {
	return &SectoresRepo{db: db}
}

func (r *SectoresRepo) Crear(ctx context.Context, s sectores.Sector) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sectores (id, nombre, numero, activo, fecha_creacion)
		VALUES ($1,$2,$3,$4,$5)
	`, s.ID, s.Nombre, s.Numero, s.Activo, s.FechaCreacion)
	return err
}

func (r *SectoresRepo) ObtenerPorID(ctx context.Context, id string) (sectores.Sector, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return sectores.Sector{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, numero, activo, fecha_creacion
		FROM sectores
		WHERE id = $1
	`, id)

	var s sectores.Sector
	if err := row.Scan(&s.ID, &s.Nombre, &s.Numero, &s.Activo, &s.FechaCreacion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sectores.Sector{}, ErrNotFound
		}
		return sectores.Sector{}, err
	}
	return s, nil
}

func (r *SectoresRepo) ListarActivos(ctx context.Context) ([]sectores.Sector, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, numero, activo, fecha_creacion
		FROM sectores
		WHERE activo
		ORDER BY nombre ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]sectores.Sector, 0)
	for rows.Next() {
		var s sectores.Sector
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Numero, &s.Activo, &s.FechaCreacion); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
