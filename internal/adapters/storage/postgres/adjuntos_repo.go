package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gestion-notas/internal/domain/adjuntos"
)

type AdjuntosRepo struct {
	db *sql.DB
}

func NewAdjuntosRepo(db *sql.DB) *AdjuntosRepo {
	return &AdjuntosRepo{db: db}
}

func (r *AdjuntosRepo) Crear(ctx context.Context, a adjuntos.Adjunto) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adjuntos (
			id, nota_id, nombre_archivo, ruta_archivo,
			tipo_contenido, tamano_bytes, descripcion,
			subido_por_id, fecha_creacion
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, a.ID, a.NotaID, a.NombreArchivo, a.RutaArchivo,
		a.TipoContenido, a.TamañoBytes, a.Descripcion,
		a.SubidoPorID, a.FechaCreacion)
	return err
}

func (r *AdjuntosRepo) ObtenerPorID(ctx context.Context, id string) (adjuntos.Adjunto, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adjuntos.Adjunto{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, nota_id, nombre_archivo, ruta_archivo,
			tipo_contenido, tamano_bytes, descripcion,
			subido_por_id, fecha_creacion
		FROM adjuntos
		WHERE id = $1
	`, id)

	var a adjuntos.Adjunto
	if err := row.Scan(&a.ID, &a.NotaID, &a.NombreArchivo, &a.RutaArchivo,
		&a.TipoContenido, &a.TamañoBytes, &a.Descripcion,
		&a.SubidoPorID, &a.FechaCreacion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adjuntos.Adjunto{}, ErrNotFound
		}
		return adjuntos.Adjunto{}, err
	}
	return a, nil
}

func (r *AdjuntosRepo) ListarPorNota(ctx context.Context, notaID string) ([]adjuntos.Adjunto, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nota_id, nombre_archivo, ruta_archivo,
			tipo_contenido, tamano_bytes, descripcion,
			subido_por_id, fecha_creacion
		FROM adjuntos
		WHERE nota_id = $1
		ORDER BY fecha_creacion ASC
	`, notaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adjuntos.Adjunto, 0)
	for rows.Next() {
		var a adjuntos.Adjunto
		if err := rows.Scan(&a.ID, &a.NotaID, &a.NombreArchivo, &a.RutaArchivo,
			&a.TipoContenido, &a.TamañoBytes, &a.Descripcion,
			&a.SubidoPorID, &a.FechaCreacion); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdjuntosRepo) Eliminar(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM adjuntos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	filas, _ := res.RowsAffected()
	if filas == 0 {
		return ErrNotFound
	}
	return nil
}
