package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gestion-notas/internal/domain/agentes"
)

type AgentesRepo struct {
	db *sql.DB
}

func NewAgentesRepo(db *sql.DB) *AgentesRepo {
	return &AgentesRepo{db: db}
}

func (r *AgentesRepo) Crear(ctx context.Context, a agentes.Agente) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO agentes (id, apellido, nombre, legajo, sector_id, usuario_id, cargo, activo, fecha_creacion)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, a.ID, a.Apellido, a.Nombre, a.Legajo, toNullString(a.SectorID), toNullString(a.UsuarioID), a.Cargo, a.Activo, a.FechaCreacion)
	return err
}

func (r *AgentesRepo) ObtenerPorID(ctx context.Context, id string) (agentes.Agente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return agentes.Agente{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, apellido, nombre, legajo, sector_id, usuario_id, cargo, activo, fecha_creacion
		FROM agentes
		WHERE id = $1
	`, id)

	a, err := scanAgente(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return agentes.Agente{}, ErrNotFound
		}
		return agentes.Agente{}, err
	}
	return a, nil
}

func (r *AgentesRepo) ListarActivos(ctx context.Context) ([]agentes.Agente, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, apellido, nombre, legajo, sector_id, usuario_id, cargo, activo, fecha_creacion
		FROM agentes
		WHERE activo
		ORDER BY apellido ASC, nombre ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]agentes.Agente, 0)
	for rows.Next() {
		a, err := scanAgente(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAgente(row scanner) (agentes.Agente, error) {
	var (
		a                   agentes.Agente
		sectorID, usuarioID sql.NullString
	)
	if err := row.Scan(&a.ID, &a.Apellido, &a.Nombre, &a.Legajo, &sectorID, &usuarioID, &a.Cargo, &a.Activo, &a.FechaCreacion); err != nil {
		return agentes.Agente{}, err
	}
	a.SectorID = nullToString(sectorID)
	a.UsuarioID = nullToString(usuarioID)
	return a, nil
}
