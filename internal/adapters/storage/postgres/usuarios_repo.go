package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gestion-notas/internal/domain/usuarios"
)

type UsuariosRepo struct {
	db *sql.DB
}

func NewUsuariosRepo(db *sql.DB) *UsuariosRepo {
	return &UsuariosRepo{db: db}
}

func (r *UsuariosRepo) Crear(ctx context.Context, u usuarios.Usuario) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usuarios (id, nombre_usuario, nombre_completo, rol, activo, fecha_creacion)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, u.ID, u.NombreUsuario, u.NombreCompleto, string(u.Rol), u.Activo, u.FechaCreacion)
	return err
}

func (r *UsuariosRepo) ObtenerPorID(ctx context.Context, id string) (usuarios.Usuario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return usuarios.Usuario{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, nombre_usuario, nombre_completo, rol, activo, fecha_creacion
		FROM usuarios
		WHERE id = $1
	`, id)

	var (
		u   usuarios.Usuario
		rol string
	)
	if err := row.Scan(&u.ID, &u.NombreUsuario, &u.NombreCompleto, &rol, &u.Activo, &u.FechaCreacion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return usuarios.Usuario{}, ErrNotFound
		}
		return usuarios.Usuario{}, err
	}
	u.Rol = usuarios.Rol(rol)
	return u, nil
}

func (r *UsuariosRepo) Listar(ctx context.Context) ([]usuarios.Usuario, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre_usuario, nombre_completo, rol, activo, fecha_creacion
		FROM usuarios
		ORDER BY nombre_usuario ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]usuarios.Usuario, 0)
	for rows.Next() {
		var (
			u   usuarios.Usuario
			rol string
		)
		if err := rows.Scan(&u.ID, &u.NombreUsuario, &u.NombreCompleto, &rol, &u.Activo, &u.FechaCreacion); err != nil {
			return nil, err
		}
		u.Rol = usuarios.Rol(rol)
		out = append(out, u)
	}
	return out, rows.Err()
}
