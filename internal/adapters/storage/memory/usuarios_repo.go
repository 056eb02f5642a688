package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gestion-notas/internal/domain/usuarios"
)

type usuariosRepo struct {
	mu   sync.RWMutex
	byID map[string]usuarios.Usuario
}

func NewUsuariosRepo() usuarios.Repository {
	return &usuariosRepo{
		byID: make(map[string]usuarios.Usuario),
	}
}

func (r *usuariosRepo) Crear(ctx context.Context, u usuarios.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("usuario id required")
	}
	for _, e := range r.byID {
		if e.NombreUsuario == u.NombreUsuario {
			return errors.New("nombre de usuario ya existe")
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *usuariosRepo) ObtenerPorID(ctx context.Context, id string) (usuarios.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return usuarios.Usuario{}, ErrNotFound
	}
	return u, nil
}

func (r *usuariosRepo) Listar(ctx context.Context) ([]usuarios.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]usuarios.Usuario, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NombreUsuario < out[j].NombreUsuario
	})
	return out, nil
}
