package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gestion-notas/internal/domain/sectores"
)

type sectoresRepo struct {
	mu   sync.RWMutex
	byID map[string]sectores.Sector
}

func NewSectoresRepo() sectores.Repository {
	return &sectoresRepo{
		byID: make(map[string]sectores.Sector),
	}
}

func (r *sectoresRepo) Crear(ctx context.Context, s sectores.Sector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("sector id required")
	}
	for _, e := range r.byID {
		if e.Numero == s.Numero {
			return errors.New("número de sector ya existe")
		}
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sectoresRepo) ObtenerPorID(ctx context.Context, id string) (sectores.Sector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return sectores.Sector{}, ErrNotFound
	}
	return s, nil
}

func (r *sectoresRepo) ListarActivos(ctx context.Context) ([]sectores.Sector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sectores.Sector, 0, len(r.byID))
	for _, s := range r.byID {
		if s.Activo {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Nombre < out[j].Nombre
	})
	return out, nil
}
