package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gestion-notas/internal/domain/agentes"
)

type agentesRepo struct {
	mu   sync.RWMutex
	byID map[string]agentes.Agente
}

func NewAgentesRepo() agentes.Repository {
	return &agentesRepo{
		byID: make(map[string]agentes.Agente),
	}
}

func (r *agentesRepo) Crear(ctx context.Context, a agentes.Agente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("agente id required")
	}
	for _, e := range r.byID {
		if e.Legajo == a.Legajo {
			return errors.New("legajo ya existe")
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *agentesRepo) ObtenerPorID(ctx context.Context, id string) (agentes.Agente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return agentes.Agente{}, ErrNotFound
	}
	return a, nil
}

func (r *agentesRepo) ListarActivos(ctx context.Context) ([]agentes.Agente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]agentes.Agente, 0, len(r.byID))
	for _, a := range r.byID {
		if a.Activo {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Apellido != out[j].Apellido {
			return out[i].Apellido < out[j].Apellido
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out, nil
}
