package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gestion-notas/internal/domain/adjuntos"
)

type adjuntosRepo struct {
	mu   sync.RWMutex
	byID map[string]adjuntos.Adjunto
}

func NewAdjuntosRepo() adjuntos.Repository {
	return &adjuntosRepo{
		byID: make(map[string]adjuntos.Adjunto),
	}
}

func (r *adjuntosRepo) Crear(ctx context.Context, a adjuntos.Adjunto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adjunto id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *adjuntosRepo) ObtenerPorID(ctx context.Context, id string) (adjuntos.Adjunto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adjuntos.Adjunto{}, ErrNotFound
	}
	return a, nil
}

func (r *adjuntosRepo) ListarPorNota(ctx context.Context, notaID string) ([]adjuntos.Adjunto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adjuntos.Adjunto, 0)
	for _, a := range r.byID {
		if a.NotaID == notaID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaCreacion.Before(out[j].FechaCreacion)
	})
	return out, nil
}

func (r *adjuntosRepo) Eliminar(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
