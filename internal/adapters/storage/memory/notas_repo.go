package memory

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gestion-notas/internal/domain/notas"
)

var (
	ErrNotFound = errors.New("not found")
)

// notasRepo guarda todo en memoria. El mutex cumple el mismo rol que la
// transacción con lock en Postgres: numeración, inserción de la nota y
// del historial ocurren bajo la misma sección crítica.
type notasRepo struct {
	mu        sync.RWMutex
	byID      map[string]notas.Nota
	historial map[string][]notas.HistorialNota
	vinculos  map[string][]notas.NotaAgente
}

func NewNotasRepo() notas.Repository {
	return &notasRepo{
		byID:      make(map[string]notas.Nota),
		historial: make(map[string][]notas.HistorialNota),
		vinculos:  make(map[string][]notas.NotaAgente),
	}
}

func (r *notasRepo) Crear(ctx context.Context, prefijo string, n notas.Nota, h notas.HistorialNota) (notas.Nota, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(n.ID) == "" {
		return notas.Nota{}, errors.New("nota id required")
	}
	if _, exists := r.byID[n.ID]; exists {
		return notas.Nota{}, errors.New("nota already exists")
	}

	año := n.FechaIngreso.Year()
	sec := 1
	if ultimo := r.ultimoNumero(prefijo, año); ultimo != "" {
		sec = notas.SiguienteSecuencia(ultimo)
	}
	n.NumeroInterno = notas.FormatearNumeroInterno(prefijo, sec, año)

	r.byID[n.ID] = n
	r.historial[n.ID] = append(r.historial[n.ID], h)
	return n, nil
}

// ultimoNumero busca el máximo lexicográfico del scope {prefijo}+año.
// El ancho fijo de la secuencia hace válido ese orden.
func (r *notasRepo) ultimoNumero(prefijo string, año int) string {
	pre := prefijo + "-"
	suf := "-" + strconv.Itoa(año)

	ultimo := ""
	for _, n := range r.byID {
		if strings.HasPrefix(n.NumeroInterno, pre) && strings.HasSuffix(n.NumeroInterno, suf) && n.NumeroInterno > ultimo {
			ultimo = n.NumeroInterno
		}
	}
	return ultimo
}

func (r *notasRepo) Actualizar(ctx context.Context, n notas.Nota, h *notas.HistorialNota) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[n.ID]; !exists {
		return ErrNotFound
	}
	r.byID[n.ID] = n
	if h != nil {
		r.historial[n.ID] = append(r.historial[n.ID], *h)
	}
	return nil
}

func (r *notasRepo) ObtenerPorID(ctx context.Context, id string) (notas.Nota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byID[id]
	if !ok {
		return notas.Nota{}, ErrNotFound
	}
	return n, nil
}

func (r *notasRepo) Listar(ctx context.Context, f notas.ListFilter) ([]notas.Nota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notas.Nota, 0)
	for _, n := range r.byID {
		if !coincide(n, f) {
			continue
		}
		out = append(out, n)
	}

	if f.OrdenFechaLimiteAsc {
		sort.Slice(out, func(i, j int) bool {
			if out[i].FechaLimite == nil || out[j].FechaLimite == nil {
				return out[j].FechaLimite == nil
			}
			return out[i].FechaLimite.Before(*out[j].FechaLimite)
		})
	} else {
		sort.Slice(out, func(i, j int) bool {
			return out[i].FechaIngreso.After(out[j].FechaIngreso)
		})
	}

	return out, nil
}

func coincide(n notas.Nota, f notas.ListFilter) bool {
	if f.Estado != nil && n.Estado != *f.Estado {
		return false
	}
	if len(f.Estados) > 0 {
		ok := false
		for _, e := range f.Estados {
			if n.Estado == e {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.ResponsableID != nil && (n.ResponsableID == nil || *n.ResponsableID != *f.ResponsableID) {
		return false
	}
	if f.Prioridad != nil && n.Prioridad != *f.Prioridad {
		return false
	}
	if f.SoloAtrasadas && !n.EstaAtrasada(f.Hoy) {
		return false
	}
	if f.VisiblePara != nil {
		esResp := n.ResponsableID != nil && *n.ResponsableID == *f.VisiblePara
		esCreador := n.CreadoPorID != nil && *n.CreadoPorID == *f.VisiblePara
		if !esResp && !esCreador {
			return false
		}
	}
	return true
}

func (r *notasRepo) ListarHistorial(ctx context.Context, notaID string) ([]notas.HistorialNota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hs := r.historial[notaID]

	// Más reciente primero
	out := make([]notas.HistorialNota, 0, len(hs))
	for i := len(hs) - 1; i >= 0; i-- {
		out = append(out, hs[i])
	}
	return out, nil
}

func (r *notasRepo) VincularAgente(ctx context.Context, na notas.NotaAgente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vinculos[na.NotaID] = append(r.vinculos[na.NotaID], na)
	return nil
}

func (r *notasRepo) ListarAgentes(ctx context.Context, notaID string) ([]notas.NotaAgente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]notas.NotaAgente(nil), r.vinculos[notaID]...), nil
}
