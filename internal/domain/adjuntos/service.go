package adjuntos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestion-notas/internal/domain/notas"
	"gestion-notas/internal/domain/usuarios"

	"github.com/google/uuid"
)

var (
	ErrValidacion   = errors.New("validación fallida")
	ErrNoAutorizado = errors.New("no autorizado")
	ErrNoEncontrado = errors.New("no encontrado")
)

const tamañoMaxBytes = 25 << 20 // 25 MB

// VisorNotas resuelve la nota aplicando la regla de visibilidad del módulo
// de notas. *notas.Service lo satisface directo.
type VisorNotas interface {
	ObtenerPorID(ctx context.Context, actor usuarios.Actor, id string) (notas.Nota, error)
}

type Service struct {
	repo  Repository
	visor VisorNotas
	now   func() time.Time
}

func NewService(repo Repository, visor VisorNotas) *Service {
	return &Service{repo: repo, visor: visor, now: time.Now}
}

type AgregarInput struct {
	NombreArchivo string
	RutaArchivo   string
	TipoContenido string
	TamañoBytes   int64
	Descripcion   string
}

// Agregar registra un adjunto sobre una nota visible para el actor.
// Adjuntar NO genera registro de historial: el historial documenta el
// flujo de la nota, no sus archivos.
func (s *Service) Agregar(ctx context.Context, actor usuarios.Actor, notaID string, in AgregarInput) (Adjunto, error) {
	n, err := s.visor.ObtenerPorID(ctx, actor, notaID)
	if err != nil {
		return Adjunto{}, traducirErrorNota(err)
	}

	nombre := strings.TrimSpace(in.NombreArchivo)
	if nombre == "" {
		return Adjunto{}, fmt.Errorf("%w: nombre_archivo es obligatorio", ErrValidacion)
	}
	if in.TamañoBytes < 0 {
		return Adjunto{}, fmt.Errorf("%w: tamaño_bytes no puede ser negativo", ErrValidacion)
	}
	if in.TamañoBytes > tamañoMaxBytes {
		return Adjunto{}, fmt.Errorf("%w: el archivo supera el máximo permitido", ErrValidacion)
	}

	a := Adjunto{
		ID:            uuid.NewString(),
		NotaID:        n.ID,
		NombreArchivo: nombre,
		RutaArchivo:   strings.TrimSpace(in.RutaArchivo),
		TipoContenido: strings.TrimSpace(in.TipoContenido),
		TamañoBytes:   in.TamañoBytes,
		Descripcion:   strings.TrimSpace(in.Descripcion),
		SubidoPorID:   actor.UsuarioID,
		FechaCreacion: s.now(),
	}

	if err := s.repo.Crear(ctx, a); err != nil {
		return Adjunto{}, err
	}
	return a, nil
}

// ListarPorNota devuelve los adjuntos de una nota visible para el actor.
func (s *Service) ListarPorNota(ctx context.Context, actor usuarios.Actor, notaID string) ([]Adjunto, error) {
	n, err := s.visor.ObtenerPorID(ctx, actor, notaID)
	if err != nil {
		return nil, traducirErrorNota(err)
	}
	return s.repo.ListarPorNota(ctx, n.ID)
}

// Eliminar borra el registro del adjunto. Requiere editar_nota; la nota
// en sí nunca se borra, pero sus archivos sí pueden darse de baja.
func (s *Service) Eliminar(ctx context.Context, actor usuarios.Actor, adjuntoID string) error {
	if !usuarios.Puede(actor.Rol, usuarios.CapEditarNota) {
		return ErrNoAutorizado
	}

	a, err := s.repo.ObtenerPorID(ctx, strings.TrimSpace(adjuntoID))
	if err != nil {
		return ErrNoEncontrado
	}
	return s.repo.Eliminar(ctx, a.ID)
}

// traducirErrorNota re-etiqueta los errores del módulo de notas con los
// sentinelas propios para que los handlers de este paquete mapeen igual.
func traducirErrorNota(err error) error {
	switch {
	case errors.Is(err, notas.ErrNoEncontrado):
		return fmt.Errorf("%w: nota", ErrNoEncontrado)
	case errors.Is(err, notas.ErrNoAutorizado):
		return ErrNoAutorizado
	default:
		return err
	}
}
