package sectores

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestion-notas/internal/domain/usuarios"

	"github.com/google/uuid"
)

var (
	ErrInvalido     = errors.New("entrada inválida")
	ErrNoAutorizado = errors.New("no autorizado")
	ErrNoEncontrado = errors.New("no encontrado")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CrearInput struct {
	Nombre string
	Numero int
}

// Crear da de alta un sector. Solo ADMIN: el número institucional es
// identidad formal y no se toca después.
func (s *Service) Crear(ctx context.Context, actor usuarios.Actor, in CrearInput) (Sector, error) {
	if actor.Rol != usuarios.RolAdmin {
		return Sector{}, ErrNoAutorizado
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return Sector{}, ErrInvalido
	}
	if in.Numero <= 0 {
		return Sector{}, ErrInvalido
	}

	sec := Sector{
		ID:            uuid.NewString(),
		Nombre:        strings.TrimSpace(in.Nombre),
		Numero:        in.Numero,
		Activo:        true,
		FechaCreacion: s.now(),
	}

	if err := s.repo.Crear(ctx, sec); err != nil {
		return Sector{}, err
	}
	return sec, nil
}

func (s *Service) ObtenerPorID(ctx context.Context, id string) (Sector, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Sector{}, ErrInvalido
	}
	sec, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return Sector{}, ErrNoEncontrado
	}
	return sec, nil
}

func (s *Service) ListarActivos(ctx context.Context) ([]Sector, error) {
	return s.repo.ListarActivos(ctx)
}
