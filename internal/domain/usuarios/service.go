package usuarios

import (
	"context"
	"errors"
	"strings"
	"time"

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
	NombreUsuario  string
	NombreCompleto string
	Rol            Rol
}

// Crear da de alta una identidad de acceso. Solo ADMIN.
func (s *Service) Crear(ctx context.Context, actor Actor, in CrearInput) (Usuario, error) {
	if actor.Rol != RolAdmin {
		return Usuario{}, ErrNoAutorizado
	}
	if strings.TrimSpace(in.NombreUsuario) == "" {
		return Usuario{}, ErrInvalido
	}
	if !RolValido(in.Rol) {
		return Usuario{}, ErrInvalido
	}

	u := Usuario{
		ID:             uuid.NewString(),
		NombreUsuario:  strings.TrimSpace(in.NombreUsuario),
		NombreCompleto: strings.TrimSpace(in.NombreCompleto),
		Rol:            in.Rol,
		Activo:         true,
		FechaCreacion:  s.now(),
	}

	if err := s.repo.Crear(ctx, u); err != nil {
		return Usuario{}, err
	}
	return u, nil
}

func (s *Service) ObtenerPorID(ctx context.Context, id string) (Usuario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Usuario{}, ErrInvalido
	}
	u, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return Usuario{}, ErrNoEncontrado
	}
	return u, nil
}

// Listar devuelve el directorio de usuarios (para selectores de responsable).
func (s *Service) Listar(ctx context.Context) ([]Usuario, error) {
	return s.repo.Listar(ctx)
}
