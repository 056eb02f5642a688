package agentes

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
	Apellido  string
	Nombre    string
	Legajo    string
	SectorID  string
	UsuarioID string
	Cargo     string
}

// Crear da de alta un agente. ADMIN o SUPERVISOR.
func (s *Service) Crear(ctx context.Context, actor usuarios.Actor, in CrearInput) (Agente, error) {
	if actor.Rol != usuarios.RolAdmin && actor.Rol != usuarios.RolSupervisor {
		return Agente{}, ErrNoAutorizado
	}
	if strings.TrimSpace(in.Apellido) == "" || strings.TrimSpace(in.Nombre) == "" {
		return Agente{}, ErrInvalido
	}
	if strings.TrimSpace(in.Legajo) == "" {
		return Agente{}, ErrInvalido
	}

	a := Agente{
		ID:            uuid.NewString(),
		Apellido:      strings.TrimSpace(in.Apellido),
		Nombre:        strings.TrimSpace(in.Nombre),
		Legajo:        strings.TrimSpace(in.Legajo),
		Cargo:         strings.TrimSpace(in.Cargo),
		Activo:        true,
		FechaCreacion: s.now(),
	}
	if v := strings.TrimSpace(in.SectorID); v != "" {
		a.SectorID = &v
	}
	if v := strings.TrimSpace(in.UsuarioID); v != "" {
		a.UsuarioID = &v
	}

	if err := s.repo.Crear(ctx, a); err != nil {
		return Agente{}, err
	}
	return a, nil
}

func (s *Service) ObtenerPorID(ctx context.Context, id string) (Agente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Agente{}, ErrInvalido
	}
	a, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return Agente{}, ErrNoEncontrado
	}
	return a, nil
}

func (s *Service) ListarActivos(ctx context.Context) ([]Agente, error) {
	return s.repo.ListarActivos(ctx)
}
