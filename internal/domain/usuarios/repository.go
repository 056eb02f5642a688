package usuarios

import "context"

type Repository interface {
	Crear(ctx context.Context, u Usuario) error
	ObtenerPorID(ctx context.Context, id string) (Usuario, error)
	Listar(ctx context.Context) ([]Usuario, error)
}
