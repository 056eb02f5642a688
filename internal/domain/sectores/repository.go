package sectores

import "context"

type Repository interface {
	Crear(ctx context.Context, s Sector) error
	ObtenerPorID(ctx context.Context, id string) (Sector, error)
	// ListarActivos devuelve los sectores activos ordenados por nombre.
	ListarActivos(ctx context.Context) ([]Sector, error)
}
