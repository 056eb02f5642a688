package agentes

import "context"

type Repository interface {
	Crear(ctx context.Context, a Agente) error
	ObtenerPorID(ctx context.Context, id string) (Agente, error)
	// ListarActivos ordena por apellido y nombre.
	ListarActivos(ctx context.Context) ([]Agente, error)
}
