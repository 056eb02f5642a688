package adjuntos

import "context"

type Repository interface {
	Crear(ctx context.Context, a Adjunto) error
	ObtenerPorID(ctx context.Context, id string) (Adjunto, error)
	ListarPorNota(ctx context.Context, notaID string) ([]Adjunto, error)
	Eliminar(ctx context.Context, id string) error
}
