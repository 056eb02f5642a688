package notas

import (
	"context"
	"time"
)

// Repository persiste el agregado. Crear y Actualizar reciben el registro
// de historial junto con la nota porque ambos deben confirmarse en la
// misma transacción: nunca debe observarse una nota mutada sin su registro,
// ni un registro sin la mutación.
//
// El historial es append-only a nivel de contrato: no existen métodos de
// actualización ni borrado de HistorialNota.
type Repository interface {
	// Crear asigna el número interno dentro de la transacción de inserción,
	// tomando el lock sobre el último número del scope {prefijo}+año hasta
	// el commit. Devuelve la nota con el número asignado.
	Crear(ctx context.Context, prefijo string, n Nota, h HistorialNota) (Nota, error)

	// Actualizar persiste la nota y, si h != nil, inserta el registro de
	// historial de forma atómica.
	Actualizar(ctx context.Context, n Nota, h *HistorialNota) error

	ObtenerPorID(ctx context.Context, id string) (Nota, error)
	Listar(ctx context.Context, f ListFilter) ([]Nota, error)

	ListarHistorial(ctx context.Context, notaID string) ([]HistorialNota, error)

	VincularAgente(ctx context.Context, na NotaAgente) error
	ListarAgentes(ctx context.Context, notaID string) ([]NotaAgente, error)
}

// ListFilter filtra el listado. VisiblePara restringe a notas donde el
// usuario es responsable o creador; el service lo setea cuando el actor
// no tiene la capacidad ver_todas_las_notas.
type ListFilter struct {
	Estado        *Estado
	Estados       []Estado
	ResponsableID *string
	Prioridad     *Prioridad

	// SoloAtrasadas: fecha límite anterior a Hoy y estado fuera de
	// {ARCHIVADA, ANULADA}.
	SoloAtrasadas bool
	Hoy           time.Time

	VisiblePara *string

	// OrdenFechaLimiteAsc cambia el orden por defecto (fecha de ingreso
	// descendente) al de vencimiento ascendente.
	OrdenFechaLimiteAsc bool
}
