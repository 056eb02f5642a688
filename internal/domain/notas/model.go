package notas

import "time"

// Nota es el agregado central: una pieza de correspondencia administrativa
// que atraviesa el flujo formal. Una nota nunca se borra físicamente; la
// baja se modela con el estado terminal ANULADA y su motivo.
type Nota struct {
	ID string

	// NumeroInterno lo genera el sistema al persistir por primera vez,
	// con formato {sector|INT}-NNNN-{año}. Inmutable y único.
	NumeroInterno string
	// NumeroExterno es el número formal del remitente, si lo trae.
	// Se guarda tal cual llega y no es único.
	NumeroExterno string

	FechaIngreso time.Time
	FechaLimite  *time.Time

	Remitente      string
	SectorOrigenID *string
	AreaOrigen     string
	Tema           string
	TareaAsignada  string
	Descripcion    string

	Prioridad    Prioridad
	Estado       Estado
	CanalIngreso CanalIngreso

	ResponsableID *string
	CreadoPorID   *string

	FechaCreacion      time.Time
	UltimaModificacion time.Time

	Anulada         bool
	MotivoAnulacion string

	GeneraResolucion bool
	NumeroResolucion string
	FechaResolucion  *time.Time
}

// EstaAtrasada indica si venció la fecha límite y la nota sigue viva.
func (n Nota) EstaAtrasada(hoy time.Time) bool {
	if n.FechaLimite == nil {
		return false
	}
	if n.Estado == EstadoArchivada || n.Estado == EstadoAnulada {
		return false
	}
	return n.FechaLimite.Before(hoy)
}

// NotaAgente vincula una nota con un agente de la institución y lleva
// una observación libre sobre el vínculo.
type NotaAgente struct {
	ID          string
	NotaID      string
	AgenteID    string
	Observacion string

	FechaCreacion time.Time
}

// Cambio es el par anterior/nuevo de un campo modificado.
type Cambio struct {
	Anterior string `json:"anterior"`
	Nuevo    string `json:"nuevo"`
}

// HistorialNota es un registro de auditoría inmutable: se inserta una vez
// y ningún camino del contrato lo actualiza ni lo borra.
type HistorialNota struct {
	ID     string
	NotaID string

	UsuarioID string
	FechaHora time.Time

	TipoEvento TipoEvento

	EstadoAnterior *Estado
	EstadoNuevo    *Estado

	ResponsableAnteriorID *string
	ResponsableNuevoID    *string

	DescripcionCambio string
	CamposModificados map[string]Cambio
}
