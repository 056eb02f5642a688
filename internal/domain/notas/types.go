package notas

// Estado es la posición de la nota en el flujo formal.
// @Enum INGRESADA, EN_REVISION, ASIGNADA, EN_PROCESO, EN_ESPERA, DEVUELTA, RESUELTA, ARCHIVADA, ANULADA
type Estado string

const (
	EstadoIngresada  Estado = "INGRESADA"
	EstadoEnRevision Estado = "EN_REVISION"
	EstadoAsignada   Estado = "ASIGNADA"
	EstadoEnProceso  Estado = "EN_PROCESO"
	EstadoEnEspera   Estado = "EN_ESPERA"
	EstadoDevuelta   Estado = "DEVUELTA"
	EstadoResuelta   Estado = "RESUELTA"
	EstadoArchivada  Estado = "ARCHIVADA"
	EstadoAnulada    Estado = "ANULADA"
)

// Prioridad de la nota.
// @Enum BAJA, MEDIA, ALTA, URGENTE
type Prioridad string

const (
	PrioridadBaja    Prioridad = "BAJA"
	PrioridadMedia   Prioridad = "MEDIA"
	PrioridadAlta    Prioridad = "ALTA"
	PrioridadUrgente Prioridad = "URGENTE"
)

// CanalIngreso es la vía por la que la nota llegó a la mesa de entradas.
// @Enum EMAIL, PRESENCIAL, TELEFONO, SISTEMA, OTRO
type CanalIngreso string

const (
	CanalEmail      CanalIngreso = "EMAIL"
	CanalPresencial CanalIngreso = "PRESENCIAL"
	CanalTelefono   CanalIngreso = "TELEFONO"
	CanalSistema    CanalIngreso = "SISTEMA"
	CanalOtro       CanalIngreso = "OTRO"
)

// TipoEvento clasifica cada registro del historial.
// @Enum CREACION, CAMBIO_ESTADO, ASIGNACION, REASIGNACION, ACTUALIZACION, ANULACION, ARCHIVADO
type TipoEvento string

const (
	EventoCreacion      TipoEvento = "CREACION"
	EventoCambioEstado  TipoEvento = "CAMBIO_ESTADO"
	EventoAsignacion    TipoEvento = "ASIGNACION"
	EventoReasignacion  TipoEvento = "REASIGNACION"
	EventoActualizacion TipoEvento = "ACTUALIZACION"
	EventoAnulacion     TipoEvento = "ANULACION"
	EventoArchivado     TipoEvento = "ARCHIVADO"
)

func EstadoValido(e Estado) bool {
	switch e {
	case EstadoIngresada, EstadoEnRevision, EstadoAsignada, EstadoEnProceso,
		EstadoEnEspera, EstadoDevuelta, EstadoResuelta, EstadoArchivada, EstadoAnulada:
		return true
	}
	return false
}

func PrioridadValida(p Prioridad) bool {
	switch p {
	case PrioridadBaja, PrioridadMedia, PrioridadAlta, PrioridadUrgente:
		return true
	}
	return false
}

func CanalValido(c CanalIngreso) bool {
	switch c {
	case CanalEmail, CanalPresencial, CanalTelefono, CanalSistema, CanalOtro:
		return true
	}
	return false
}
