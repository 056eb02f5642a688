package notas

// CambioDetectado resume qué cambió en una operación sobre la nota,
// para clasificar el evento del historial.
type CambioDetectado struct {
	EstadoCambio bool
	EstadoNuevo  Estado

	ResponsableCambio   bool
	ResponsableAnterior *string
}

// ClasificarEvento es determinista y se evalúa en este orden:
// anulación y archivado dominan, después los cambios de responsable,
// después cualquier otro cambio de estado, y por último la edición
// genérica de campos. Una operación produce exactamente un registro.
func ClasificarEvento(c CambioDetectado) TipoEvento {
	switch {
	case c.EstadoCambio && c.EstadoNuevo == EstadoAnulada:
		return EventoAnulacion
	case c.EstadoCambio && c.EstadoNuevo == EstadoArchivada:
		return EventoArchivado
	case c.ResponsableCambio && c.ResponsableAnterior == nil:
		return EventoAsignacion
	case c.ResponsableCambio:
		return EventoReasignacion
	case c.EstadoCambio:
		return EventoCambioEstado
	default:
		return EventoActualizacion
	}
}
