package notas

// transicionesPermitidas es la tabla de adyacencia del flujo formal.
// ANULADA no figura como destino: se trata como caso especial, alcanzable
// desde cualquier estado no terminal.
var transicionesPermitidas = map[Estado][]Estado{
	EstadoIngresada:  {EstadoEnRevision},
	EstadoEnRevision: {EstadoAsignada},
	EstadoAsignada:   {EstadoEnProceso},
	EstadoEnProceso:  {EstadoEnEspera, EstadoDevuelta, EstadoResuelta},
	EstadoEnEspera:   {EstadoEnProceso},
	EstadoDevuelta:   {EstadoAsignada},
	EstadoResuelta:   {EstadoArchivada, EstadoEnProceso},
}

// EsEstadoFinal: ARCHIVADA y ANULADA no tienen transiciones de salida.
func EsEstadoFinal(e Estado) bool {
	return e == EstadoArchivada || e == EstadoAnulada
}

// EsTransicionPermitida consulta la tabla. ANULADA se permite desde
// cualquier estado válido no terminal.
func EsTransicionPermitida(desde, hacia Estado) bool {
	if hacia == EstadoAnulada {
		return EstadoValido(desde) && !EsEstadoFinal(desde)
	}

	destinos, ok := transicionesPermitidas[desde]
	if !ok {
		return false
	}
	for _, d := range destinos {
		if d == hacia {
			return true
		}
	}
	return false
}
