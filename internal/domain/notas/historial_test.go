package notas

import "testing"

func TestClasificarEvento(t *testing.T) {
	anterior := "user-1"

	casos := []struct {
		nombre string
		cambio CambioDetectado
		quiere TipoEvento
	}{
		{
			"anulación domina sobre todo",
			CambioDetectado{EstadoCambio: true, EstadoNuevo: EstadoAnulada, ResponsableCambio: true},
			EventoAnulacion,
		},
		{
			"archivado domina sobre responsable",
			CambioDetectado{EstadoCambio: true, EstadoNuevo: EstadoArchivada, ResponsableCambio: true, ResponsableAnterior: &anterior},
			EventoArchivado,
		},
		{
			"primera asignación",
			CambioDetectado{EstadoCambio: true, EstadoNuevo: EstadoAsignada, ResponsableCambio: true, ResponsableAnterior: nil},
			EventoAsignacion,
		},
		{
			"reasignación con responsable previo",
			CambioDetectado{EstadoCambio: true, EstadoNuevo: EstadoAsignada, ResponsableCambio: true, ResponsableAnterior: &anterior},
			EventoReasignacion,
		},
		{
			"cambio de estado sin responsable",
			CambioDetectado{EstadoCambio: true, EstadoNuevo: EstadoEnProceso},
			EventoCambioEstado,
		},
		{
			"edición sin estado ni responsable",
			CambioDetectado{},
			EventoActualizacion,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			if got := ClasificarEvento(c.cambio); got != c.quiere {
				t.Errorf("ClasificarEvento = %s, quiere %s", got, c.quiere)
			}
		})
	}
}
