package notas

import "testing"

func TestEsTransicionPermitida(t *testing.T) {
	casos := []struct {
		nombre string
		desde  Estado
		hacia  Estado
		quiere bool
	}{
		{"ingresada a revision", EstadoIngresada, EstadoEnRevision, true},
		{"revision a asignada", EstadoEnRevision, EstadoAsignada, true},
		{"asignada a proceso", EstadoAsignada, EstadoEnProceso, true},
		{"proceso a espera", EstadoEnProceso, EstadoEnEspera, true},
		{"proceso a devuelta", EstadoEnProceso, EstadoDevuelta, true},
		{"proceso a resuelta", EstadoEnProceso, EstadoResuelta, true},
		{"espera vuelve a proceso", EstadoEnEspera, EstadoEnProceso, true},
		{"devuelta vuelve a asignada", EstadoDevuelta, EstadoAsignada, true},
		{"resuelta a archivada", EstadoResuelta, EstadoArchivada, true},
		{"resuelta reabre a proceso", EstadoResuelta, EstadoEnProceso, true},

		{"ingresada no saltea a asignada", EstadoIngresada, EstadoAsignada, false},
		{"ingresada no saltea a resuelta", EstadoIngresada, EstadoResuelta, false},
		{"asignada no vuelve a ingresada", EstadoAsignada, EstadoIngresada, false},
		{"espera no resuelve directo", EstadoEnEspera, EstadoResuelta, false},
		{"archivada no sale", EstadoArchivada, EstadoEnProceso, false},
		{"anulada no sale", EstadoAnulada, EstadoIngresada, false},

		{"anular desde ingresada", EstadoIngresada, EstadoAnulada, true},
		{"anular desde proceso", EstadoEnProceso, EstadoAnulada, true},
		{"anular desde resuelta", EstadoResuelta, EstadoAnulada, true},
		{"anular desde archivada no", EstadoArchivada, EstadoAnulada, false},
		{"anular desde anulada no", EstadoAnulada, EstadoAnulada, false},
		{"anular desde estado inexistente no", Estado("PERDIDA"), EstadoAnulada, false},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			if got := EsTransicionPermitida(c.desde, c.hacia); got != c.quiere {
				t.Errorf("EsTransicionPermitida(%s, %s) = %v, quiere %v", c.desde, c.hacia, got, c.quiere)
			}
		})
	}
}

func TestEsEstadoFinal(t *testing.T) {
	if !EsEstadoFinal(EstadoArchivada) || !EsEstadoFinal(EstadoAnulada) {
		t.Error("ARCHIVADA y ANULADA deben ser finales")
	}
	for _, e := range []Estado{EstadoIngresada, EstadoEnRevision, EstadoAsignada, EstadoEnProceso, EstadoEnEspera, EstadoDevuelta, EstadoResuelta} {
		if EsEstadoFinal(e) {
			t.Errorf("%s no debe ser final", e)
		}
	}
}
