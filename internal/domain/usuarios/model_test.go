package usuarios

import "testing"

func TestPuede_TablaCanonica(t *testing.T) {
	casos := []struct {
		rol  Rol
		cap  Capacidad
		want bool
	}{
		{RolAdmin, CapCrearNota, true},
		{RolAdmin, CapAnularNota, true},
		{RolAdmin, CapVerTodas, true},
		{RolSupervisor, CapAsignarNota, true},
		{RolSupervisor, CapAnularNota, true},
		{RolSupervisor, CapEditarNota, true},
		{RolOperador, CapCrearNota, true},
		{RolOperador, CapAnularNota, false},
		{RolOperador, CapAsignarNota, false},
		{RolOperador, CapVerTodas, false},
		{RolConsulta, CapVerTodas, true},
		{RolConsulta, CapCrearNota, false},
		{RolConsulta, CapAnularNota, false},
	}

	for _, c := range casos {
		if got := Puede(c.rol, c.cap); got != c.want {
			t.Errorf("Puede(%s, %s) = %v, want %v", c.rol, c.cap, got, c.want)
		}
	}
}

func TestPuede_RolDesconocido(t *testing.T) {
	if Puede(Rol("GERENTE"), CapCrearNota) {
		t.Fatalf("rol desconocido no debe tener capacidades")
	}
	if RolValido(Rol("GERENTE")) {
		t.Fatalf("rol desconocido no debe ser válido")
	}
}
