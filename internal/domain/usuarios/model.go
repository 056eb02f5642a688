package usuarios

import "time"

// Rol define los roles canónicos del sistema.
// @Enum ADMIN, SUPERVISOR, OPERADOR, CONSULTA
type Rol string

const (
	RolAdmin      Rol = "ADMIN"
	RolSupervisor Rol = "SUPERVISOR"
	RolOperador   Rol = "OPERADOR"
	RolConsulta   Rol = "CONSULTA" // solo lectura
)

// Capacidad es un permiso nominal derivado del rol.
type Capacidad string

const (
	CapCrearNota   Capacidad = "crear_nota"
	CapAsignarNota Capacidad = "asignar_nota"
	CapAnularNota  Capacidad = "anular_nota"
	CapEditarNota  Capacidad = "editar_nota"
	CapVerTodas    Capacidad = "ver_todas_las_notas"
)

// tablaCapacidades es la única fuente de verdad {rol × capacidad}.
// Toda decisión de autorización pasa por Puede(); no hay predicados
// booleanos repetidos por rol en otros paquetes.
var tablaCapacidades = map[Rol]map[Capacidad]bool{
	RolAdmin: {
		CapCrearNota:   true,
		CapAsignarNota: true,
		CapAnularNota:  true,
		CapEditarNota:  true,
		CapVerTodas:    true,
	},
	RolSupervisor: {
		CapCrearNota:   true,
		CapAsignarNota: true,
		CapAnularNota:  true,
		CapEditarNota:  true,
		CapVerTodas:    true,
	},
	RolOperador: {
		CapCrearNota: true,
	},
	RolConsulta: {
		CapVerTodas: true,
	},
}

// Puede responde si el rol tiene la capacidad. Rol desconocido => false.
func Puede(rol Rol, cap Capacidad) bool {
	caps, ok := tablaCapacidades[rol]
	if !ok {
		return false
	}
	return caps[cap]
}

func RolValido(rol Rol) bool {
	_, ok := tablaCapacidades[rol]
	return ok
}

// Actor es la identidad que ejecuta una operación (viene del token o
// de los headers de debug en modo dev).
type Actor struct {
	UsuarioID string
	Rol       Rol
}

// Usuario es una identidad de acceso al sistema. Es distinta del Agente
// (persona de la institución): un agente puede no tener usuario.
type Usuario struct {
	ID             string
	NombreUsuario  string
	NombreCompleto string
	Rol            Rol
	Activo         bool

	FechaCreacion time.Time
}
