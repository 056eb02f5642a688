package agentes

import "time"

// Agente es una persona de la institución, independiente de la identidad
// de acceso al sistema: UsuarioID puede ser nil (agentes sin login).
type Agente struct {
	ID       string
	Apellido string
	Nombre   string
	Legajo   string // número de legajo, único

	SectorID  *string
	UsuarioID *string // vínculo opcional 1:1 con la identidad de acceso

	Cargo  string
	Activo bool

	FechaCreacion time.Time
}
