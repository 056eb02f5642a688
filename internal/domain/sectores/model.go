package sectores

import "time"

// Sector es un departamento institucional. El número es la identidad
// formal del sector y no cambia una vez asignado: la numeración interna
// de las notas lo usa como prefijo.
type Sector struct {
	ID     string
	Nombre string
	Numero int
	Activo bool

	FechaCreacion time.Time
}
