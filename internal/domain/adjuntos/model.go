package adjuntos

import "time"

// Adjunto es el registro de un archivo asociado a una nota. Se guarda la
// metadata y la ruta dentro del almacenamiento de archivos; el contenido
// vive fuera de la base.
type Adjunto struct {
	ID     string
	NotaID string

	NombreArchivo string
	RutaArchivo   string
	TipoContenido string
	TamañoBytes   int64

	Descripcion string

	SubidoPorID   string
	FechaCreacion time.Time
}
