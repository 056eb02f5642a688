package notas

import (
	"errors"
	"fmt"
)

// Raíces de la taxonomía de errores. Los handlers mapean con errors.Is:
// validación/transición => 400, autorización => 403, no encontrado => 404,
// conflicto => 409.
var (
	ErrValidacion   = errors.New("validación fallida")
	ErrTransicion   = errors.New("transición no permitida")
	ErrNoAutorizado = errors.New("no autorizado")
	ErrNoEncontrado = errors.New("no encontrado")
	// ErrConflicto: falla de lock o serialización al generar el número.
	// El caller puede reintentar la operación completa; no se consumió
	// ningún número porque nada llegó a commit.
	ErrConflicto = errors.New("conflicto de concurrencia")
)

// ErrorValidacion nombra el campo problemático para que el cliente pueda
// armar un mensaje preciso.
type ErrorValidacion struct {
	Campo   string
	Detalle string
}

func (e *ErrorValidacion) Error() string {
	return fmt.Sprintf("validación fallida: %s: %s", e.Campo, e.Detalle)
}

func (e *ErrorValidacion) Unwrap() error { return ErrValidacion }

// ErrorTransicion nombra los estados actual y destino.
type ErrorTransicion struct {
	Desde Estado
	Hacia Estado
}

func (e *ErrorTransicion) Error() string {
	return fmt.Sprintf("transición no permitida: de %s a %s", e.Desde, e.Hacia)
}

func (e *ErrorTransicion) Unwrap() error { return ErrTransicion }
