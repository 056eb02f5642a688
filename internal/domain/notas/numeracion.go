package notas

import (
	"fmt"
	"strconv"
	"strings"
)

// PrefijoSinSector se usa cuando la nota no tiene sector de origen.
const PrefijoSinSector = "INT"

// FormatearNumeroInterno arma el número con secuencia a 4 dígitos:
// 150-0001-2025, INT-0042-2026. El ancho fijo hace que el orden
// lexicográfico coincida con el numérico dentro de un mismo scope+año.
func FormatearNumeroInterno(prefijo string, secuencia, año int) string {
	return fmt.Sprintf("%s-%04d-%d", prefijo, secuencia, año)
}

// PatronNumeroInterno es el patrón LIKE que delimita el scope+año:
// {prefijo}-%-{año}.
func PatronNumeroInterno(prefijo string, año int) string {
	return fmt.Sprintf("%s-%%-%d", prefijo, año)
}

// SiguienteSecuencia parsea el último número del scope y devuelve la
// secuencia siguiente. Tokens malformados (cantidad de partes inesperada
// o secuencia no numérica) arrancan en 1: preferimos degradar a reiniciar
// la secuencia antes que frenar la mesa de entradas.
func SiguienteSecuencia(ultimoNumero string) int {
	partes := strings.Split(ultimoNumero, "-")
	if len(partes) != 3 {
		return 1
	}
	ultimo, err := strconv.Atoi(partes[1])
	if err != nil {
		return 1
	}
	return ultimo + 1
}
