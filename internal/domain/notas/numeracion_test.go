package notas

import "testing"

func TestFormatearNumeroInterno(t *testing.T) {
	casos := []struct {
		prefijo   string
		secuencia int
		año       int
		quiere    string
	}{
		{"150", 1, 2025, "150-0001-2025"},
		{"150", 42, 2025, "150-0042-2025"},
		{"INT", 7, 2026, "INT-0007-2026"},
		{"3", 9999, 2025, "3-9999-2025"},
		{"3", 10000, 2025, "3-10000-2025"},
	}
	for _, c := range casos {
		if got := FormatearNumeroInterno(c.prefijo, c.secuencia, c.año); got != c.quiere {
			t.Errorf("FormatearNumeroInterno(%q, %d, %d) = %q, quiere %q", c.prefijo, c.secuencia, c.año, got, c.quiere)
		}
	}
}

func TestPatronNumeroInterno(t *testing.T) {
	if got := PatronNumeroInterno("150", 2025); got != "150-%-2025" {
		t.Errorf("PatronNumeroInterno = %q", got)
	}
	if got := PatronNumeroInterno("INT", 2026); got != "INT-%-2026" {
		t.Errorf("PatronNumeroInterno = %q", got)
	}
}

func TestSiguienteSecuencia(t *testing.T) {
	casos := []struct {
		ultimo string
		quiere int
	}{
		{"150-0001-2025", 2},
		{"150-0042-2025", 43},
		{"INT-9999-2025", 10000},
		{"", 1},
		{"basura", 1},
		{"150-2025", 1},
		{"150-abcd-2025", 1},
		{"150-0001-2025-extra", 1},
	}
	for _, c := range casos {
		if got := SiguienteSecuencia(c.ultimo); got != c.quiere {
			t.Errorf("SiguienteSecuencia(%q) = %d, quiere %d", c.ultimo, got, c.quiere)
		}
	}
}
