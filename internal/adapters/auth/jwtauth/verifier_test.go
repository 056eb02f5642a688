package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestVerifyRoundTrip(t *testing.T) {
	v, err := New("secreto-de-prueba")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := Firmar("secreto-de-prueba", "u-1", "operador", "OPERADOR", time.Hour)
	if err != nil {
		t.Fatalf("Firmar: %v", err)
	}

	claims, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "u-1" || claims.Rol != "OPERADOR" || claims.NombreUsuario != "operador" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerifyRechaza(t *testing.T) {
	v, _ := New("secreto-de-prueba")
	ctx := context.Background()

	// Secreto distinto
	token, _ := Firmar("otro-secreto", "u-1", "x", "ADMIN", time.Hour)
	if _, err := v.Verify(ctx, token); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("firma ajena: err = %v", err)
	}

	// Expirado
	vencido, _ := Firmar("secreto-de-prueba", "u-1", "x", "ADMIN", -time.Minute)
	if _, err := v.Verify(ctx, vencido); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("token vencido: err = %v", err)
	}

	// Basura
	if _, err := v.Verify(ctx, "no.es.jwt"); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("token basura: err = %v", err)
	}

	if _, err := New(""); err == nil {
		t.Error("New sin secreto debe fallar")
	}
}
