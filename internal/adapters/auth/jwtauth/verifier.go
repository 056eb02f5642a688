// Package jwtauth verifica tokens HS256 emitidos por el propio sistema.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gestion-notas/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalido = errors.New("token inválido")

type Verifier struct {
	secreto []byte
}

func New(secreto string) (*Verifier, error) {
	if secreto == "" {
		return nil, errors.New("jwtauth: falta el secreto de firma")
	}
	return &Verifier{secreto: []byte(secreto)}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return v.secreto, nil
	})
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalido
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Claims{}, ErrTokenInvalido
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		return auth.Claims{}, ErrTokenInvalido
	}
	rol, _ := claims["rol"].(string)
	nombre, _ := claims["nombre"].(string)

	return auth.Claims{UserID: uid, NombreUsuario: nombre, Rol: rol}, nil
}

// Firmar emite un token HS256 con los claims que Verify espera. Lo usan
// el seed de desarrollo y los tests.
func Firmar(secreto, uid, nombre, rol string, ttl time.Duration) (string, error) {
	ahora := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":    uid,
		"nombre": nombre,
		"rol":    rol,
		"iat":    ahora.Unix(),
		"exp":    ahora.Add(ttl).Unix(),
	})
	return t.SignedString([]byte(secreto))
}
