// Package config carga la configuración del servicio desde el entorno.
package config

import (
	"os"
	"strings"
)

type Config struct {
	// Env: dev|prod. En dev, sin JWT_SECRET, el middleware de auth acepta
	// los headers X-Debug-User-ID / X-Debug-User-Rol.
	Env string

	Puerto string

	// DBDSN vacío => repos en memoria (útil para dev y tests).
	DBDSN string

	// JWTSecret vacío => modo dev sin verifier.
	JWTSecret string

	LogLevel  string
	LogFormat string
	AppName   string
}

func Load() Config {
	return Config{
		Env:       getenv("APP_ENV", "dev"),
		Puerto:    getenv("PORT", "8080"),
		DBDSN:     os.Getenv("DB_DSN"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
		AppName:   getenv("APP_NAME", "gestion-notas"),
	}
}

func (c Config) EsProduccion() bool {
	return strings.EqualFold(c.Env, "prod")
}

func getenv(clave, def string) string {
	if v := strings.TrimSpace(os.Getenv(clave)); v != "" {
		return v
	}
	return def
}
