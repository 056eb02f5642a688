package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gestion-notas/internal/adapters/auth/jwtauth"
	pg "gestion-notas/internal/adapters/storage/postgres"
	"gestion-notas/internal/config"
	"gestion-notas/internal/platform/logger"
	"gestion-notas/internal/ports/auth"
	"gestion-notas/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional; en producción las variables vienen del entorno.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	var verifier auth.AuthVerifier
	if cfg.JWTSecret != "" {
		v, err := jwtauth.New(cfg.JWTSecret)
		if err != nil {
			log.Fatal().Err(err).Msg("configurar verificador de tokens")
		}
		verifier = v
	} else if cfg.EsProduccion() {
		log.Fatal().Msg("JWT_SECRET es obligatorio en producción")
	} else {
		log.Warn().Msg("sin JWT_SECRET: modo dev con headers X-Debug-User-*")
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("conectar a postgres")
		}
		defer opened.Close()

		if err := pg.Migrate(opened); err != nil {
			log.Fatal().Err(err).Msg("migrar esquema")
		}
		db = opened
		log.Info().Msg("almacenamiento: postgres")
	} else {
		log.Warn().Msg("sin DB_DSN: almacenamiento en memoria")
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Puerto,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("iniciando servidor")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("apagando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
