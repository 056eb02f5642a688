package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "gestion-notas/internal/adapters/storage/memory"
	pg "gestion-notas/internal/adapters/storage/postgres"
	"gestion-notas/internal/domain/adjuntos"
	"gestion-notas/internal/domain/agentes"
	"gestion-notas/internal/domain/notas"
	"gestion-notas/internal/domain/sectores"
	"gestion-notas/internal/domain/usuarios"
	"gestion-notas/internal/middleware"
	"gestion-notas/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		notasRepo    notas.Repository
		usuariosRepo usuarios.Repository
		sectoresRepo sectores.Repository
		agentesRepo  agentes.Repository
		adjuntosRepo adjuntos.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		notasRepo = pg.NewNotasRepo(db)
		usuariosRepo = pg.NewUsuariosRepo(db)
		sectoresRepo = pg.NewSectoresRepo(db)
		agentesRepo = pg.NewAgentesRepo(db)
		adjuntosRepo = pg.NewAdjuntosRepo(db)
	} else {
		notasRepo = mem.NewNotasRepo()
		usuariosRepo = mem.NewUsuariosRepo()
		sectoresRepo = mem.NewSectoresRepo()
		agentesRepo = mem.NewAgentesRepo()
		adjuntosRepo = mem.NewAdjuntosRepo()
	}

	// Services por módulo
	usuariosSvc := usuarios.NewService(usuariosRepo)
	sectoresSvc := sectores.NewService(sectoresRepo)
	agentesSvc := agentes.NewService(agentesRepo)
	notasSvc := notas.NewService(notasRepo, usuariosRepo, sectoresRepo, agentesRepo)
	adjuntosSvc := adjuntos.NewService(adjuntosRepo, notasSvc)

	// Rutas por módulo
	usuarios.RegisterRoutes(r, usuariosSvc)
	sectores.RegisterRoutes(r, sectoresSvc)
	agentes.RegisterRoutes(r, agentesSvc)
	notas.RegisterRoutes(r, notasSvc)
	adjuntos.RegisterRoutes(r, adjuntosSvc)

	return r
}
