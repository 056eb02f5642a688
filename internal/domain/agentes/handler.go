package agentes

import (
	"encoding/json"
	"errors"
	"net/http"

	"gestion-notas/internal/domain/usuarios"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/agentes", func(ar chi.Router) {
		ar.Get("/", listarAgentesHandler(svc))
		ar.Post("/", crearAgenteHandler(svc))
	})
}

type agenteResponse struct {
	ID        string  `json:"id"`
	Apellido  string  `json:"apellido"`
	Nombre    string  `json:"nombre"`
	Legajo    string  `json:"legajo"`
	SectorID  *string `json:"sector_id,omitempty"`
	UsuarioID *string `json:"usuario_id,omitempty"`
	Cargo     string  `json:"cargo"`
	Activo    bool    `json:"activo"`
}

type crearAgenteRequest struct {
	Apellido  string `json:"apellido"`
	Nombre    string `json:"nombre"`
	Legajo    string `json:"legajo"`
	SectorID  string `json:"sector_id"`
	UsuarioID string `json:"usuario_id"`
	Cargo     string `json:"cargo"`
}

// listarAgentesHandler godoc
// @Summary Listar agentes
// @Description Agentes activos ordenados por apellido y nombre.
// @Tags agentes
// @Produce json
// @Success 200 {array} agenteResponse
// @Failure 401 {string} string "unauthorized"
// @Router /agentes [get]
func listarAgentesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := usuarios.ActorDesdeContexto(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListarActivos(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]agenteResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAgenteResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// crearAgenteHandler godoc
// @Summary Crear agente
// @Description Alta de una persona de la institución (con o sin usuario de sistema). ADMIN o SUPERVISOR.
// @Tags agentes
// @Accept json
// @Produce json
// @Param payload body crearAgenteRequest true "Datos del agente"
// @Success 201 {object} agenteResponse
// @Failure 400 {string} string "entrada inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /agentes [post]
func crearAgenteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req crearAgenteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Crear(r.Context(), actor, CrearInput{
			Apellido:  req.Apellido,
			Nombre:    req.Nombre,
			Legajo:    req.Legajo,
			SectorID:  req.SectorID,
			UsuarioID: req.UsuarioID,
			Cargo:     req.Cargo,
		})
		if err != nil {
			if errors.Is(err, ErrNoAutorizado) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toAgenteResponse(a))
	}
}

func toAgenteResponse(a Agente) agenteResponse {
	return agenteResponse{
		ID:        a.ID,
		Apellido:  a.Apellido,
		Nombre:    a.Nombre,
		Legajo:    a.Legajo,
		SectorID:  a.SectorID,
		UsuarioID: a.UsuarioID,
		Cargo:     a.Cargo,
		Activo:    a.Activo,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
