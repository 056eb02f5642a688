package sectores

import (
	"encoding/json"
	"errors"
	"net/http"

	"gestion-notas/internal/domain/usuarios"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/sectores", func(sr chi.Router) {
		sr.Get("/", listarSectoresHandler(svc))
		sr.Post("/", crearSectorHandler(svc))
	})
}

type sectorResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Numero int    `json:"numero"`
	Activo bool   `json:"activo"`
}

type crearSectorRequest struct {
	Nombre string `json:"nombre"`
	Numero int    `json:"numero"`
}

// listarSectoresHandler godoc
// @Summary Listar sectores
// @Description Sectores activos ordenados por nombre.
// @Tags sectores
// @Produce json
// @Success 200 {array} sectorResponse
// @Failure 401 {string} string "unauthorized"
// @Router /sectores [get]
func listarSectoresHandler(svc *Service) http.HandlerFunc {
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

		out := make([]sectorResponse, 0, len(items))
		for _, sec := range items {
			out = append(out, toSectorResponse(sec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// crearSectorHandler godoc
// @Summary Crear sector
// @Description Alta de un sector institucional. Solo ADMIN.
// @Tags sectores
// @Accept json
// @Produce json
// @Param payload body crearSectorRequest true "Datos del sector"
// @Success 201 {object} sectorResponse
// @Failure 400 {string} string "entrada inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /sectores [post]
func crearSectorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req crearSectorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sec, err := svc.Crear(r.Context(), actor, CrearInput{
			Nombre: req.Nombre,
			Numero: req.Numero,
		})
		if err != nil {
			if errors.Is(err, ErrNoAutorizado) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toSectorResponse(sec))
	}
}

func toSectorResponse(s Sector) sectorResponse {
	return sectorResponse{
		ID:     s.ID,
		Nombre: s.Nombre,
		Numero: s.Numero,
		Activo: s.Activo,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
