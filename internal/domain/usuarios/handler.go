package usuarios

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gestion-notas/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/usuarios", func(ur chi.Router) {
		ur.Get("/", listarUsuariosHandler(svc))
		ur.Post("/", crearUsuarioHandler(svc))
	})
}

type usuarioResponse struct {
	ID             string    `json:"id"`
	NombreUsuario  string    `json:"nombre_usuario"`
	NombreCompleto string    `json:"nombre_completo"`
	Rol            Rol       `json:"rol"`
	Activo         bool      `json:"activo"`
	FechaCreacion  time.Time `json:"fecha_creacion"`
}

type crearUsuarioRequest struct {
	NombreUsuario  string `json:"nombre_usuario"`
	NombreCompleto string `json:"nombre_completo"`
	Rol            Rol    `json:"rol" enums:"ADMIN,SUPERVISOR,OPERADOR,CONSULTA"`
}

// listarUsuariosHandler godoc
// @Summary Listar usuarios
// @Description Directorio de identidades de acceso, usado por los selectores de responsable.
// @Tags usuarios
// @Produce json
// @Success 200 {array} usuarioResponse
// @Failure 401 {string} string "unauthorized"
// @Router /usuarios [get]
func listarUsuariosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ActorDesdeContexto(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Listar(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]usuarioResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUsuarioResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// crearUsuarioHandler godoc
// @Summary Crear usuario
// @Description Alta de una identidad de acceso. Solo ADMIN.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param payload body crearUsuarioRequest true "Datos del usuario"
// @Success 201 {object} usuarioResponse
// @Failure 400 {string} string "entrada inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /usuarios [post]
func crearUsuarioHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req crearUsuarioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Crear(r.Context(), actor, CrearInput{
			NombreUsuario:  req.NombreUsuario,
			NombreCompleto: req.NombreCompleto,
			Rol:            req.Rol,
		})
		if err != nil {
			if errors.Is(err, ErrNoAutorizado) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toUsuarioResponse(u))
	}
}

// ActorDesdeContexto arma el Actor a partir de los claims del request.
// Falso cuando no hay sesión o el rol no es uno de los canónicos.
func ActorDesdeContexto(r *http.Request) (Actor, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || claims.UserID == "" {
		return Actor{}, false
	}
	rol := Rol(claims.Rol)
	if !RolValido(rol) {
		return Actor{}, false
	}
	return Actor{UsuarioID: claims.UserID, Rol: rol}, true
}

func toUsuarioResponse(u Usuario) usuarioResponse {
	return usuarioResponse{
		ID:             u.ID,
		NombreUsuario:  u.NombreUsuario,
		NombreCompleto: u.NombreCompleto,
		Rol:            u.Rol,
		Activo:         u.Activo,
		FechaCreacion:  u.FechaCreacion,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo;
// si se repite en más lugares conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
