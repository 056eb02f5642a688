package adjuntos

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gestion-notas/internal/domain/usuarios"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notas/{notaID}/adjuntos", func(ar chi.Router) {
		ar.Post("/", agregarAdjuntoHandler(svc))
		ar.Get("/", listarAdjuntosHandler(svc))
	})

	r.Route("/adjuntos/{adjuntoID}", func(ar chi.Router) {
		ar.Delete("/", eliminarAdjuntoHandler(svc))
	})
}

type agregarAdjuntoRequest struct {
	NombreArchivo string `json:"nombre_archivo"`
	RutaArchivo   string `json:"ruta_archivo"`
	TipoContenido string `json:"tipo_contenido"`
	TamañoBytes   int64  `json:"tamaño_bytes"`
	Descripcion   string `json:"descripcion"`
}

type adjuntoResponse struct {
	ID            string    `json:"id"`
	NotaID        string    `json:"nota_id"`
	NombreArchivo string    `json:"nombre_archivo"`
	RutaArchivo   string    `json:"ruta_archivo,omitempty"`
	TipoContenido string    `json:"tipo_contenido,omitempty"`
	TamañoBytes   int64     `json:"tamaño_bytes"`
	Descripcion   string    `json:"descripcion,omitempty"`
	SubidoPorID   string    `json:"subido_por_id"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// agregarAdjuntoHandler godoc
// @Summary Adjuntar archivo a una nota
// @Description Registra la metadata de un archivo sobre una nota visible para el actor. No genera registro de historial.
// @Tags adjuntos
// @Accept json
// @Produce json
// @Param notaID path string true "ID de la nota"
// @Param payload body agregarAdjuntoRequest true "Metadata del archivo"
// @Success 201 {object} adjuntoResponse
// @Failure 400 {string} string "validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "nota no encontrada"
// @Router /notas/{notaID}/adjuntos [post]
func agregarAdjuntoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req agregarAdjuntoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Agregar(r.Context(), actor, chi.URLParam(r, "notaID"), AgregarInput{
			NombreArchivo: req.NombreArchivo,
			RutaArchivo:   req.RutaArchivo,
			TipoContenido: req.TipoContenido,
			TamañoBytes:   req.TamañoBytes,
			Descripcion:   req.Descripcion,
		})
		if err != nil {
			responderError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(a))
	}
}

// listarAdjuntosHandler godoc
// @Summary Adjuntos de una nota
// @Tags adjuntos
// @Produce json
// @Param notaID path string true "ID de la nota"
// @Success 200 {array} adjuntoResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "nota no encontrada"
// @Router /notas/{notaID}/adjuntos [get]
func listarAdjuntosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListarPorNota(r.Context(), actor, chi.URLParam(r, "notaID"))
		if err != nil {
			responderError(w, err)
			return
		}

		out := make([]adjuntoResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// eliminarAdjuntoHandler godoc
// @Summary Eliminar adjunto
// @Description Da de baja el registro del adjunto. Requiere editar_nota.
// @Tags adjuntos
// @Param adjuntoID path string true "ID del adjunto"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "adjunto no encontrado"
// @Router /adjuntos/{adjuntoID} [delete]
func eliminarAdjuntoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Eliminar(r.Context(), actor, chi.URLParam(r, "adjuntoID")); err != nil {
			responderError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func responderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoEncontrado):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNoAutorizado):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrValidacion):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(a Adjunto) adjuntoResponse {
	return adjuntoResponse{
		ID:            a.ID,
		NotaID:        a.NotaID,
		NombreArchivo: a.NombreArchivo,
		RutaArchivo:   a.RutaArchivo,
		TipoContenido: a.TipoContenido,
		TamañoBytes:   a.TamañoBytes,
		Descripcion:   a.Descripcion,
		SubidoPorID:   a.SubidoPorID,
		FechaCreacion: a.FechaCreacion,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
