package notas

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"gestion-notas/internal/domain/usuarios"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notas", func(nr chi.Router) {
		nr.Post("/", crearNotaHandler(svc))
		nr.Get("/", listarNotasHandler(svc))

		// Bandejas (antes de {notaID} para que chi no las capture como id)
		nr.Get("/pendientes", pendientesHandler(svc))
		nr.Get("/atrasadas", atrasadasHandler(svc))

		nr.Get("/{notaID}", obtenerNotaHandler(svc))
		nr.Put("/{notaID}", actualizarNotaHandler(svc))
		nr.Post("/{notaID}/cambiar-estado", cambiarEstadoHandler(svc))

		nr.Get("/{notaID}/historial", historialHandler(svc))

		nr.Post("/{notaID}/agentes", vincularAgenteHandler(svc))
		nr.Get("/{notaID}/agentes", listarAgentesNotaHandler(svc))
	})
}

type crearNotaRequest struct {
	NumeroExterno  string       `json:"numero_externo"`
	FechaIngreso   string       `json:"fecha_ingreso"` // YYYY-MM-DD, opcional
	FechaLimite    string       `json:"fecha_limite"`  // YYYY-MM-DD, opcional
	Remitente      string       `json:"remitente"`
	SectorOrigenID string       `json:"sector_origen_id"`
	AreaOrigen     string       `json:"area_origen"`
	Tema           string       `json:"tema"`
	TareaAsignada  string       `json:"tarea_asignada"`
	Descripcion    string       `json:"descripcion"`
	Prioridad      Prioridad    `json:"prioridad" enums:"BAJA,MEDIA,ALTA,URGENTE"`
	CanalIngreso   CanalIngreso `json:"canal_ingreso" enums:"EMAIL,PRESENCIAL,TELEFONO,SISTEMA,OTRO"`
	ResponsableID  string       `json:"responsable_id"`
}

type actualizarNotaRequest struct {
	FechaLimite      *string       `json:"fecha_limite"`
	Remitente        *string       `json:"remitente"`
	AreaOrigen       *string       `json:"area_origen"`
	Tema             *string       `json:"tema"`
	TareaAsignada    *string       `json:"tarea_asignada"`
	Descripcion      *string       `json:"descripcion"`
	Prioridad        *Prioridad    `json:"prioridad"`
	CanalIngreso     *CanalIngreso `json:"canal_ingreso"`
	Estado           *Estado       `json:"estado"`
	ResponsableID    *string       `json:"responsable_id"`
	GeneraResolucion *bool         `json:"genera_resolucion"`
	NumeroResolucion *string       `json:"numero_resolucion"`
	FechaResolucion  *string       `json:"fecha_resolucion"`
}

type cambiarEstadoRequest struct {
	EstadoNuevo        Estado `json:"estado_nuevo" enums:"EN_REVISION,ASIGNADA,EN_PROCESO,EN_ESPERA,DEVUELTA,RESUELTA,ARCHIVADA,ANULADA"`
	Motivo             string `json:"motivo"`
	ResponsableNuevoID string `json:"responsable_nuevo_id"`
	GeneraResolucion   bool   `json:"genera_resolucion"`
	NumeroResolucion   string `json:"numero_resolucion"`
	FechaResolucion    string `json:"fecha_resolucion"` // YYYY-MM-DD
}

type vincularAgenteRequest struct {
	AgenteID    string `json:"agente_id"`
	Observacion string `json:"observacion"`
}

type notaResumenResponse struct {
	ID            string     `json:"id"`
	NumeroInterno string     `json:"numero_interno"`
	NumeroExterno string     `json:"numero_externo,omitempty"`
	Tema          string     `json:"tema"`
	Estado        Estado     `json:"estado"`
	Prioridad     Prioridad  `json:"prioridad"`
	ResponsableID *string    `json:"responsable_id,omitempty"`
	FechaIngreso  time.Time  `json:"fecha_ingreso"`
	FechaLimite   *time.Time `json:"fecha_limite,omitempty"`
	Atrasada      bool       `json:"atrasada"`
}

type notaDetalleResponse struct {
	ID                 string              `json:"id"`
	NumeroInterno      string              `json:"numero_interno"`
	NumeroExterno      string              `json:"numero_externo,omitempty"`
	FechaIngreso       time.Time           `json:"fecha_ingreso"`
	FechaLimite        *time.Time          `json:"fecha_limite,omitempty"`
	Remitente          string              `json:"remitente"`
	SectorOrigenID     *string             `json:"sector_origen_id,omitempty"`
	AreaOrigen         string              `json:"area_origen"`
	Tema               string              `json:"tema"`
	TareaAsignada      string              `json:"tarea_asignada"`
	Descripcion        string              `json:"descripcion"`
	Prioridad          Prioridad           `json:"prioridad"`
	Estado             Estado              `json:"estado"`
	CanalIngreso       CanalIngreso        `json:"canal_ingreso"`
	ResponsableID      *string             `json:"responsable_id,omitempty"`
	CreadoPorID        *string             `json:"creado_por_id,omitempty"`
	FechaCreacion      time.Time           `json:"fecha_creacion"`
	UltimaModificacion time.Time           `json:"ultima_modificacion"`
	Anulada            bool                `json:"anulada"`
	MotivoAnulacion    string              `json:"motivo_anulacion,omitempty"`
	GeneraResolucion   bool                `json:"genera_resolucion"`
	NumeroResolucion   string              `json:"numero_resolucion,omitempty"`
	FechaResolucion    *time.Time          `json:"fecha_resolucion,omitempty"`
	Atrasada           bool                `json:"atrasada"`
	Historial          []historialResponse `json:"historial"`
}

type historialResponse struct {
	ID                    string            `json:"id"`
	NotaID                string            `json:"nota_id"`
	UsuarioID             string            `json:"usuario_id"`
	FechaHora             time.Time         `json:"fecha_hora"`
	TipoEvento            TipoEvento        `json:"tipo_evento"`
	EstadoAnterior        *Estado           `json:"estado_anterior,omitempty"`
	EstadoNuevo           *Estado           `json:"estado_nuevo,omitempty"`
	ResponsableAnteriorID *string           `json:"responsable_anterior_id,omitempty"`
	ResponsableNuevoID    *string           `json:"responsable_nuevo_id,omitempty"`
	DescripcionCambio     string            `json:"descripcion_cambio,omitempty"`
	CamposModificados     map[string]Cambio `json:"campos_modificados,omitempty"`
}

type notaAgenteResponse struct {
	ID          string    `json:"id"`
	NotaID      string    `json:"nota_id"`
	AgenteID    string    `json:"agente_id"`
	Observacion string    `json:"observacion,omitempty"`
	FechaHora   time.Time `json:"fecha_creacion"`
}

// crearNotaHandler godoc
// @Summary Crear nota
// @Description Ingresa una nota al sistema. El número interno se genera de forma atómica; si viene responsable la nota nace ASIGNADA. Requiere capacidad crear_nota.
// @Tags notas
// @Accept json
// @Produce json
// @Param payload body crearNotaRequest true "Datos de la nota; fechas en formato YYYY-MM-DD"
// @Success 201 {object} notaDetalleResponse
// @Failure 400 {string} string "validación / fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "sector o responsable inexistente"
// @Failure 409 {string} string "conflicto de numeración, reintentar"
// @Router /notas [post]
func crearNotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req crearNotaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CrearInput{
			NumeroExterno:  req.NumeroExterno,
			Remitente:      req.Remitente,
			SectorOrigenID: req.SectorOrigenID,
			AreaOrigen:     req.AreaOrigen,
			Tema:           req.Tema,
			TareaAsignada:  req.TareaAsignada,
			Descripcion:    req.Descripcion,
			Prioridad:      req.Prioridad,
			CanalIngreso:   req.CanalIngreso,
			ResponsableID:  req.ResponsableID,
		}

		if req.FechaIngreso != "" {
			t, err := parseFecha(req.FechaIngreso)
			if err != nil {
				http.Error(w, "fecha_ingreso must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.FechaIngreso = t
		}
		if req.FechaLimite != "" {
			t, err := parseFecha(req.FechaLimite)
			if err != nil {
				http.Error(w, "fecha_limite must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.FechaLimite = &t
		}

		n, err := svc.Crear(r.Context(), actor, in)
		if err != nil {
			responderError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toDetalle(svc, n, nil))
	}
}

// listarNotasHandler godoc
// @Summary Listar notas
// @Description Listado con filtros. Sin la capacidad ver_todas_las_notas solo se devuelven notas donde el actor es responsable o creador.
// @Tags notas
// @Produce json
// @Param estado query string false "Filtro por estado"
// @Param responsable query string false "Filtro por id de responsable"
// @Param prioridad query string false "Filtro por prioridad"
// @Param atrasadas query bool false "Solo notas con fecha límite vencida"
// @Success 200 {array} notaResumenResponse
// @Failure 400 {string} string "filtro inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /notas [get]
func listarNotasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := ConsultaNotas{
			Estado:        r.URL.Query().Get("estado"),
			ResponsableID: r.URL.Query().Get("responsable"),
			Prioridad:     r.URL.Query().Get("prioridad"),
			SoloAtrasadas: strings.EqualFold(r.URL.Query().Get("atrasadas"), "true"),
		}

		items, err := svc.Listar(r.Context(), actor, q)
		if err != nil {
			responderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toResumenes(svc, items))
	}
}

// obtenerNotaHandler godoc
// @Summary Detalle de nota
// @Description Devuelve la nota con su historial embebido (más reciente primero). Visibilidad según capacidad.
// @Tags notas
// @Produce json
// @Param notaID path string true "ID de la nota"
// @Success 200 {object} notaDetalleResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "nota no encontrada"
// @Router /notas/{notaID} [get]
func obtenerNotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		n, err := svc.ObtenerPorID(r.Context(), actor, chi.URLParam(r, "notaID"))
		if err != nil {
			responderError(w, err)
			return
		}

		hist, err := svc.ListarHistorial(r.Context(), actor, n.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toDetalle(svc, n, hist))
	}
}

// actualizarNotaHandler godoc
// @Summary Actualizar nota
// @Description Edición parcial de campos (punteros nil no tocan). Diffea estado y responsable antes de persistir y agrega un único registro de historial si algo cambió. Requiere capacidad editar_nota.
// @Tags notas
// @Accept json
// @Produce json
// @Param notaID path string true "ID de la nota"
// @Param payload body actualizarNotaRequest true "Campos a modificar"
// @Success 200 {object} notaDetalleResponse
// @Failure 400 {string} string "validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "nota o responsable inexistente"
// @Router /notas/{notaID} [put]
func actualizarNotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req actualizarNotaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := ActualizarInput{
			Remitente:        req.Remitente,
			AreaOrigen:       req.AreaOrigen,
			Tema:             req.Tema,
			TareaAsignada:    req.TareaAsignada,
			Descripcion:      req.Descripcion,
			Prioridad:        req.Prioridad,
			CanalIngreso:     req.CanalIngreso,
			Estado:           req.Estado,
			ResponsableID:    req.ResponsableID,
			GeneraResolucion: req.GeneraResolucion,
			NumeroResolucion: req.NumeroResolucion,
		}

		if req.FechaLimite != nil && *req.FechaLimite != "" {
			t, err := parseFecha(*req.FechaLimite)
			if err != nil {
				http.Error(w, "fecha_limite must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.FechaLimite = &t
		}
		if req.FechaResolucion != nil && *req.FechaResolucion != "" {
			t, err := parseFecha(*req.FechaResolucion)
			if err != nil {
				http.Error(w, "fecha_resolucion must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.FechaResolucion = &t
		}

		n, err := svc.Actualizar(r.Context(), actor, chi.URLParam(r, "notaID"), in)
		if err != nil {
			responderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toDetalle(svc, n, nil))
	}
}

// cambiarEstadoHandler godoc
// @Summary Cambiar estado
// @Description Transición por la máquina de estados. ANULADA exige capacidad anular_nota y motivo; EN_ESPERA exige motivo; ASIGNADA exige responsable_nuevo_id.
// @Tags notas
// @Accept json
// @Produce json
// @Param notaID path string true "ID de la nota"
// @Param payload body cambiarEstadoRequest true "Transición solicitada"
// @Success 200 {object} notaDetalleResponse
// @Failure 400 {string} string "transición no permitida / motivo o responsable faltante"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "sin capacidad para anular"
// @Failure 404 {string} string "nota o responsable inexistente"
// @Router /notas/{notaID}/cambiar-estado [post]
func cambiarEstadoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req cambiarEstadoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CambioEstadoInput{
			EstadoNuevo:        req.EstadoNuevo,
			Motivo:             req.Motivo,
			ResponsableNuevoID: req.ResponsableNuevoID,
			GeneraResolucion:   req.GeneraResolucion,
			NumeroResolucion:   req.NumeroResolucion,
		}
		if req.FechaResolucion != "" {
			t, err := parseFecha(req.FechaResolucion)
			if err != nil {
				http.Error(w, "fecha_resolucion must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.FechaResolucion = &t
		}

		n, err := svc.CambiarEstado(r.Context(), actor, chi.URLParam(r, "notaID"), in)
		if err != nil {
			responderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toDetalle(svc, n, nil))
	}
}

// pendientesHandler godoc
// @Summary Notas pendientes del actor
// @Description Notas donde el actor es responsable, en estado ASIGNADA, EN_PROCESO o EN_ESPERA.
// @Tags notas
// @Produce json
// @Success 200 {array} notaResumenResponse
// @Failure 401 {string} string "unauthorized"
// @Router /notas/pendientes [get]
func pendientesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Pendientes(r.Context(), actor)
		if err != nil {
			responderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toResumenes(svc, items))
	}
}

// atrasadasHandler godoc
// @Summary Notas atrasadas
// @Description Notas con fecha límite vencida y estado fuera de ARCHIVADA/ANULADA, por vencimiento ascendente. Requiere ver_todas_las_notas.
// @Tags notas
// @Produce json
// @Success 200 {array} notaResumenResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /notas/atrasadas [get]
func atrasadasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Atrasadas(r.Context(), actor)
		if err != nil {
			responderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toResumenes(svc, items))
	}
}

// historialHandler godoc
// @Summary Historial de una nota
// @Description Registros de auditoría de la nota, más recientes primero. Solo lectura: no existe operación de edición ni borrado.
// @Tags historial
// @Produce json
// @Param notaID path string true "ID de la nota"
// @Success 200 {array} historialResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "nota no encontrada"
// @Router /notas/{notaID}/historial [get]
func historialHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListarHistorial(r.Context(), actor, chi.URLParam(r, "notaID"))
		if err != nil {
			responderError(w, err)
			return
		}

		out := make([]historialResponse, 0, len(items))
		for _, h := range items {
			out = append(out, toHistorialResponse(h))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// vincularAgenteHandler godoc
// @Summary Vincular agente a una nota
// @Description Asocia un agente con observación libre. Requiere asignar_nota.
// @Tags notas
// @Accept json
// @Produce json
// @Param notaID path string true "ID de la nota"
// @Param payload body vincularAgenteRequest true "Agente y observación"
// @Success 201 {object} notaAgenteResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "nota o agente inexistente"
// @Router /notas/{notaID}/agentes [post]
func vincularAgenteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req vincularAgenteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		na, err := svc.VincularAgente(r.Context(), actor, chi.URLParam(r, "notaID"), req.AgenteID, req.Observacion)
		if err != nil {
			responderError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toNotaAgenteResponse(na))
	}
}

// listarAgentesNotaHandler godoc
// @Summary Agentes vinculados a una nota
// @Tags notas
// @Produce json
// @Param notaID path string true "ID de la nota"
// @Success 200 {array} notaAgenteResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "nota no encontrada"
// @Router /notas/{notaID}/agentes [get]
func listarAgentesNotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := usuarios.ActorDesdeContexto(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListarAgentes(r.Context(), actor, chi.URLParam(r, "notaID"))
		if err != nil {
			responderError(w, err)
			return
		}

		out := make([]notaAgenteResponse, 0, len(items))
		for _, na := range items {
			out = append(out, toNotaAgenteResponse(na))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// responderError traduce la taxonomía del dominio a códigos HTTP.
func responderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoEncontrado):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNoAutorizado):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrConflicto):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrValidacion), errors.Is(err, ErrTransicion):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func parseFecha(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

func toResumenes(svc *Service, items []Nota) []notaResumenResponse {
	out := make([]notaResumenResponse, 0, len(items))
	for _, n := range items {
		out = append(out, notaResumenResponse{
			ID:            n.ID,
			NumeroInterno: n.NumeroInterno,
			NumeroExterno: n.NumeroExterno,
			Tema:          n.Tema,
			Estado:        n.Estado,
			Prioridad:     n.Prioridad,
			ResponsableID: n.ResponsableID,
			FechaIngreso:  n.FechaIngreso,
			FechaLimite:   n.FechaLimite,
			Atrasada:      svc.EsAtrasada(n),
		})
	}
	return out
}

func toDetalle(svc *Service, n Nota, hist []HistorialNota) notaDetalleResponse {
	out := notaDetalleResponse{
		ID:                 n.ID,
		NumeroInterno:      n.NumeroInterno,
		NumeroExterno:      n.NumeroExterno,
		FechaIngreso:       n.FechaIngreso,
		FechaLimite:        n.FechaLimite,
		Remitente:          n.Remitente,
		SectorOrigenID:     n.SectorOrigenID,
		AreaOrigen:         n.AreaOrigen,
		Tema:               n.Tema,
		TareaAsignada:      n.TareaAsignada,
		Descripcion:        n.Descripcion,
		Prioridad:          n.Prioridad,
		Estado:             n.Estado,
		CanalIngreso:       n.CanalIngreso,
		ResponsableID:      n.ResponsableID,
		CreadoPorID:        n.CreadoPorID,
		FechaCreacion:      n.FechaCreacion,
		UltimaModificacion: n.UltimaModificacion,
		Anulada:            n.Anulada,
		MotivoAnulacion:    n.MotivoAnulacion,
		GeneraResolucion:   n.GeneraResolucion,
		NumeroResolucion:   n.NumeroResolucion,
		FechaResolucion:    n.FechaResolucion,
		Atrasada:           svc.EsAtrasada(n),
		Historial:          make([]historialResponse, 0, len(hist)),
	}
	for _, h := range hist {
		out.Historial = append(out.Historial, toHistorialResponse(h))
	}
	return out
}

func toHistorialResponse(h HistorialNota) historialResponse {
	return historialResponse{
		ID:                    h.ID,
		NotaID:                h.NotaID,
		UsuarioID:             h.UsuarioID,
		FechaHora:             h.FechaHora,
		TipoEvento:            h.TipoEvento,
		EstadoAnterior:        h.EstadoAnterior,
		EstadoNuevo:           h.EstadoNuevo,
		ResponsableAnteriorID: h.ResponsableAnteriorID,
		ResponsableNuevoID:    h.ResponsableNuevoID,
		DescripcionCambio:     h.DescripcionCambio,
		CamposModificados:     h.CamposModificados,
	}
}

func toNotaAgenteResponse(na NotaAgente) notaAgenteResponse {
	return notaAgenteResponse{
		ID:          na.ID,
		NotaID:      na.NotaID,
		AgenteID:    na.AgenteID,
		Observacion: na.Observacion,
		FechaHora:   na.FechaCreacion,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
