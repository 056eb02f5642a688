package notas

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gestion-notas/internal/domain/agentes"
	"gestion-notas/internal/domain/sectores"
	"gestion-notas/internal/domain/usuarios"

	"github.com/google/uuid"
)

const largoMaxTema = 200

// Directorios de entidades de referencia. Los repos de cada módulo los
// satisfacen tal cual.
type DirectorioUsuarios interface {
	ObtenerPorID(ctx context.Context, id string) (usuarios.Usuario, error)
}

type DirectorioSectores interface {
	ObtenerPorID(ctx context.Context, id string) (sectores.Sector, error)
}

type DirectorioAgentes interface {
	ObtenerPorID(ctx context.Context, id string) (agentes.Agente, error)
}

type Service struct {
	repo     Repository
	dirUsers DirectorioUsuarios
	dirSect  DirectorioSectores
	dirAgent DirectorioAgentes
	now      func() time.Time
}

func NewService(repo Repository, dirUsers DirectorioUsuarios, dirSect DirectorioSectores, dirAgent DirectorioAgentes) *Service {
	return &Service{
		repo:     repo,
		dirUsers: dirUsers,
		dirSect:  dirSect,
		dirAgent: dirAgent,
		now:      time.Now,
	}
}

type CrearInput struct {
	NumeroExterno string

	FechaIngreso time.Time // cero => ahora
	FechaLimite  *time.Time

	Remitente      string
	SectorOrigenID string
	AreaOrigen     string
	Tema           string
	TareaAsignada  string
	Descripcion    string

	Prioridad    Prioridad    // vacío => MEDIA
	CanalIngreso CanalIngreso // vacío => PRESENCIAL

	ResponsableID string // si viene, la nota nace ASIGNADA
}

// Crear ingresa una nota al sistema. El número interno se genera siempre,
// tenga o no número externo: las dos numeraciones son independientes.
// Generación de número, inserción de la nota y registro CREACION confirman
// juntos o no confirman.
func (s *Service) Crear(ctx context.Context, actor usuarios.Actor, in CrearInput) (Nota, error) {
	if !usuarios.Puede(actor.Rol, usuarios.CapCrearNota) {
		return Nota{}, ErrNoAutorizado
	}

	if strings.TrimSpace(in.Remitente) == "" {
		return Nota{}, &ErrorValidacion{Campo: "remitente", Detalle: "es obligatorio"}
	}
	tema := strings.TrimSpace(in.Tema)
	if tema == "" {
		return Nota{}, &ErrorValidacion{Campo: "tema", Detalle: "es obligatorio"}
	}
	if len(tema) > largoMaxTema {
		return Nota{}, &ErrorValidacion{Campo: "tema", Detalle: fmt.Sprintf("supera el máximo de %d caracteres", largoMaxTema)}
	}

	prioridad := in.Prioridad
	if prioridad == "" {
		prioridad = PrioridadMedia
	}
	if !PrioridadValida(prioridad) {
		return Nota{}, &ErrorValidacion{Campo: "prioridad", Detalle: "valor desconocido"}
	}

	canal := in.CanalIngreso
	if canal == "" {
		canal = CanalPresencial
	}
	if !CanalValido(canal) {
		return Nota{}, &ErrorValidacion{Campo: "canal_ingreso", Detalle: "valor desconocido"}
	}

	// Scope de numeración: número de sector, o INT si no hay sector.
	prefijo := PrefijoSinSector
	var sectorID *string
	if v := strings.TrimSpace(in.SectorOrigenID); v != "" {
		sec, err := s.dirSect.ObtenerPorID(ctx, v)
		if err != nil {
			return Nota{}, fmt.Errorf("%w: sector de origen", ErrNoEncontrado)
		}
		prefijo = strconv.Itoa(sec.Numero)
		sectorID = &sec.ID
	}

	estado := EstadoIngresada
	var responsableID *string
	if v := strings.TrimSpace(in.ResponsableID); v != "" {
		u, err := s.dirUsers.ObtenerPorID(ctx, v)
		if err != nil {
			return Nota{}, fmt.Errorf("%w: responsable", ErrNoEncontrado)
		}
		responsableID = &u.ID
		estado = EstadoAsignada
	}

	ahora := s.now()
	fechaIngreso := in.FechaIngreso
	if fechaIngreso.IsZero() {
		fechaIngreso = ahora
	}

	creadoPor := actor.UsuarioID
	n := Nota{
		ID:                 uuid.NewString(),
		NumeroExterno:      strings.TrimSpace(in.NumeroExterno),
		FechaIngreso:       fechaIngreso,
		FechaLimite:        in.FechaLimite,
		Remitente:          strings.TrimSpace(in.Remitente),
		SectorOrigenID:     sectorID,
		AreaOrigen:         strings.TrimSpace(in.AreaOrigen),
		Tema:               tema,
		TareaAsignada:      strings.TrimSpace(in.TareaAsignada),
		Descripcion:        strings.TrimSpace(in.Descripcion),
		Prioridad:          prioridad,
		Estado:             estado,
		CanalIngreso:       canal,
		ResponsableID:      responsableID,
		CreadoPorID:        &creadoPor,
		FechaCreacion:      ahora,
		UltimaModificacion: ahora,
	}

	h := HistorialNota{
		ID:                 uuid.NewString(),
		NotaID:             n.ID,
		UsuarioID:          actor.UsuarioID,
		FechaHora:          ahora,
		TipoEvento:         EventoCreacion,
		EstadoNuevo:        &estado,
		ResponsableNuevoID: responsableID,
		DescripcionCambio:  "Nota creada en el sistema",
	}

	return s.repo.Crear(ctx, prefijo, n, h)
}

// ActualizarInput: punteros nil = no tocar el campo.
type ActualizarInput struct {
	FechaLimite   *time.Time
	Remitente     *string
	AreaOrigen    *string
	Tema          *string
	TareaAsignada *string
	Descripcion   *string
	Prioridad     *Prioridad
	CanalIngreso  *CanalIngreso

	Estado        *Estado
	ResponsableID *string

	GeneraResolucion *bool
	NumeroResolucion *string
	FechaResolucion  *time.Time
}

// Actualizar edita campos de la nota. Diffea estado y responsable contra
// los valores actuales ANTES de persistir y agrega un único registro de
// historial solo si algo cambió. El cambio de estado por esta vía no pasa
// por la tabla de transiciones; los cambios que deben validarse van por
// CambiarEstado.
func (s *Service) Actualizar(ctx context.Context, actor usuarios.Actor, id string, in ActualizarInput) (Nota, error) {
	if !usuarios.Puede(actor.Rol, usuarios.CapEditarNota) {
		return Nota{}, ErrNoAutorizado
	}

	n, err := s.repo.ObtenerPorID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Nota{}, ErrNoEncontrado
	}

	estadoAnterior := n.Estado
	responsableAnterior := n.ResponsableID

	campos := map[string]Cambio{}

	if in.Remitente != nil && strings.TrimSpace(*in.Remitente) != n.Remitente {
		v := strings.TrimSpace(*in.Remitente)
		if v == "" {
			return Nota{}, &ErrorValidacion{Campo: "remitente", Detalle: "es obligatorio"}
		}
		campos["remitente"] = Cambio{Anterior: n.Remitente, Nuevo: v}
		n.Remitente = v
	}
	if in.AreaOrigen != nil && strings.TrimSpace(*in.AreaOrigen) != n.AreaOrigen {
		v := strings.TrimSpace(*in.AreaOrigen)
		campos["area_origen"] = Cambio{Anterior: n.AreaOrigen, Nuevo: v}
		n.AreaOrigen = v
	}
	if in.Tema != nil && strings.TrimSpace(*in.Tema) != n.Tema {
		v := strings.TrimSpace(*in.Tema)
		if v == "" {
			return Nota{}, &ErrorValidacion{Campo: "tema", Detalle: "es obligatorio"}
		}
		if len(v) > largoMaxTema {
			return Nota{}, &ErrorValidacion{Campo: "tema", Detalle: fmt.Sprintf("supera el máximo de %d caracteres", largoMaxTema)}
		}
		campos["tema"] = Cambio{Anterior: n.Tema, Nuevo: v}
		n.Tema = v
	}
	if in.TareaAsignada != nil && strings.TrimSpace(*in.TareaAsignada) != n.TareaAsignada {
		v := strings.TrimSpace(*in.TareaAsignada)
		campos["tarea_asignada"] = Cambio{Anterior: n.TareaAsignada, Nuevo: v}
		n.TareaAsignada = v
	}
	if in.Descripcion != nil && strings.TrimSpace(*in.Descripcion) != n.Descripcion {
		v := strings.TrimSpace(*in.Descripcion)
		campos["descripcion"] = Cambio{Anterior: n.Descripcion, Nuevo: v}
		n.Descripcion = v
	}
	if in.Prioridad != nil && *in.Prioridad != n.Prioridad {
		if !PrioridadValida(*in.Prioridad) {
			return Nota{}, &ErrorValidacion{Campo: "prioridad", Detalle: "valor desconocido"}
		}
		campos["prioridad"] = Cambio{Anterior: string(n.Prioridad), Nuevo: string(*in.Prioridad)}
		n.Prioridad = *in.Prioridad
	}
	if in.CanalIngreso != nil && *in.CanalIngreso != n.CanalIngreso {
		if !CanalValido(*in.CanalIngreso) {
			return Nota{}, &ErrorValidacion{Campo: "canal_ingreso", Detalle: "valor desconocido"}
		}
		campos["canal_ingreso"] = Cambio{Anterior: string(n.CanalIngreso), Nuevo: string(*in.CanalIngreso)}
		n.CanalIngreso = *in.CanalIngreso
	}
	if in.FechaLimite != nil && (n.FechaLimite == nil || !in.FechaLimite.Equal(*n.FechaLimite)) {
		anterior := ""
		if n.FechaLimite != nil {
			anterior = n.FechaLimite.Format("2006-01-02")
		}
		campos["fecha_limite"] = Cambio{Anterior: anterior, Nuevo: in.FechaLimite.Format("2006-01-02")}
		n.FechaLimite = in.FechaLimite
	}
	if in.GeneraResolucion != nil && *in.GeneraResolucion != n.GeneraResolucion {
		campos["genera_resolucion"] = Cambio{
			Anterior: strconv.FormatBool(n.GeneraResolucion),
			Nuevo:    strconv.FormatBool(*in.GeneraResolucion),
		}
		n.GeneraResolucion = *in.GeneraResolucion
	}
	if in.NumeroResolucion != nil && strings.TrimSpace(*in.NumeroResolucion) != n.NumeroResolucion {
		v := strings.TrimSpace(*in.NumeroResolucion)
		campos["numero_resolucion"] = Cambio{Anterior: n.NumeroResolucion, Nuevo: v}
		n.NumeroResolucion = v
	}
	if in.FechaResolucion != nil {
		n.FechaResolucion = in.FechaResolucion
		campos["fecha_resolucion"] = Cambio{Nuevo: in.FechaResolucion.Format("2006-01-02")}
	}

	estadoCambio := false
	if in.Estado != nil && *in.Estado != n.Estado {
		if !EstadoValido(*in.Estado) {
			return Nota{}, &ErrorValidacion{Campo: "estado", Detalle: "valor desconocido"}
		}
		campos["estado"] = Cambio{Anterior: string(n.Estado), Nuevo: string(*in.Estado)}
		n.Estado = *in.Estado
		estadoCambio = true
	}

	responsableCambio := false
	if in.ResponsableID != nil {
		nuevoID := strings.TrimSpace(*in.ResponsableID)
		anteriorID := ""
		if responsableAnterior != nil {
			anteriorID = *responsableAnterior
		}
		if nuevoID != "" && nuevoID != anteriorID {
			u, err := s.dirUsers.ObtenerPorID(ctx, nuevoID)
			if err != nil {
				return Nota{}, fmt.Errorf("%w: responsable", ErrNoEncontrado)
			}
			campos["responsable"] = Cambio{Anterior: anteriorID, Nuevo: u.ID}
			n.ResponsableID = &u.ID
			responsableCambio = true
		}
	}

	if len(campos) == 0 {
		return n, nil
	}

	ahora := s.now()
	n.UltimaModificacion = ahora

	tipo := ClasificarEvento(CambioDetectado{
		EstadoCambio:        estadoCambio,
		EstadoNuevo:         n.Estado,
		ResponsableCambio:   responsableCambio,
		ResponsableAnterior: responsableAnterior,
	})

	nombres := make([]string, 0, len(campos))
	for k := range campos {
		nombres = append(nombres, k)
	}

	h := HistorialNota{
		ID:                uuid.NewString(),
		NotaID:            n.ID,
		UsuarioID:         actor.UsuarioID,
		FechaHora:         ahora,
		TipoEvento:        tipo,
		DescripcionCambio: "Actualización de campos: " + strings.Join(nombres, ", "),
		CamposModificados: campos,
	}
	if estadoCambio {
		h.EstadoAnterior = &estadoAnterior
		h.EstadoNuevo = &n.Estado
	}
	if responsableCambio {
		h.ResponsableAnteriorID = responsableAnterior
		h.ResponsableNuevoID = n.ResponsableID
	}

	if err := s.repo.Actualizar(ctx, n, &h); err != nil {
		return Nota{}, err
	}
	return n, nil
}

type CambioEstadoInput struct {
	EstadoNuevo        Estado
	Motivo             string
	ResponsableNuevoID string

	// Datos de resolución, solo tenidos en cuenta al pasar a RESUELTA.
	GeneraResolucion bool
	NumeroResolucion string
	FechaResolucion  *time.Time
}

// CambiarEstado mueve la nota por la máquina de estados. Orden de chequeos:
// transición en la tabla, capacidad de anular o asignar (independiente del
// motivo), motivo obligatorio, responsable obligatorio. La mutación de la
// nota y el registro de historial confirman en la misma transacción.
func (s *Service) CambiarEstado(ctx context.Context, actor usuarios.Actor, id string, in CambioEstadoInput) (Nota, error) {
	n, err := s.repo.ObtenerPorID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Nota{}, ErrNoEncontrado
	}

	hacia := in.EstadoNuevo
	if !EstadoValido(hacia) {
		return Nota{}, &ErrorValidacion{Campo: "estado_nuevo", Detalle: "valor desconocido"}
	}
	if !EsTransicionPermitida(n.Estado, hacia) {
		return Nota{}, &ErrorTransicion{Desde: n.Estado, Hacia: hacia}
	}

	motivo := strings.TrimSpace(in.Motivo)

	if hacia == EstadoAnulada && !usuarios.Puede(actor.Rol, usuarios.CapAnularNota) {
		return Nota{}, ErrNoAutorizado
	}
	if hacia == EstadoAsignada && !usuarios.Puede(actor.Rol, usuarios.CapAsignarNota) {
		return Nota{}, ErrNoAutorizado
	}
	if (hacia == EstadoEnEspera || hacia == EstadoAnulada) && motivo == "" {
		return Nota{}, &ErrorValidacion{Campo: "motivo", Detalle: fmt.Sprintf("es obligatorio para el estado %s", hacia)}
	}
	if hacia == EstadoAsignada && strings.TrimSpace(in.ResponsableNuevoID) == "" {
		return Nota{}, &ErrorValidacion{Campo: "responsable_nuevo", Detalle: "es obligatorio para asignar una nota"}
	}

	estadoAnterior := n.Estado
	responsableAnterior := n.ResponsableID

	responsableCambio := false
	if v := strings.TrimSpace(in.ResponsableNuevoID); v != "" {
		u, err := s.dirUsers.ObtenerPorID(ctx, v)
		if err != nil {
			return Nota{}, fmt.Errorf("%w: responsable", ErrNoEncontrado)
		}
		anteriorID := ""
		if responsableAnterior != nil {
			anteriorID = *responsableAnterior
		}
		if u.ID != anteriorID {
			n.ResponsableID = &u.ID
			responsableCambio = true
		}
	}

	ahora := s.now()
	n.Estado = hacia
	n.UltimaModificacion = ahora

	if hacia == EstadoAnulada {
		n.Anulada = true
		n.MotivoAnulacion = motivo
	}
	if hacia == EstadoResuelta && in.GeneraResolucion {
		n.GeneraResolucion = true
		n.NumeroResolucion = strings.TrimSpace(in.NumeroResolucion)
		n.FechaResolucion = in.FechaResolucion
	}

	tipo := ClasificarEvento(CambioDetectado{
		EstadoCambio:        true,
		EstadoNuevo:         hacia,
		ResponsableCambio:   responsableCambio,
		ResponsableAnterior: responsableAnterior,
	})

	descripcion := motivo
	if descripcion == "" {
		descripcion = fmt.Sprintf("Cambio de estado de %s a %s", estadoAnterior, hacia)
	}

	h := HistorialNota{
		ID:                    uuid.NewString(),
		NotaID:                n.ID,
		UsuarioID:             actor.UsuarioID,
		FechaHora:             ahora,
		TipoEvento:            tipo,
		EstadoAnterior:        &estadoAnterior,
		EstadoNuevo:           &hacia,
		ResponsableAnteriorID: responsableAnterior,
		ResponsableNuevoID:    n.ResponsableID,
		DescripcionCambio:     descripcion,
	}

	if err := s.repo.Actualizar(ctx, n, &h); err != nil {
		return Nota{}, err
	}
	return n, nil
}

// ObtenerPorID aplica la regla de visibilidad: sin ver_todas_las_notas,
// el actor solo accede a notas donde es responsable o creador.
func (s *Service) ObtenerPorID(ctx context.Context, actor usuarios.Actor, id string) (Nota, error) {
	n, err := s.repo.ObtenerPorID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Nota{}, ErrNoEncontrado
	}
	if !s.puedeVer(actor, n) {
		return Nota{}, ErrNoAutorizado
	}
	return n, nil
}

type ConsultaNotas struct {
	Estado        string
	ResponsableID string
	Prioridad     string
	SoloAtrasadas bool
}

// Listar filtra por estado, responsable, prioridad y atraso. El chequeo de
// capacidad y el filtro de filas salen de un único lugar (filtroVisibilidad)
// para que no puedan divergir.
func (s *Service) Listar(ctx context.Context, actor usuarios.Actor, q ConsultaNotas) ([]Nota, error) {
	f := ListFilter{}

	if v := strings.TrimSpace(q.Estado); v != "" {
		e := Estado(v)
		if !EstadoValido(e) {
			return nil, &ErrorValidacion{Campo: "estado", Detalle: "valor desconocido"}
		}
		f.Estado = &e
	}
	if v := strings.TrimSpace(q.ResponsableID); v != "" {
		f.ResponsableID = &v
	}
	if v := strings.TrimSpace(q.Prioridad); v != "" {
		p := Prioridad(v)
		if !PrioridadValida(p) {
			return nil, &ErrorValidacion{Campo: "prioridad", Detalle: "valor desconocido"}
		}
		f.Prioridad = &p
	}
	if q.SoloAtrasadas {
		f.SoloAtrasadas = true
		f.Hoy = s.hoy()
	}

	s.filtroVisibilidad(actor, &f)
	return s.repo.Listar(ctx, f)
}

// Pendientes: notas asignadas al actor en ASIGNADA, EN_PROCESO o EN_ESPERA.
func (s *Service) Pendientes(ctx context.Context, actor usuarios.Actor) ([]Nota, error) {
	uid := actor.UsuarioID
	f := ListFilter{
		ResponsableID: &uid,
		Estados:       []Estado{EstadoAsignada, EstadoEnProceso, EstadoEnEspera},
	}
	return s.repo.Listar(ctx, f)
}

// Atrasadas: fecha límite vencida y estado no terminal-cerrado, orden por
// vencimiento ascendente. Requiere ver_todas_las_notas.
func (s *Service) Atrasadas(ctx context.Context, actor usuarios.Actor) ([]Nota, error) {
	if !usuarios.Puede(actor.Rol, usuarios.CapVerTodas) {
		return nil, ErrNoAutorizado
	}
	f := ListFilter{
		SoloAtrasadas:       true,
		Hoy:                 s.hoy(),
		OrdenFechaLimiteAsc: true,
	}
	return s.repo.Listar(ctx, f)
}

// ListarHistorial devuelve el historial de una nota visible para el actor.
func (s *Service) ListarHistorial(ctx context.Context, actor usuarios.Actor, notaID string) ([]HistorialNota, error) {
	if _, err := s.ObtenerPorID(ctx, actor, notaID); err != nil {
		return nil, err
	}
	return s.repo.ListarHistorial(ctx, notaID)
}

// VincularAgente asocia un agente a la nota con una observación libre.
// Requiere asignar_nota. No genera registro de historial.
func (s *Service) VincularAgente(ctx context.Context, actor usuarios.Actor, notaID, agenteID, observacion string) (NotaAgente, error) {
	if !usuarios.Puede(actor.Rol, usuarios.CapAsignarNota) {
		return NotaAgente{}, ErrNoAutorizado
	}

	n, err := s.repo.ObtenerPorID(ctx, strings.TrimSpace(notaID))
	if err != nil {
		return NotaAgente{}, ErrNoEncontrado
	}

	a, err := s.dirAgent.ObtenerPorID(ctx, strings.TrimSpace(agenteID))
	if err != nil {
		return NotaAgente{}, fmt.Errorf("%w: agente", ErrNoEncontrado)
	}

	na := NotaAgente{
		ID:            uuid.NewString(),
		NotaID:        n.ID,
		AgenteID:      a.ID,
		Observacion:   strings.TrimSpace(observacion),
		FechaCreacion: s.now(),
	}

	if err := s.repo.VincularAgente(ctx, na); err != nil {
		return NotaAgente{}, err
	}
	return na, nil
}

func (s *Service) ListarAgentes(ctx context.Context, actor usuarios.Actor, notaID string) ([]NotaAgente, error) {
	if _, err := s.ObtenerPorID(ctx, actor, notaID); err != nil {
		return nil, err
	}
	return s.repo.ListarAgentes(ctx, notaID)
}

func (s *Service) puedeVer(actor usuarios.Actor, n Nota) bool {
	if usuarios.Puede(actor.Rol, usuarios.CapVerTodas) {
		return true
	}
	if n.ResponsableID != nil && *n.ResponsableID == actor.UsuarioID {
		return true
	}
	if n.CreadoPorID != nil && *n.CreadoPorID == actor.UsuarioID {
		return true
	}
	return false
}

// filtroVisibilidad: si pasa el chequeo de capacidad no hay filtro de
// filas; si no pasa, el filtro es obligatorio.
func (s *Service) filtroVisibilidad(actor usuarios.Actor, f *ListFilter) {
	if usuarios.Puede(actor.Rol, usuarios.CapVerTodas) {
		return
	}
	uid := actor.UsuarioID
	f.VisiblePara = &uid
}

// hoy trunca a medianoche local: la comparación de atraso es por fecha.
func (s *Service) hoy() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EsAtrasada expone el cálculo de atraso con el reloj del service.
func (s *Service) EsAtrasada(n Nota) bool {
	return n.EstaAtrasada(s.hoy())
}
