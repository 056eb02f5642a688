package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestion-notas/internal/domain/notas"

	"github.com/jackc/pgx/v5/pgconn"
)

type NotasRepo struct {
	db *sql.DB
}

func NewNotasRepo(db *sql.DB) *NotasRepo {
	return &NotasRepo{db: db}
}

// Crear genera el número interno y persiste nota + historial en una sola
// transacción. El SELECT ... FOR UPDATE sobre el último número del scope
// serializa a los escritores concurrentes del mismo {prefijo}+año; el
// lock se suelta recién en el commit, así no pueden salir dos notas con
// la misma secuencia.
func (r *NotasRepo) Crear(ctx context.Context, prefijo string, n notas.Nota, h notas.HistorialNota) (notas.Nota, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return notas.Nota{}, err
	}
	defer func() { _ = tx.Rollback() }()

	año := n.FechaIngreso.Year()

	var ultimo string
	err = tx.QueryRowContext(ctx, `
		SELECT numero_interno
		FROM notas
		WHERE numero_interno LIKE $1
		ORDER BY numero_interno DESC
		LIMIT 1
		FOR UPDATE
	`, notas.PatronNumeroInterno(prefijo, año)).Scan(&ultimo)

	sec := 1
	switch {
	case err == nil:
		sec = notas.SiguienteSecuencia(ultimo)
	case errors.Is(err, sql.ErrNoRows):
		// Primera nota del scope. Sin fila no hay lock: si dos entran a la
		// vez, el UNIQUE de numero_interno corta a la segunda y el caller
		// reintenta.
	default:
		return notas.Nota{}, traducirError(err)
	}

	n.NumeroInterno = notas.FormatearNumeroInterno(prefijo, sec, año)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO notas (
			id, numero_interno, numero_externo,
			fecha_ingreso, fecha_limite,
			remitente, sector_origen_id, area_origen,
			tema, tarea_asignada, descripcion,
			prioridad, estado, canal_ingreso,
			responsable_id, creado_por_id,
			fecha_creacion, ultima_modificacion,
			anulada, motivo_anulacion,
			genera_resolucion, numero_resolucion, fecha_resolucion
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,
			$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23
		)
	`,
		n.ID, n.NumeroInterno, n.NumeroExterno,
		n.FechaIngreso, toNullDate(n.FechaLimite),
		n.Remitente, toNullString(n.SectorOrigenID), n.AreaOrigen,
		n.Tema, n.TareaAsignada, n.Descripcion,
		string(n.Prioridad), string(n.Estado), string(n.CanalIngreso),
		toNullString(n.ResponsableID), toNullString(n.CreadoPorID),
		n.FechaCreacion, n.UltimaModificacion,
		n.Anulada, n.MotivoAnulacion,
		n.GeneraResolucion, n.NumeroResolucion, toNullDate(n.FechaResolucion),
	)
	if err != nil {
		return notas.Nota{}, traducirError(err)
	}

	if err := insertarHistorial(ctx, tx, h); err != nil {
		return notas.Nota{}, traducirError(err)
	}

	if err := tx.Commit(); err != nil {
		return notas.Nota{}, traducirError(err)
	}
	return n, nil
}

// Actualizar persiste la nota y el registro de historial en la misma
// transacción.
func (r *NotasRepo) Actualizar(ctx context.Context, n notas.Nota, h *notas.HistorialNota) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE notas
		SET
			numero_externo = $2,
			fecha_limite = $3,
			remitente = $4,
			area_origen = $5,
			tema = $6,
			tarea_asignada = $7,
			descripcion = $8,
			prioridad = $9,
			estado = $10,
			canal_ingreso = $11,
			responsable_id = $12,
			ultima_modificacion = $13,
			anulada = $14,
			motivo_anulacion = $15,
			genera_resolucion = $16,
			numero_resolucion = $17,
			fecha_resolucion = $18
		WHERE id = $1
	`,
		n.ID,
		n.NumeroExterno,
		toNullDate(n.FechaLimite),
		n.Remitente,
		n.AreaOrigen,
		n.Tema,
		n.TareaAsignada,
		n.Descripcion,
		string(n.Prioridad),
		string(n.Estado),
		string(n.CanalIngreso),
		toNullString(n.ResponsableID),
		n.UltimaModificacion,
		n.Anulada,
		n.MotivoAnulacion,
		n.GeneraResolucion,
		n.NumeroResolucion,
		toNullDate(n.FechaResolucion),
	)
	if err != nil {
		return traducirError(err)
	}
	filas, _ := res.RowsAffected()
	if filas == 0 {
		return ErrNotFound
	}

	if h != nil {
		if err := insertarHistorial(ctx, tx, *h); err != nil {
			return traducirError(err)
		}
	}

	return traducirError(tx.Commit())
}

func insertarHistorial(ctx context.Context, tx *sql.Tx, h notas.HistorialNota) error {
	var campos any
	if len(h.CamposModificados) > 0 {
		b, err := json.Marshal(h.CamposModificados)
		if err != nil {
			return fmt.Errorf("serializar campos modificados: %w", err)
		}
		campos = b
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO historial_notas (
			id, nota_id, usuario_id, fecha_hora, tipo_evento,
			estado_anterior, estado_nuevo,
			responsable_anterior_id, responsable_nuevo_id,
			descripcion_cambio, campos_modificados
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		h.ID, h.NotaID, h.UsuarioID, h.FechaHora, string(h.TipoEvento),
		estadoToNull(h.EstadoAnterior), estadoToNull(h.EstadoNuevo),
		toNullString(h.ResponsableAnteriorID), toNullString(h.ResponsableNuevoID),
		h.DescripcionCambio, campos,
	)
	return err
}

const notaColumnas = `
	id, numero_interno, numero_externo,
	fecha_ingreso, fecha_limite,
	remitente, sector_origen_id, area_origen,
	tema, tarea_asignada, descripcion,
	prioridad, estado, canal_ingreso,
	responsable_id, creado_por_id,
	fecha_creacion, ultima_modificacion,
	anulada, motivo_anulacion,
	genera_resolucion, numero_resolucion, fecha_resolucion`

func (r *NotasRepo) ObtenerPorID(ctx context.Context, id string) (notas.Nota, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return notas.Nota{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT`+notaColumnas+` FROM notas WHERE id = $1`, id)
	n, err := scanNota(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notas.Nota{}, ErrNotFound
		}
		return notas.Nota{}, err
	}
	return n, nil
}

func (r *NotasRepo) Listar(ctx context.Context, f notas.ListFilter) ([]notas.Nota, error) {
	var (
		condiciones []string
		args        []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Estado != nil {
		condiciones = append(condiciones, "estado = "+arg(string(*f.Estado)))
	}
	if len(f.Estados) > 0 {
		marcas := make([]string, 0, len(f.Estados))
		for _, e := range f.Estados {
			marcas = append(marcas, arg(string(e)))
		}
		condiciones = append(condiciones, "estado IN ("+strings.Join(marcas, ",")+")")
	}
	if f.ResponsableID != nil {
		condiciones = append(condiciones, "responsable_id = "+arg(*f.ResponsableID))
	}
	if f.Prioridad != nil {
		condiciones = append(condiciones, "prioridad = "+arg(string(*f.Prioridad)))
	}
	if f.SoloAtrasadas {
		condiciones = append(condiciones,
			"fecha_limite IS NOT NULL",
			"fecha_limite < "+arg(f.Hoy),
			"estado NOT IN ('ARCHIVADA','ANULADA')",
		)
	}
	if f.VisiblePara != nil {
		marca := arg(*f.VisiblePara)
		condiciones = append(condiciones, "(responsable_id = "+marca+" OR creado_por_id = "+marca+")")
	}

	q := `SELECT` + notaColumnas + ` FROM notas`
	if len(condiciones) > 0 {
		q += " WHERE " + strings.Join(condiciones, " AND ")
	}
	if f.OrdenFechaLimiteAsc {
		q += " ORDER BY fecha_limite ASC NULLS LAST"
	} else {
		q += " ORDER BY fecha_ingreso DESC"
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notas.Nota, 0)
	for rows.Next() {
		n, err := scanNota(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotasRepo) ListarHistorial(ctx context.Context, notaID string) ([]notas.HistorialNota, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, nota_id, usuario_id, fecha_hora, tipo_evento,
			estado_anterior, estado_nuevo,
			responsable_anterior_id, responsable_nuevo_id,
			descripcion_cambio, campos_modificados
		FROM historial_notas
		WHERE nota_id = $1
		ORDER BY fecha_hora DESC
	`, notaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notas.HistorialNota, 0)
	for rows.Next() {
		var (
			h              notas.HistorialNota
			tipo           string
			estAnt, estNvo sql.NullString
			respAnt        sql.NullString
			respNvo        sql.NullString
			campos         []byte
		)
		if err := rows.Scan(
			&h.ID, &h.NotaID, &h.UsuarioID, &h.FechaHora, &tipo,
			&estAnt, &estNvo,
			&respAnt, &respNvo,
			&h.DescripcionCambio, &campos,
		); err != nil {
			return nil, err
		}

		h.TipoEvento = notas.TipoEvento(tipo)
		h.EstadoAnterior = nullToEstado(estAnt)
		h.EstadoNuevo = nullToEstado(estNvo)
		h.ResponsableAnteriorID = nullToString(respAnt)
		h.ResponsableNuevoID = nullToString(respNvo)
		if len(campos) > 0 {
			if err := json.Unmarshal(campos, &h.CamposModificados); err != nil {
				return nil, fmt.Errorf("leer campos modificados: %w", err)
			}
		}

		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *NotasRepo) VincularAgente(ctx context.Context, na notas.NotaAgente) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notas_agentes (id, nota_id, agente_id, observacion, fecha_creacion)
		VALUES ($1,$2,$3,$4,$5)
	`, na.ID, na.NotaID, na.AgenteID, na.Observacion, na.FechaCreacion)
	return traducirError(err)
}

func (r *NotasRepo) ListarAgentes(ctx context.Context, notaID string) ([]notas.NotaAgente, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nota_id, agente_id, observacion, fecha_creacion
		FROM notas_agentes
		WHERE nota_id = $1
		ORDER BY fecha_creacion ASC
	`, notaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notas.NotaAgente, 0)
	for rows.Next() {
		var na notas.NotaAgente
		if err := rows.Scan(&na.ID, &na.NotaID, &na.AgenteID, &na.Observacion, &na.FechaCreacion); err != nil {
			return nil, err
		}
		out = append(out, na)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNota(row scanner) (notas.Nota, error) {
	var (
		n                            notas.Nota
		fechaLimite, fechaResolucion sql.NullTime
		sectorID, respID, creadorID  sql.NullString
		prioridad, estado, canal     string
	)
	if err := row.Scan(
		&n.ID, &n.NumeroInterno, &n.NumeroExterno,
		&n.FechaIngreso, &fechaLimite,
		&n.Remitente, &sectorID, &n.AreaOrigen,
		&n.Tema, &n.TareaAsignada, &n.Descripcion,
		&prioridad, &estado, &canal,
		&respID, &creadorID,
		&n.FechaCreacion, &n.UltimaModificacion,
		&n.Anulada, &n.MotivoAnulacion,
		&n.GeneraResolucion, &n.NumeroResolucion, &fechaResolucion,
	); err != nil {
		return notas.Nota{}, err
	}

	n.Prioridad = notas.Prioridad(prioridad)
	n.Estado = notas.Estado(estado)
	n.CanalIngreso = notas.CanalIngreso(canal)
	n.SectorOrigenID = nullToString(sectorID)
	n.ResponsableID = nullToString(respID)
	n.CreadoPorID = nullToString(creadorID)
	if fechaLimite.Valid {
		t := fechaLimite.Time
		n.FechaLimite = &t
	}
	if fechaResolucion.Valid {
		t := fechaResolucion.Time
		n.FechaResolucion = &t
	}
	return n, nil
}

// traducirError mapea las fallas de concurrencia retryables al sentinela
// del dominio: serialización (40001), deadlock (40P01), lock no disponible
// (55P03) y el UNIQUE de numero_interno (23505). En todos los casos nada
// llegó a commit y no se consumió ningún número.
func traducirError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return fmt.Errorf("%w: %s", notas.ErrConflicto, pgErr.Code)
		case "23505":
			if strings.Contains(pgErr.ConstraintName, "numero_interno") {
				return fmt.Errorf("%w: número interno duplicado", notas.ErrConflicto)
			}
		}
	}
	return err
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullToString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func estadoToNull(e *notas.Estado) sql.NullString {
	if e == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*e), Valid: true}
}

func nullToEstado(v sql.NullString) *notas.Estado {
	if !v.Valid {
		return nil
	}
	e := notas.Estado(v.String)
	return &e
}
