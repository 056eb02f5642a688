package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gestion-notas/internal/router"

	"github.com/rs/zerolog"
)

func nuevoServidor(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: headers X-Debug-User-*
		Logger:       zerolog.Nop(),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_FlujoDeNota(t *testing.T) {
	ts := nuevoServidor(t)

	// 1) Admin da de alta un sector y el responsable
	sectorID := crearRecurso(t, ts.URL, "/sectores", "admin-1", "ADMIN", map[string]any{
		"nombre": "Mesa de Entradas",
		"numero": 150,
	})
	respID := crearRecurso(t, ts.URL, "/usuarios", "admin-1", "ADMIN", map[string]any{
		"nombre_usuario":  "jperez",
		"nombre_completo": "Juana Pérez",
		"rol":             "OPERADOR",
	})

	// 2) Operador crea una nota del sector
	st, body := doReq(t, ts.URL, "POST", "/notas", "oper-1", "OPERADOR", map[string]any{
		"remitente":        "Ministerio de Obras",
		"tema":             "Pedido de informe",
		"sector_origen_id": sectorID,
		"prioridad":        "ALTA",
		"canal_ingreso":    "EMAIL",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 crear nota, got %d body=%s", st, string(body))
	}
	var creada struct {
		ID            string `json:"id"`
		NumeroInterno string `json:"numero_interno"`
		Estado        string `json:"estado"`
	}
	_ = json.Unmarshal(body, &creada)
	if !strings.HasPrefix(creada.NumeroInterno, "150-0001-") {
		t.Fatalf("número interno inesperado: %q", creada.NumeroInterno)
	}
	if creada.Estado != "INGRESADA" {
		t.Fatalf("estado inicial = %q", creada.Estado)
	}

	// 3) Otro operador no ve la nota ajena
	{
		st, _ := doReq(t, ts.URL, "GET", "/notas/"+creada.ID, "oper-2", "OPERADOR", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 nota ajena, got %d", st)
		}
	}

	// 4) Supervisor la mueve por el flujo: revisión y asignación
	cambiarEstado(t, ts.URL, creada.ID, "super-1", "SUPERVISOR", map[string]any{
		"estado_nuevo": "EN_REVISION",
	})
	cambiarEstado(t, ts.URL, creada.ID, "super-1", "SUPERVISOR", map[string]any{
		"estado_nuevo":         "ASIGNADA",
		"responsable_nuevo_id": respID,
	})

	// 5) Transición salteada => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/notas/"+creada.ID+"/cambiar-estado", "super-1", "SUPERVISOR", map[string]any{
			"estado_nuevo": "ARCHIVADA",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 transición salteada, got %d", st)
		}
	}

	// 6) El responsable ahora ve la nota en sus pendientes
	{
		st, body := doReq(t, ts.URL, "GET", "/notas/pendientes", respID, "OPERADOR", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pendientes, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("pendientes = %d, quiere 1", len(items))
		}
	}

	// 7) Operador sin capacidad no puede anular
	{
		st, _ := doReq(t, ts.URL, "POST", "/notas/"+creada.ID+"/cambiar-estado", respID, "OPERADOR", map[string]any{
			"estado_nuevo": "ANULADA",
			"motivo":       "duplicada",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 anular sin capacidad, got %d", st)
		}
	}

	// 8) Resolución del trámite hasta archivo
	cambiarEstado(t, ts.URL, creada.ID, "super-1", "SUPERVISOR", map[string]any{
		"estado_nuevo": "EN_PROCESO",
	})
	cambiarEstado(t, ts.URL, creada.ID, "super-1", "SUPERVISOR", map[string]any{
		"estado_nuevo":      "RESUELTA",
		"genera_resolucion": true,
		"numero_resolucion": "RES-2025-17",
	})
	cambiarEstado(t, ts.URL, creada.ID, "super-1", "SUPERVISOR", map[string]any{
		"estado_nuevo": "ARCHIVADA",
	})

	// 9) El historial registra todo el recorrido, más reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/notas/"+creada.ID+"/historial", "super-1", "SUPERVISOR", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 historial, got %d body=%s", st, string(body))
		}
		var hist []struct {
			TipoEvento string `json:"tipo_evento"`
		}
		_ = json.Unmarshal(body, &hist)
		if len(hist) != 6 {
			t.Fatalf("historial = %d registros, quiere 6", len(hist))
		}
		if hist[0].TipoEvento != "ARCHIVADO" {
			t.Fatalf("último evento = %q, quiere ARCHIVADO", hist[0].TipoEvento)
		}
		if hist[len(hist)-1].TipoEvento != "CREACION" {
			t.Fatalf("primer evento = %q, quiere CREACION", hist[len(hist)-1].TipoEvento)
		}
	}
}

func TestHTTP_Adjuntos(t *testing.T) {
	ts := nuevoServidor(t)

	st, body := doReq(t, ts.URL, "POST", "/notas", "admin-1", "ADMIN", map[string]any{
		"remitente": "Concejo Deliberante",
		"tema":      "Ordenanza 41",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 crear nota, got %d body=%s", st, string(body))
	}
	var nota struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &nota)

	st, body = doReq(t, ts.URL, "POST", "/notas/"+nota.ID+"/adjuntos", "admin-1", "ADMIN", map[string]any{
		"nombre_archivo": "ordenanza.pdf",
		"tipo_contenido": "application/pdf",
		"tamaño_bytes":   2048,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 adjuntar, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/notas/"+nota.ID+"/adjuntos", "admin-1", "ADMIN", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listar adjuntos, got %d body=%s", st, string(body))
	}
	var items []map[string]any
	_ = json.Unmarshal(body, &items)
	if len(items) != 1 {
		t.Fatalf("adjuntos = %d, quiere 1", len(items))
	}
}

func TestHTTP_SinIdentidad(t *testing.T) {
	ts := nuevoServidor(t)

	st, _ := doReq(t, ts.URL, "GET", "/notas", "", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 sin identidad, got %d", st)
	}

	// Rol desconocido tampoco arma actor
	st, _ = doReq(t, ts.URL, "GET", "/notas", "u-1", "GERENTE", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 rol desconocido, got %d", st)
	}

	// health y metrics quedan abiertos
	st, _ = doReq(t, ts.URL, "GET", "/health", "", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/metrics", "", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
}

func crearRecurso(t *testing.T, baseURL, path, userID, rol string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, rol, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func cambiarEstado(t *testing.T, baseURL, notaID, userID, rol string, payload map[string]any) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/notas/"+notaID+"/cambiar-estado", userID, rol, payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 cambiar-estado %v, got %d body=%s", payload["estado_nuevo"], st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID, debugRol string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
		req.Header.Set("X-Debug-User-Rol", debugRol)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
