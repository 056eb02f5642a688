package adjuntos

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestion-notas/internal/domain/notas"
	"gestion-notas/internal/domain/usuarios"
)

type repoPrueba struct {
	porID map[string]Adjunto
}

func (r *repoPrueba) Crear(_ context.Context, a Adjunto) error {
	r.porID[a.ID] = a
	return nil
}

func (r *repoPrueba) ObtenerPorID(_ context.Context, id string) (Adjunto, error) {
	a, ok := r.porID[id]
	if !ok {
		return Adjunto{}, errors.New("adjunto inexistente")
	}
	return a, nil
}

func (r *repoPrueba) ListarPorNota(_ context.Context, notaID string) ([]Adjunto, error) {
	var out []Adjunto
	for _, a := range r.porID {
		if a.NotaID == notaID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *repoPrueba) Eliminar(_ context.Context, id string) error {
	delete(r.porID, id)
	return nil
}

// visorPrueba imita la regla de visibilidad del módulo de notas: el
// responsable ve la nota, el resto depende de la capacidad.
type visorPrueba struct {
	nota notas.Nota
}

func (v visorPrueba) ObtenerPorID(_ context.Context, actor usuarios.Actor, id string) (notas.Nota, error) {
	if id != v.nota.ID {
		return notas.Nota{}, notas.ErrNoEncontrado
	}
	if usuarios.Puede(actor.Rol, usuarios.CapVerTodas) {
		return v.nota, nil
	}
	if v.nota.ResponsableID != nil && *v.nota.ResponsableID == actor.UsuarioID {
		return v.nota, nil
	}
	return notas.Nota{}, notas.ErrNoAutorizado
}

func nuevoServicioPrueba() (*Service, *repoPrueba) {
	resp := "u-oper"
	repo := &repoPrueba{porID: map[string]Adjunto{}}
	svc := NewService(repo, visorPrueba{nota: notas.Nota{ID: "nota-1", ResponsableID: &resp}})
	svc.now = func() time.Time {
		return time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

var (
	admin    = usuarios.Actor{UsuarioID: "u-admin", Rol: usuarios.RolAdmin}
	operador = usuarios.Actor{UsuarioID: "u-oper", Rol: usuarios.RolOperador}
	ajeno    = usuarios.Actor{UsuarioID: "u-otro", Rol: usuarios.RolOperador}
)

func TestAgregarYListar(t *testing.T) {
	svc, _ := nuevoServicioPrueba()
	ctx := context.Background()

	a, err := svc.Agregar(ctx, operador, "nota-1", AgregarInput{
		NombreArchivo: "oficio.pdf",
		TipoContenido: "application/pdf",
		TamañoBytes:   1024,
	})
	if err != nil {
		t.Fatalf("Agregar: %v", err)
	}
	if a.SubidoPorID != "u-oper" || a.NotaID != "nota-1" {
		t.Errorf("adjunto mal armado: %+v", a)
	}

	items, err := svc.ListarPorNota(ctx, operador, "nota-1")
	if err != nil {
		t.Fatalf("ListarPorNota: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("adjuntos = %d, quiere 1", len(items))
	}
}

func TestAgregarValidaciones(t *testing.T) {
	svc, _ := nuevoServicioPrueba()
	ctx := context.Background()

	if _, err := svc.Agregar(ctx, admin, "nota-1", AgregarInput{}); !errors.Is(err, ErrValidacion) {
		t.Errorf("sin nombre: err = %v, quiere ErrValidacion", err)
	}
	if _, err := svc.Agregar(ctx, admin, "nota-1", AgregarInput{NombreArchivo: "x.bin", TamañoBytes: -1}); !errors.Is(err, ErrValidacion) {
		t.Errorf("tamaño negativo: err = %v, quiere ErrValidacion", err)
	}
	if _, err := svc.Agregar(ctx, admin, "nota-1", AgregarInput{NombreArchivo: "x.bin", TamañoBytes: tamañoMaxBytes + 1}); !errors.Is(err, ErrValidacion) {
		t.Errorf("tamaño excedido: err = %v, quiere ErrValidacion", err)
	}
	if _, err := svc.Agregar(ctx, admin, "nota-999", AgregarInput{NombreArchivo: "x.bin"}); !errors.Is(err, ErrNoEncontrado) {
		t.Errorf("nota inexistente: err = %v, quiere ErrNoEncontrado", err)
	}
}

func TestVisibilidadDeAdjuntos(t *testing.T) {
	svc, _ := nuevoServicioPrueba()
	ctx := context.Background()

	if _, err := svc.Agregar(ctx, ajeno, "nota-1", AgregarInput{NombreArchivo: "x.pdf"}); !errors.Is(err, ErrNoAutorizado) {
		t.Errorf("usuario ajeno adjuntó: err = %v", err)
	}
	if _, err := svc.ListarPorNota(ctx, ajeno, "nota-1"); !errors.Is(err, ErrNoAutorizado) {
		t.Errorf("usuario ajeno listó adjuntos: err = %v", err)
	}
}

func TestEliminar(t *testing.T) {
	svc, repo := nuevoServicioPrueba()
	ctx := context.Background()

	a, err := svc.Agregar(ctx, admin, "nota-1", AgregarInput{NombreArchivo: "oficio.pdf"})
	if err != nil {
		t.Fatalf("Agregar: %v", err)
	}

	// El operador no tiene editar_nota.
	if err := svc.Eliminar(ctx, operador, a.ID); !errors.Is(err, ErrNoAutorizado) {
		t.Errorf("operador eliminó: err = %v", err)
	}

	if err := svc.Eliminar(ctx, admin, a.ID); err != nil {
		t.Fatalf("Eliminar: %v", err)
	}
	if len(repo.porID) != 0 {
		t.Errorf("el adjunto sigue en el repo")
	}

	if err := svc.Eliminar(ctx, admin, "adj-999"); !errors.Is(err, ErrNoEncontrado) {
		t.Errorf("adjunto inexistente: err = %v", err)
	}
}
