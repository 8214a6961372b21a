package command

import (
	"context"
	"testing"

	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/domain/entity"
	"github.com/vilosource/viloxterm/internal/workspace"
)

type fakeIDGen struct{ n int }

func (g *fakeIDGen) next() string {
	g.n++
	return "id" + string(rune('0'+g.n))
}

func newTestModel(t *testing.T) *workspace.Model {
	t.Helper()
	gen := &fakeIDGen{}
	return workspace.NewModel(usecase.IDGenerator(gen.next))
}

type fakeLocator struct {
	services map[string]any
}

func (l *fakeLocator) Service(name string) (any, bool) {
	v, ok := l.services[name]
	return v, ok
}

func newRegistryWithModel(t *testing.T) (*Registry, Context) {
	t.Helper()
	r := NewRegistry()
	RegisterBuiltins(r)
	m := newTestModel(t)
	_, err := m.CreateTab(context.Background(), "Work", entity.WidgetTerminal)
	if err != nil {
		t.Fatalf("CreateTab failed: %v", err)
	}
	return r, Context{Model: m, ServiceLocator: &fakeLocator{services: map[string]any{}}}
}
