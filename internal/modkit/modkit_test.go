package modkit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/platform/config"

	"github.com/rs/zerolog"
)

type stub struct {
	name  string
	ports any
}

func (s *stub) Ports() any   { return s.ports }
func (s *stub) Name() string { return s.name }

var _ Module = (*stub)(nil)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Ports != nil {
		t.Fatalf("zero build = %+v", b)
	}
}

func TestBuild_OptionsApplyInOrder(t *testing.T) {
	t.Parallel()

	type ports struct{ Workers int }
	b := Build(WithName("first"), WithPorts(ports{1}), WithName("authenticity"), WithPorts(ports{4}))
	if b.Name != "authenticity" {
		t.Fatalf("Name = %q", b.Name)
	}
	if got, ok := b.Ports.(ports); !ok || got.Workers != 4 {
		t.Fatalf("Ports = %#v", b.Ports)
	}
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	var build Builder = func(d Deps, opts ...Option) Module {
		b := Build(opts...)
		return &stub{name: b.Name, ports: b.Ports}
	}
	m := build(Deps{Cfg: config.New()}, WithName("x"), WithPorts("ok"))
	if m.Name() != "x" || m.Ports() != "ok" {
		t.Fatalf("module = %s %v", m.Name(), m.Ports())
	}
}

func TestDeps_Named(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := Deps{Log: zerolog.New(&buf)}
	l := d.Named("authenticity")
	l.Info().Msg("hello")
	if !strings.Contains(buf.String(), `"component":"authenticity"`) {
		t.Fatalf("log line = %s", buf.String())
	}

	// zero deps stay usable
	var zero Deps
	zl := zero.Named("x")
	zl.Info().Msg("dropped")
}
