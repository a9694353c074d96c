// Package module implements the authenticity module
package module

import (
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/lexicon"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/modkit"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/services/authenticity/domain"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/services/authenticity/service"
)

const name = "authenticity"

// Ports exposed by the authenticity module
type Ports struct {
	Analyzer domain.AnalyzerPort
}

// Module implements modkit.Module
type Module struct {
	name  string
	svc   *service.Service
	ports Ports
}

var _ modkit.Module = (*Module)(nil)

// WithLexicon swaps the embedded lexicon for lx
func WithLexicon(lx *lexicon.Lexicon) modkit.Option {
	return modkit.WithPorts(lx)
}

// New constructs the module from env config merged with overrides
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName(name)}, opts...)...)

	var lx *lexicon.Lexicon
	if b.Ports != nil {
		var ok bool
		if lx, ok = b.Ports.(*lexicon.Lexicon); !ok {
			panic("authenticity module: expected WithLexicon(*lexicon.Lexicon)")
		}
	}

	cfg := overrides.apply(FromConfig(deps.Cfg))
	log := deps.Named(b.Name)
	svc := service.New(log, lx, cfg)

	log.Debug().
		Int("workers", cfg.Workers).
		Int("max_batch", cfg.MaxBatch).
		Bool("mine", cfg.Mine).
		Bool("strict", cfg.Strict).
		Bool("explain", cfg.Explain).
		Msg("module ready")

	return &Module{name: b.Name, svc: svc, ports: Ports{Analyzer: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Config returns the effective service config
func (m *Module) Config() service.Config { return m.svc.Cfg }
