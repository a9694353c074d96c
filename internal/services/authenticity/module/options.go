package module

import (
	"github.com/vaibhavgarg230/trustlens-sub000/internal/platform/config"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/services/authenticity/service"
)

// Options are caller overrides applied on top of the environment.
// Zero ints and nil bools leave the configured value alone
type Options struct {
	Workers  int
	MaxBatch int
	Mine     *bool
	Strict   *bool
	Explain  *bool
}

// FromConfig reads the service config from CORE_SCORE_* variables
func FromConfig(cfg config.Conf) service.Config {
	sc := cfg.Prefix("CORE_SCORE_")
	return service.Config{
		Workers:  sc.MayPositiveInt("WORKERS", 4),
		MaxBatch: sc.MayInt("MAX_BATCH", 5000),
		Mine:     sc.MayBool("MINE", true),
		Strict:   sc.MayBool("STRICT", false),
		Explain:  sc.MayBool("EXPLAIN", false),
	}
}

func (o Options) apply(c service.Config) service.Config {
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.MaxBatch != 0 {
		c.MaxBatch = o.MaxBatch
	}
	if o.Mine != nil {
		c.Mine = *o.Mine
	}
	if o.Strict != nil {
		c.Strict = *o.Strict
	}
	if o.Explain != nil {
		c.Explain = *o.Explain
	}
	return c
}
