package sample

import "partnerline/internal/config"

// Quantities is a fully resolved per-kind generation request.
type Quantities struct {
	Projects         int `json:"projects"`
	SPIs             int `json:"spis"`
	Objectives       int `json:"objectives"`
	SitReps          int `json:"sitreps"`
	Fortune30        int `json:"fortune30"`
	InternalPartners int `json:"internal_partners"`
	SMEPartners      int `json:"sme_partners"`
}

// DefaultQuantities returns the documented per-kind defaults.
func DefaultQuantities() Quantities {
	return Quantities{
		Projects:         10,
		SPIs:             10,
		Objectives:       5,
		SitReps:          10,
		Fortune30:        6,
		InternalPartners: 20,
		SMEPartners:      10,
	}
}

// MaxQuantities returns the documented per-kind request ceilings.
func MaxQuantities() Quantities {
	return Quantities{
		Projects:         100,
		SPIs:             200,
		Objectives:       100,
		SitReps:          200,
		Fortune30:        6,
		InternalPartners: 50,
		SMEPartners:      50,
	}
}

// DefaultsFrom merges workspace config overrides over the documented
// defaults.
func DefaultsFrom(cfg *config.Config) Quantities {
	q := DefaultQuantities()
	if cfg == nil {
		return q
	}
	apply := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	apply(&q.Projects, cfg.Sample.Projects)
	apply(&q.SPIs, cfg.Sample.SPIs)
	apply(&q.Objectives, cfg.Sample.Objectives)
	apply(&q.SitReps, cfg.Sample.SitReps)
	apply(&q.Fortune30, cfg.Sample.Fortune30)
	apply(&q.InternalPartners, cfg.Sample.InternalPartners)
	apply(&q.SMEPartners, cfg.Sample.SMEPartners)
	return q
}

// Request is a partial quantity request. Nil fields take defaults before
// validation.
type Request struct {
	Projects         *int `json:"projects,omitempty"`
	SPIs             *int `json:"spis,omitempty"`
	Objectives       *int `json:"objectives,omitempty"`
	SitReps          *int `json:"sitreps,omitempty"`
	Fortune30        *int `json:"fortune30,omitempty"`
	InternalPartners *int `json:"internal_partners,omitempty"`
	SMEPartners      *int `json:"sme_partners,omitempty"`
}

// Resolve merges the request over the documented defaults and clamps
// every field into its [0, max] range.
func (r Request) Resolve() Quantities {
	return r.ResolveWith(DefaultQuantities())
}

// ResolveWith is Resolve against caller-supplied defaults.
func (r Request) ResolveWith(defaults Quantities) Quantities {
	q := r.mergedWith(defaults)
	max := MaxQuantities()
	clamp := func(dst *int, max int) {
		if *dst < 0 {
			*dst = 0
		}
		if *dst > max {
			*dst = max
		}
	}
	clamp(&q.Projects, max.Projects)
	clamp(&q.SPIs, max.SPIs)
	clamp(&q.Objectives, max.Objectives)
	clamp(&q.SitReps, max.SitReps)
	clamp(&q.Fortune30, max.Fortune30)
	clamp(&q.InternalPartners, max.InternalPartners)
	clamp(&q.SMEPartners, max.SMEPartners)
	return q
}

// mergedWith fills unset fields from defaults without clamping. The
// coordinator reports quantity notices against these raw values.
func (r Request) mergedWith(defaults Quantities) Quantities {
	q := defaults
	merge := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	merge(&q.Projects, r.Projects)
	merge(&q.SPIs, r.SPIs)
	merge(&q.Objectives, r.Objectives)
	merge(&q.SitReps, r.SitReps)
	merge(&q.Fortune30, r.Fortune30)
	merge(&q.InternalPartners, r.InternalPartners)
	merge(&q.SMEPartners, r.SMEPartners)
	return q
}

// IsZero reports whether every resolved quantity is zero.
func (q Quantities) IsZero() bool {
	return q.Projects == 0 && q.SPIs == 0 && q.Objectives == 0 && q.SitReps == 0 &&
		q.Fortune30 == 0 && q.InternalPartners == 0 && q.SMEPartners == 0
}
