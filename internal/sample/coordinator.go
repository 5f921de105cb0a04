package sample

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partnerline/internal/db"
	"partnerline/internal/domain"
	"partnerline/internal/events"
	"partnerline/internal/repo"
)

// Notice reports a requested count capped at generator availability.
// It is a mandatory observable side effect, never an error.
type Notice struct {
	Kind      string `json:"kind"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func (n Notice) String() string {
	return fmt.Sprintf("requested %d %s, but only %d are available; adjusting", n.Requested, n.Kind, n.Available)
}

// Result is the realized outcome of a generation run: what was actually
// persisted per kind, plus any quantity adjustments. On a failed run it
// holds the counts committed before the failure.
type Result struct {
	Realized    Quantities `json:"realized"`
	Initiatives int        `json:"initiatives"`
	Departments int        `json:"departments"`
	Notices     []Notice   `json:"notices,omitempty"`
}

// Coordinator turns a quantity request into a fully cross-referenced,
// persisted dataset. Generation is not atomic across entity kinds: each
// kind commits through its own single-collection transactions, and a
// failure halts later kinds without rolling back earlier ones.
type Coordinator struct {
	Repos    repo.Repos
	Defaults Quantities
	Events   events.Writer
	Now      func() time.Time
}

// NewCoordinator wires a coordinator to every repository of the store.
func NewCoordinator(store *db.Store) *Coordinator {
	return &Coordinator{
		Repos:    repo.New(store),
		Defaults: DefaultQuantities(),
		Events:   events.Writer{Store: store},
		Now:      time.Now,
	}
}

func (c *Coordinator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Coordinator) defaults() Quantities {
	if (c.Defaults == Quantities{}) {
		return DefaultQuantities()
	}
	return c.Defaults
}

// Generate validates the request, invokes the generators in dependency
// order, reconciles requested against available counts, wires
// cross-references, and persists everything. Requested counts above a
// generator's pool are capped at the pool size with a Notice; a request
// of all zeros persists nothing and emits no notices.
func (c *Coordinator) Generate(ctx context.Context, req Request) (Result, error) {
	q := req.ResolveWith(c.defaults())
	raw := req.mergedWith(c.defaults())
	now := c.now()
	var res Result

	if q.IsZero() {
		return res, nil
	}

	// actual = min(requested, available); the notice carries the raw
	// requested value, before the documented-maximum clamp.
	take := func(kind string, requested, clamped, available int) int {
		if requested > available {
			res.Notices = append(res.Notices, Notice{Kind: kind, Requested: requested, Available: available})
		}
		if clamped > available {
			return available
		}
		return clamped
	}

	f30Pool := Fortune30Partners(now)
	fortune30 := f30Pool[:take("fortune30", raw.Fortune30, q.Fortune30, len(f30Pool))]

	internalPool := InternalPartners(now)
	internal := internalPool[:take("internal_partners", raw.InternalPartners, q.InternalPartners, len(internalPool))]

	smePool := SMEPartners(now)
	sme := smePool[:take("sme_partners", raw.SMEPartners, q.SMEPartners, len(smePool))]

	projectPool := Projects(Departments(), internal, now)
	projects := projectPool[:take("projects", raw.Projects, q.Projects, len(projectPool))]

	spiPool := SPIs(entityIDs(projects, func(p domain.Project) string { return p.ID }),
		entityIDs(fortune30, func(p domain.Collaborator) string { return p.ID }),
		entityIDs(internal, func(p domain.Collaborator) string { return p.ID }),
		now)
	spis := spiPool[:take("spis", raw.SPIs, q.SPIs, len(spiPool))]

	objectivePool := Objectives()
	objectives := objectivePool[:take("objectives", raw.Objectives, q.Objectives, len(objectivePool))]
	for i := range objectives {
		if len(spis) > 0 {
			objectives[i].SPIIDs = []string{spis[i%len(spis)].ID}
		}
	}
	initiatives := Initiatives(objectives)

	sitrepPool := SitReps(spis, now)
	sitreps := sitrepPool[:take("sitreps", raw.SitReps, q.SitReps, len(sitrepPool))]
	spiIndex := map[string]int{}
	for i := range spis {
		spiIndex[spis[i].ID] = i
	}
	for _, sr := range sitreps {
		i := spiIndex[sr.SpiID]
		spis[i].SitrepIDs = append(spis[i].SitrepIDs, sr.ID)
	}

	for _, n := range res.Notices {
		if err := c.Events.Append(ctx, "quantity.adjusted", n.Kind, "", events.Payload{
			"requested": n.Requested,
			"available": n.Available,
		}); err != nil {
			return res, fmt.Errorf("record quantity adjustment: %w", err)
		}
	}

	// Department reference data is seeded whenever anything is
	// generated; re-runs tolerate the already-seeded case.
	for _, d := range Departments() {
		if err := c.Repos.Departments.Add(ctx, d); err != nil {
			if errors.Is(err, db.ErrDuplicateKey) {
				continue
			}
			return res, fmt.Errorf("persist departments: %w", err)
		}
		res.Departments++
	}

	if err := addAll(ctx, c.Repos.Collaborators, "fortune30 partners", fortune30, &res.Realized.Fortune30); err != nil {
		return res, err
	}
	if err := addAll(ctx, c.Repos.Collaborators, "internal partners", internal, &res.Realized.InternalPartners); err != nil {
		return res, err
	}
	if err := addAll(ctx, c.Repos.SMEPartners, "sme partners", sme, &res.Realized.SMEPartners); err != nil {
		return res, err
	}
	if err := addAll(ctx, c.Repos.Projects, "projects", projects, &res.Realized.Projects); err != nil {
		return res, err
	}
	if err := addAll(ctx, c.Repos.SPIs, "spis", spis, &res.Realized.SPIs); err != nil {
		return res, err
	}
	if err := addAll(ctx, c.Repos.Objectives, "objectives", objectives, &res.Realized.Objectives); err != nil {
		return res, err
	}
	if err := addAll(ctx, c.Repos.Initiatives, "initiatives", initiatives, &res.Initiatives); err != nil {
		return res, err
	}
	if err := addAll(ctx, c.Repos.SitReps, "sitreps", sitreps, &res.Realized.SitReps); err != nil {
		return res, err
	}

	if err := c.Events.Append(ctx, "sample.generated", "dataset", "", events.Payload{
		"realized":    res.Realized,
		"initiatives": res.Initiatives,
		"notices":     len(res.Notices),
	}); err != nil {
		return res, fmt.Errorf("record generation: %w", err)
	}
	return res, nil
}

// addAll persists items one by one, advancing count per committed
// record so a partial failure still reports what landed. Errors carry
// the entity kind being processed.
func addAll[T any](ctx context.Context, col repo.Collection[T], kind string, items []T, count *int) error {
	for _, item := range items {
		if err := col.Add(ctx, item); err != nil {
			return fmt.Errorf("persist %s: %w", kind, err)
		}
		*count++
	}
	return nil
}

func entityIDs[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}
