package content

import (
	"context"
	"errors"

	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/internal/files"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/internal/store"
)

type (
	Services     = Service[models.Service, *models.Service]
	ProcessSteps = Service[models.ProcessStep, *models.ProcessStep]
)

func NewServices(col store.Collection[models.Service]) *Services {
	return NewService[models.Service, *models.Service](col, "Service",
		store.SortField{Field: "order"},
		store.SortField{Field: "createdAt", Desc: true},
	)
}

func NewProcessSteps(col store.Collection[models.ProcessStep]) *ProcessSteps {
	return NewService[models.ProcessStep, *models.ProcessStep](col, "Process step",
		store.SortField{Field: "order"},
	)
}

// Testimonials release a replaced or deleted avatar file.
type Testimonials struct {
	*Service[models.Testimonial, *models.Testimonial]
}

func NewTestimonials(col store.Collection[models.Testimonial], rec *files.Reconciler) *Testimonials {
	svc := NewService[models.Testimonial, *models.Testimonial](col, "Testimonial",
		store.SortField{Field: "rating", Desc: true},
		store.SortField{Field: "createdAt", Desc: true},
	)
	svc.afterUpdate = func(ctx context.Context, old, updated *models.Testimonial) {
		rec.Reconcile(ctx, nonEmpty(old.Avatar), nonEmpty(updated.Avatar))
	}
	svc.afterDelete = func(ctx context.Context, deleted *models.Testimonial) {
		rec.Release(ctx, nonEmpty(deleted.Avatar))
	}
	return &Testimonials{Service: svc}
}

func (t *Testimonials) Featured(ctx context.Context) ([]*models.Testimonial, error) {
	return t.List(ctx, store.Query{Eq: map[string]any{"featured": true}, Limit: FeaturedLimit})
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

type Technologies struct {
	*Service[models.Technology, *models.Technology]
}

func NewTechnologies(col store.Collection[models.Technology]) *Technologies {
	return &Technologies{Service: NewService[models.Technology, *models.Technology](col, "Technology",
		store.SortField{Field: "category"},
		store.SortField{Field: "proficiency", Desc: true},
	)}
}

// Grouped returns every technology keyed by category, each list by descending
// proficiency, plus the total count.
func (t *Technologies) Grouped(ctx context.Context) (map[string][]*models.Technology, int, error) {
	list, err := t.List(ctx, store.Query{})
	if err != nil {
		return nil, 0, err
	}
	return GroupByCategory(list), len(list), nil
}

// GroupByCategory keeps the input order inside each group.
func GroupByCategory(list []*models.Technology) map[string][]*models.Technology {
	out := map[string][]*models.Technology{}
	for _, tech := range list {
		out[tech.Category] = append(out[tech.Category], tech)
	}
	return out
}

type Stats struct {
	*Service[models.Stat, *models.Stat]
}

func NewStats(col store.Collection[models.Stat]) *Stats {
	return &Stats{Service: NewService[models.Stat, *models.Stat](col, "Stat",
		store.SortField{Field: "order"},
	)}
}

// ByPage returns stats shown on page, including those marked for all pages.
func (s *Stats) ByPage(ctx context.Context, page string) ([]*models.Stat, error) {
	return s.List(ctx, store.Query{In: map[string][]any{"page": {page, "all"}}})
}

type HeroContents struct {
	*Service[models.HeroContent, *models.HeroContent]
}

func NewHeroContents(col store.Collection[models.HeroContent]) *HeroContents {
	return &HeroContents{Service: NewService[models.HeroContent, *models.HeroContent](col, "Hero content")}
}

func (h *HeroContents) ByPage(ctx context.Context, page string) (*models.HeroContent, error) {
	d, err := h.col.FindOne(ctx, store.Query{Eq: map[string]any{"page": page}})
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Hero content not found for this page")
	}
	if err != nil {
		return nil, h.translate(err)
	}
	return d, nil
}
