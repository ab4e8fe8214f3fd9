package content

import (
	"context"

	"github.com/seosites/seosites/backend/go-api/internal/files"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/internal/store"
)

// FeaturedLimit caps the featured project and testimonial lists.
const FeaturedLimit = 6

// ProjectFilter holds the whitelisted list predicates. Empty fields are ignored.
type ProjectFilter struct {
	Category   string
	Technology string
	Featured   *bool
}

func (f ProjectFilter) query() store.Query {
	eq := map[string]any{}
	if f.Category != "" {
		eq["category"] = f.Category
	}
	if f.Technology != "" {
		eq["technologies"] = f.Technology
	}
	if f.Featured != nil {
		eq["featured"] = *f.Featured
	}
	return store.Query{Eq: eq}
}

// Projects keeps project documents and the image files they reference in step.
type Projects struct {
	*Service[models.Project, *models.Project]
}

func NewProjects(col store.Collection[models.Project], rec *files.Reconciler) *Projects {
	svc := NewService[models.Project, *models.Project](col, "Project",
		store.SortField{Field: "order"},
		store.SortField{Field: "createdAt", Desc: true},
	)
	svc.afterUpdate = func(ctx context.Context, old, updated *models.Project) {
		rec.Reconcile(ctx, old.Images, updated.Images)
	}
	svc.afterDelete = func(ctx context.Context, deleted *models.Project) {
		rec.Release(ctx, deleted.Images)
	}
	return &Projects{Service: svc}
}

func (p *Projects) Filter(ctx context.Context, f ProjectFilter) ([]*models.Project, error) {
	return p.List(ctx, f.query())
}

func (p *Projects) Featured(ctx context.Context) ([]*models.Project, error) {
	return p.List(ctx, store.Query{Eq: map[string]any{"featured": true}, Limit: FeaturedLimit})
}
