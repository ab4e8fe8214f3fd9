// Package seed loads sample content into an empty or disposable database.
package seed

import (
	"context"
	"fmt"

	"github.com/seosites/seosites/backend/go-api/internal/app"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
)

// Options selects what Run writes besides the base content.
type Options struct {
	Dynamic       bool
	AdminEmail    string
	AdminPassword string
}

// Summary counts inserted documents per collection.
type Summary struct {
	Projects     int
	Services     int
	Testimonials int
	Technologies int
	Stats        int
	HeroContents int
	ProcessSteps int
	Company      bool
	Admin        bool
}

// Run clears and repopulates the base collections: projects, services,
// testimonials and technologies. With Dynamic it does the same for stats,
// hero content, company info and process steps. Admin accounts are never cleared.
func Run(ctx context.Context, a *app.App, opts Options) (*Summary, error) {
	cols := a.Collections
	sum := &Summary{}

	logger.Info("clearing existing content")
	for name, clear := range map[string]func(context.Context) error{
		"projects":     cols.Projects.DeleteAll,
		"services":     cols.Services.DeleteAll,
		"testimonials": cols.Testimonials.DeleteAll,
		"technologies": cols.Technologies.DeleteAll,
	} {
		if err := clear(ctx); err != nil {
			return nil, fmt.Errorf("clear %s: %w", name, err)
		}
	}

	for _, p := range projects() {
		if _, err := a.Projects.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seed project %q: %w", p.Title, err)
		}
		sum.Projects++
	}
	for _, s := range services() {
		if _, err := a.Services.Create(ctx, s); err != nil {
			return nil, fmt.Errorf("seed service %q: %w", s.Title, err)
		}
		sum.Services++
	}
	for _, t := range testimonials() {
		if _, err := a.Testimonials.Create(ctx, t); err != nil {
			return nil, fmt.Errorf("seed testimonial %q: %w", t.ClientName, err)
		}
		sum.Testimonials++
	}
	for _, t := range technologies() {
		if _, err := a.Technologies.Create(ctx, t); err != nil {
			return nil, fmt.Errorf("seed technology %q: %w", t.Name, err)
		}
		sum.Technologies++
	}

	if opts.Dynamic {
		if err := seedDynamic(ctx, a, sum); err != nil {
			return nil, err
		}
	}

	if opts.AdminEmail != "" {
		if _, err := a.Admins.Register(ctx, opts.AdminEmail, opts.AdminPassword, models.RoleAdmin); err != nil {
			return nil, fmt.Errorf("seed admin: %w", err)
		}
		sum.Admin = true
	}

	logger.Infof("seeded %d projects, %d services, %d testimonials, %d technologies",
		sum.Projects, sum.Services, sum.Testimonials, sum.Technologies)
	return sum, nil
}

func seedDynamic(ctx context.Context, a *app.App, sum *Summary) error {
	cols := a.Collections
	for name, clear := range map[string]func(context.Context) error{
		"stats":         cols.Stats.DeleteAll,
		"hero contents": cols.HeroContents.DeleteAll,
		"company info":  cols.CompanyInfos.DeleteAll,
		"process steps": cols.ProcessSteps.DeleteAll,
	} {
		if err := clear(ctx); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}

	for _, s := range stats() {
		if _, err := a.Stats.Create(ctx, s); err != nil {
			return fmt.Errorf("seed stat %q: %w", s.Label, err)
		}
		sum.Stats++
	}
	for _, h := range heroContents() {
		if _, err := a.HeroContents.Create(ctx, h); err != nil {
			return fmt.Errorf("seed hero %q: %w", h.Page, err)
		}
		sum.HeroContents++
	}
	info := companyInfo()
	if _, err := a.Company.Update(ctx, func(cur *models.CompanyInfo) error {
		info.Base = cur.Base
		*cur = *info
		return nil
	}); err != nil {
		return fmt.Errorf("seed company info: %w", err)
	}
	sum.Company = true
	for _, p := range processSteps() {
		if _, err := a.ProcessSteps.Create(ctx, p); err != nil {
			return fmt.Errorf("seed process step %q: %w", p.Step, err)
		}
		sum.ProcessSteps++
	}
	logger.Infof("seeded %d stats, %d hero contents, company info, %d process steps",
		sum.Stats, sum.HeroContents, sum.ProcessSteps)
	return nil
}
