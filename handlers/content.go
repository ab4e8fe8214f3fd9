package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/seosites/seosites/backend/go-api/internal/content"
	"github.com/seosites/seosites/backend/go-api/internal/models"
)

// ProjectHandler adds filtering and the featured list to the generic routes.
type ProjectHandler struct {
	*resource[models.Project, *models.Project]
	projects *content.Projects
}

func NewProjectHandler(p *content.Projects) *ProjectHandler {
	return &ProjectHandler{resource: newResource(p.Service, "Project deleted successfully"), projects: p}
}

// List honours ?category=, ?technology= and ?featured=. featured is true only
// for "true"; any other value selects non-featured projects. Other parameters are ignored.
func (h *ProjectHandler) List(c *gin.Context) {
	f := content.ProjectFilter{
		Category:   c.Query("category"),
		Technology: c.Query("technology"),
	}
	if q := c.Query("featured"); q != "" {
		featured := strings.EqualFold(q, "true")
		f.Featured = &featured
	}
	items, err := h.projects.Filter(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

func (h *ProjectHandler) Featured(c *gin.Context) {
	items, err := h.projects.Featured(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

type TestimonialHandler struct {
	*resource[models.Testimonial, *models.Testimonial]
	testimonials *content.Testimonials
}

func NewTestimonialHandler(t *content.Testimonials) *TestimonialHandler {
	return &TestimonialHandler{resource: newResource(t.Service, "Testimonial deleted successfully"), testimonials: t}
}

func (h *TestimonialHandler) Featured(c *gin.Context) {
	items, err := h.testimonials.Featured(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

type TechnologyHandler struct {
	*resource[models.Technology, *models.Technology]
	technologies *content.Technologies
}

func NewTechnologyHandler(t *content.Technologies) *TechnologyHandler {
	return &TechnologyHandler{resource: newResource(t.Service, "Technology deleted successfully"), technologies: t}
}

// List answers with technologies grouped by category; count is the total.
func (h *TechnologyHandler) List(c *gin.Context) {
	groups, n, err := h.technologies.Grouped(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Count: &n, Data: groups})
}

type StatHandler struct {
	*resource[models.Stat, *models.Stat]
	stats *content.Stats
}

func NewStatHandler(s *content.Stats) *StatHandler {
	return &StatHandler{resource: newResource(s.Service, ""), stats: s}
}

// ByPage includes stats marked for all pages.
func (h *StatHandler) ByPage(c *gin.Context) {
	items, err := h.stats.ByPage(c.Request.Context(), c.Param("page"))
	if err != nil {
		fail(c, err)
		return
	}
	okList(c, items)
}

type HeroHandler struct {
	*resource[models.HeroContent, *models.HeroContent]
	hero *content.HeroContents
}

func NewHeroHandler(h *content.HeroContents) *HeroHandler {
	return &HeroHandler{resource: newResource(h.Service, ""), hero: h}
}

func (h *HeroHandler) ByPage(c *gin.Context) {
	d, err := h.hero.ByPage(c.Request.Context(), c.Param("page"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

type CompanyHandler struct {
	company *content.Company
}

func NewCompanyHandler(co *content.Company) *CompanyHandler {
	return &CompanyHandler{company: co}
}

func (h *CompanyHandler) Get(c *gin.Context) {
	info, err := h.company.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, info)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	info, err := h.company.Update(c.Request.Context(), func(cur *models.CompanyInfo) error {
		return bindBody(c, cur)
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, info)
}
