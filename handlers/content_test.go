package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectImageLifecycle(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)
	e.putFile(t, "a.png")
	e.putFile(t, "b.png")

	w := e.do(http.MethodPost, "/api/projects",
		`{"title":"Shop","description":"d","category":"ecommerce","images":["/uploads/a.png","/uploads/b.png"]}`, tok)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.Project
	decodeData(t, w, &p)

	w = e.do(http.MethodPut, "/api/projects/"+p.ID.Hex(), `{"images":["/uploads/b.png"]}`, tok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.False(t, e.hasFile("a.png"))
	assert.True(t, e.hasFile("b.png"))

	w = e.do(http.MethodGet, "/api/projects/"+p.ID.Hex(), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Project
	decodeData(t, w, &got)
	assert.Equal(t, []string{"/uploads/b.png"}, got.Images)
	assert.Equal(t, "Shop", got.Title)

	w = e.do(http.MethodDelete, "/api/projects/"+p.ID.Hex(), "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, e.hasFile("b.png"))

	w = e.do(http.MethodGet, "/api/projects/"+p.ID.Hex(), "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidUpdateLeavesFiles(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)
	e.putFile(t, "a.png")

	w := e.do(http.MethodPost, "/api/projects", `{"title":"T","description":"d","category":"web","images":["/uploads/a.png"]}`, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Project
	decodeData(t, w, &p)

	w = e.do(http.MethodPut, "/api/projects/"+p.ID.Hex(), `{"images":[],"category":"spaceship"}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, e.hasFile("a.png"))
}

func TestProjectFilters(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleEditor)
	for i, body := range []string{
		`{"title":"A","description":"d","category":"web","technologies":["Go","React"],"featured":true}`,
		`{"title":"B","description":"d","category":"mobile","technologies":["Kotlin"]}`,
		`{"title":"C","description":"d","category":"web","technologies":["Go"]}`,
	} {
		w := e.do(http.MethodPost, "/api/projects", body, tok)
		require.Equal(t, http.StatusCreated, w.Code, "project %d: %s", i, w.Body.String())
	}

	cases := map[string]int{
		"/api/projects":                             3,
		"/api/projects?category=web":                2,
		"/api/projects?technology=Go":               2,
		"/api/projects?featured=true":               1,
		"/api/projects?featured=false":              2,
		"/api/projects?featured=no":                 2,
		"/api/projects?category=web&featured=false": 1,
		"/api/projects?category=web&bogus=1":        2,
		"/api/projects?technology=Go&featured=true": 1,
		"/api/projects/featured":                    1,
	}
	for path, want := range cases {
		w := e.do(http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, w.Code, path)
		var list []models.Project
		resp := decodeData(t, w, &list)
		assert.Len(t, list, want, path)
		require.NotNil(t, resp.Count, path)
		assert.Equal(t, want, *resp.Count, path)
	}
}

func TestTechnologiesGrouped(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)
	for _, body := range []string{
		`{"name":"Go","category":"backend","proficiency":90}`,
		`{"name":"React","category":"frontend","proficiency":80}`,
		`{"name":"Node","category":"backend","proficiency":95}`,
	} {
		require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/technologies", body, tok).Code)
	}

	w := e.do(http.MethodGet, "/api/technologies", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var groups map[string][]models.Technology
	resp := decodeData(t, w, &groups)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 3, *resp.Count)
	require.Len(t, groups, 2)
	require.Len(t, groups["backend"], 2)
	assert.Equal(t, "Node", groups["backend"][0].Name)
	assert.Equal(t, "Go", groups["backend"][1].Name)
	assert.Equal(t, "React", groups["frontend"][0].Name)

	w = e.do(http.MethodPost, "/api/technologies", `{"name":"Go","category":"backend"}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Duplicate field value entered", decode(t, w).Message)
}

func TestNotFoundAndMalformedIDs(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)
	missing := "65a000000000000000000000"

	for _, res := range []string{"projects", "services", "technologies", "testimonials", "stats", "hero-content", "process-steps"} {
		w := e.do(http.MethodDelete, fmt.Sprintf("/api/%s/%s", res, missing), "", tok)
		assert.Equal(t, http.StatusNotFound, w.Code, res)
		assert.False(t, decode(t, w).Success, res)

		w = e.do(http.MethodGet, fmt.Sprintf("/api/%s/not-an-id", res), "", "")
		assert.Equal(t, http.StatusNotFound, w.Code, res)
		assert.Equal(t, "Resource not found", decode(t, w).Message, res)
	}

	w := e.do(http.MethodGet, "/api/nothing-here", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found - /api/nothing-here", decode(t, w).Message)
}

func TestValidationAndBadJSON(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)

	w := e.do(http.MethodPost, "/api/testimonials", `{"clientName":"Ann","content":"great","rating":9}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, "rating")
	assert.Contains(t, w.Body.String(), `"errors":{"rating":`)

	w = e.do(http.MethodPost, "/api/services", `{"title":`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExplicitZeroRejected(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)

	w := e.do(http.MethodPost, "/api/testimonials", `{"clientName":"Ann","content":"great","rating":0}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"errors":{"rating":`)

	w = e.do(http.MethodPost, "/api/technologies", `{"name":"Go","category":"backend","proficiency":0}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"errors":{"proficiency":`)

	w = e.do(http.MethodPost, "/api/testimonials", `{"clientName":"Ann","content":"great"}`, tok)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tm models.Testimonial
	decodeData(t, w, &tm)
	require.NotNil(t, tm.Rating)
	assert.Equal(t, 5, *tm.Rating)

	w = e.do(http.MethodPost, "/api/technologies", `{"name":"Go","category":"backend"}`, tok)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tech models.Technology
	decodeData(t, w, &tech)
	require.NotNil(t, tech.Proficiency)
	assert.Equal(t, 50, *tech.Proficiency)

	w = e.do(http.MethodPut, "/api/testimonials/"+tm.ID.Hex(), `{"rating":0}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestStatsAndHeroByPage(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)
	for _, body := range []string{
		`{"label":"Projects","value":"120","page":"home","order":2}`,
		`{"label":"Years","value":"10","page":"all","order":1}`,
		`{"label":"Team","value":"12","page":"about"}`,
	} {
		require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/stats", body, tok).Code)
	}

	w := e.do(http.MethodGet, "/api/stats/page/home", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats []models.Stat
	decodeData(t, w, &stats)
	require.Len(t, stats, 2)
	assert.Equal(t, "Years", stats[0].Label)

	w = e.do(http.MethodPost, "/api/hero-content", `{"page":"home","title":"Build","subtitle":"fast","ctaButtons":[{"text":"Go","link":"/contact"}]}`, tok)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var hero models.HeroContent
	decodeData(t, w, &hero)
	assert.Equal(t, "primary", hero.CTAButtons[0].Variant)

	w = e.do(http.MethodGet, "/api/hero-content/page/home", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = e.do(http.MethodGet, "/api/hero-content/page/about", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Hero content not found for this page", decode(t, w).Message)

	w = e.do(http.MethodDelete, "/api/hero-content/"+hero.ID.Hex(), "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{}}`, w.Body.String())
}

func TestCompanyInfoSingleton(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodGet, "/api/company-info", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info models.CompanyInfo
	decodeData(t, w, &info)
	assert.Equal(t, "seosites", info.Name)

	w = e.do(http.MethodPut, "/api/company-info", `{"tagline":"We ship"}`, e.token(t, models.RoleEditor))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(http.MethodPut, "/api/company-info", `{"name":"Acme"}`, e.token(t, models.RoleAdmin))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.CompanyInfo
	decodeData(t, w, &updated)
	assert.Equal(t, info.ID, updated.ID)
	assert.Equal(t, "Acme", updated.Name)

	n, err := e.app.Company.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Acme", n.Name)
}

func TestProcessStepsOrdered(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, models.RoleAdmin)
	require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/process-steps", `{"step":"02","title":"Build","description":"d","order":2}`, tok).Code)
	require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/process-steps", `{"step":"01","title":"Plan","description":"d","order":1}`, tok).Code)

	w := e.do(http.MethodGet, "/api/process-steps", "", "")
	var steps []models.ProcessStep
	decodeData(t, w, &steps)
	require.Len(t, steps, 2)
	assert.Equal(t, "01", steps[0].Step)
}
