package models

import (
	"encoding/json"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValidate(t *testing.T) {
	p := &Project{Title: "Shop", Description: "d", Category: "ecommerce"}
	p.ApplyDefaults()
	require.NoError(t, p.Validate())
	assert.Equal(t, []string{}, p.Images)

	p.Category = "desktop"
	err := p.Validate()
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "category")
}

func TestExplicitZeroIsNotDefaulted(t *testing.T) {
	tm := &Testimonial{ClientName: "A", Content: "great", Rating: Int(0)}
	tm.ApplyDefaults()
	assert.Equal(t, 0, *tm.Rating)
	errs, ok := tm.Validate().(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "rating")

	tech := &Technology{Name: "Go", Category: "backend", Proficiency: Int(0)}
	tech.ApplyDefaults()
	assert.Equal(t, 0, *tech.Proficiency)
	errs, ok = tech.Validate().(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "proficiency")

	tech.Proficiency = Int(100)
	assert.NoError(t, tech.Validate())
	tech.Proficiency = Int(101)
	assert.Error(t, tech.Validate())
}

func TestDefaults(t *testing.T) {
	tech := &Technology{Name: "Go", Category: "backend"}
	tech.ApplyDefaults()
	require.NotNil(t, tech.Proficiency)
	assert.Equal(t, 50, *tech.Proficiency)
	require.NoError(t, tech.Validate())

	tm := &Testimonial{ClientName: "A", Content: "great"}
	tm.ApplyDefaults()
	require.NotNil(t, tm.Rating)
	assert.Equal(t, 5, *tm.Rating)

	tm.Rating = Int(6)
	assert.Error(t, tm.Validate())

	st := &Stat{Label: "Projects", Value: "120+"}
	st.ApplyDefaults()
	assert.Equal(t, "all", st.Page)

	svc := &Service{Title: "SEO", Description: "d"}
	svc.ApplyDefaults()
	assert.Equal(t, "FiCode", svc.Icon)
}

func TestHeroButtonsValidated(t *testing.T) {
	h := &HeroContent{Page: "home", Title: "t", Subtitle: "s", CTAButtons: []CTAButton{{Text: "Go", Link: "/x"}}}
	h.ApplyDefaults()
	require.NoError(t, h.Validate())
	assert.Equal(t, "primary", h.CTAButtons[0].Variant)

	h.CTAButtons[0].Variant = "ghost"
	assert.Error(t, h.Validate())
}

func TestAdminPasswordNeverSerialized(t *testing.T) {
	a := &Admin{Email: "a@b.co", PasswordHash: "$2a$10$hash", Role: RoleAdmin}
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "password")
}

func TestCompanyDefaults(t *testing.T) {
	c := &CompanyInfo{}
	c.ApplyDefaults()
	assert.Equal(t, CompanyKey, c.Key)
	assert.Equal(t, "seosites", c.Name)
	assert.Equal(t, 2014, c.FoundedYear)
	require.NoError(t, c.Validate())
}
