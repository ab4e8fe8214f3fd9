package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ProjectCategories    = []interface{}{"web", "mobile", "saas", "ecommerce"}
	TechnologyCategories = []interface{}{"frontend", "backend", "database", "devops"}
	StatPages            = []interface{}{"home", "about", "portfolio", "all"}
	HeroPages            = []interface{}{"home", "about", "services", "portfolio", "contact"}
	ButtonVariants       = []interface{}{"primary", "secondary", "outline"}
)

// Project is a portfolio entry. Images holds public URLs of files in the file store.
type Project struct {
	Base         `bson:",inline"`
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	Challenge    string   `json:"challenge" bson:"challenge"`
	Solution     string   `json:"solution" bson:"solution"`
	Category     string   `json:"category" bson:"category"`
	Technologies []string `json:"technologies" bson:"technologies"`
	Client       string   `json:"client" bson:"client"`
	Duration     string   `json:"duration" bson:"duration"`
	LiveURL      string   `json:"liveUrl" bson:"liveUrl"`
	GithubURL    string   `json:"githubUrl" bson:"githubUrl"`
	Images       []string `json:"images" bson:"images"`
	Featured     bool     `json:"featured" bson:"featured"`
	Order        int      `json:"order" bson:"order"`
}

func (p *Project) ApplyDefaults() {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Category, validation.Required, validation.In(ProjectCategories...)),
		validation.Field(&p.Images, validation.Each(validation.Required)),
	)
}

type Service struct {
	Base        `bson:",inline"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Icon        string   `json:"icon" bson:"icon"`
	Features    []string `json:"features" bson:"features"`
	Order       int      `json:"order" bson:"order"`
}

func (s *Service) ApplyDefaults() {
	if s.Icon == "" {
		s.Icon = "FiCode"
	}
	if s.Features == nil {
		s.Features = []string{}
	}
}

func (s Service) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&s.Description, validation.Required),
	)
}

type Testimonial struct {
	Base       `bson:",inline"`
	ClientName string `json:"clientName" bson:"clientName"`
	Company    string `json:"company" bson:"company"`
	Position   string `json:"position" bson:"position"`
	Content    string `json:"content" bson:"content"`
	Rating     *int   `json:"rating" bson:"rating"`
	Avatar     string `json:"avatar" bson:"avatar"`
	Featured   bool   `json:"featured" bson:"featured"`
}

func (t *Testimonial) ApplyDefaults() {
	if t.Rating == nil {
		t.Rating = Int(5)
	}
}

func (t Testimonial) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ClientName, validation.Required),
		validation.Field(&t.Content, validation.Required),
		validation.Field(&t.Rating, validation.NotNil, between(1, 5)),
	)
}

type Technology struct {
	Base        `bson:",inline"`
	Name        string `json:"name" bson:"name"`
	Category    string `json:"category" bson:"category"`
	Icon        string `json:"icon" bson:"icon"`
	Proficiency *int   `json:"proficiency" bson:"proficiency"`
}

func (t *Technology) ApplyDefaults() {
	if t.Proficiency == nil {
		t.Proficiency = Int(50)
	}
}

func (t Technology) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Category, validation.Required, validation.In(TechnologyCategories...)),
		validation.Field(&t.Proficiency, validation.NotNil, between(1, 100)),
	)
}

type Stat struct {
	Base  `bson:",inline"`
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
	Page  string `json:"page" bson:"page"`
	Order int    `json:"order" bson:"order"`
}

func (s *Stat) ApplyDefaults() {
	if s.Page == "" {
		s.Page = "all"
	}
}

func (s Stat) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Label, validation.Required),
		validation.Field(&s.Value, validation.Required),
		validation.Field(&s.Page, validation.In(StatPages...)),
	)
}

type Badge struct {
	Icon string `json:"icon" bson:"icon"`
	Text string `json:"text" bson:"text"`
}

type CTAButton struct {
	Text    string `json:"text" bson:"text"`
	Link    string `json:"link" bson:"link"`
	Variant string `json:"variant" bson:"variant"`
}

func (b CTAButton) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Text, validation.Required),
		validation.Field(&b.Link, validation.Required),
		validation.Field(&b.Variant, validation.In(ButtonVariants...)),
	)
}

// HeroContent is the banner block of one public page. Page is unique.
type HeroContent struct {
	Base            `bson:",inline"`
	Page            string      `json:"page" bson:"page"`
	Badge           Badge       `json:"badge" bson:"badge"`
	Title           string      `json:"title" bson:"title"`
	HighlightedText string      `json:"highlightedText" bson:"highlightedText"`
	Subtitle        string      `json:"subtitle" bson:"subtitle"`
	Description     string      `json:"description" bson:"description"`
	CTAButtons      []CTAButton `json:"ctaButtons" bson:"ctaButtons"`
}

func (h *HeroContent) ApplyDefaults() {
	if h.CTAButtons == nil {
		h.CTAButtons = []CTAButton{}
	}
	for i := range h.CTAButtons {
		if h.CTAButtons[i].Variant == "" {
			h.CTAButtons[i].Variant = "primary"
		}
	}
}

func (h HeroContent) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Page, validation.Required, validation.In(HeroPages...)),
		validation.Field(&h.Title, validation.Required),
		validation.Field(&h.Subtitle, validation.Required),
		validation.Field(&h.CTAButtons),
	)
}

type ProcessStep struct {
	Base        `bson:",inline"`
	Step        string `json:"step" bson:"step"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Order       int    `json:"order" bson:"order"`
}

func (p ProcessStep) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Step, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
	)
}

// Int returns a pointer to n, for optional numeric fields.
func Int(n int) *int { return &n }

// between bounds an optional int. Min and Max skip zero as empty, so an
// explicit 0 would slip through them.
func between(lo, hi int) validation.Rule {
	return validation.By(func(v interface{}) error {
		n, ok := v.(*int)
		if !ok || n == nil {
			return nil
		}
		if *n < lo || *n > hi {
			return validation.NewError("validation_out_of_range", fmt.Sprintf("must be between %d and %d", lo, hi))
		}
		return nil
	})
}
