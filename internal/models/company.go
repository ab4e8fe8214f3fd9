package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CompanyKey is the fixed key of the single CompanyInfo document.
const CompanyKey = "default"

type CompanyValue struct {
	Icon        string `json:"icon" bson:"icon"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Order       int    `json:"order" bson:"order"`
}

func (v CompanyValue) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Title, validation.Required),
	)
}

type Contact struct {
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

func (c Contact) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, is.EmailFormat),
	)
}

type Social struct {
	Twitter   string `json:"twitter" bson:"twitter"`
	LinkedIn  string `json:"linkedin" bson:"linkedin"`
	GitHub    string `json:"github" bson:"github"`
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
}

// CompanyInfo is a singleton; Key is always CompanyKey and carries a unique index.
type CompanyInfo struct {
	Base        `bson:",inline"`
	Key         string         `json:"-" bson:"key"`
	Name        string         `json:"name" bson:"name"`
	Tagline     string         `json:"tagline" bson:"tagline"`
	FoundedYear int            `json:"foundedYear" bson:"foundedYear"`
	Story       string         `json:"story" bson:"story"`
	Mission     string         `json:"mission" bson:"mission"`
	Vision      string         `json:"vision" bson:"vision"`
	Values      []CompanyValue `json:"values" bson:"values"`
	Contact     Contact        `json:"contact" bson:"contact"`
	Social      Social         `json:"social" bson:"social"`
}

func (c *CompanyInfo) ApplyDefaults() {
	c.Key = CompanyKey
	if c.Name == "" {
		c.Name = "seosites"
	}
	if c.FoundedYear == 0 {
		c.FoundedYear = 2014
	}
	if c.Values == nil {
		c.Values = []CompanyValue{}
	}
}

func (c CompanyInfo) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.FoundedYear, validation.Min(1800), validation.Max(2200)),
		validation.Field(&c.Values),
		validation.Field(&c.Contact),
	)
}
