package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Admin is a CMS account. PasswordHash is a bcrypt hash and never leaves the server.
type Admin struct {
	Base         `bson:",inline"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password"`
	Role         string `json:"role" bson:"role"`
}

func (a *Admin) ApplyDefaults() {
	if a.Role == "" {
		a.Role = RoleEditor
	}
}

func (a Admin) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Email, validation.Required, is.EmailFormat),
		validation.Field(&a.PasswordHash, validation.Required),
		validation.Field(&a.Role, validation.Required, validation.In(RoleAdmin, RoleEditor)),
	)
}

// AdminView is the public projection returned by auth endpoints.
type AdminView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *Admin) View() AdminView {
	return AdminView{ID: a.ID.Hex(), Email: a.Email, Role: a.Role}
}
