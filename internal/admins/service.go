// Package admins manages CMS accounts and password login.
package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/internal/store"
	"github.com/seosites/seosites/backend/go-api/internal/tokens"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

var ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")

// Service encapsulates admin-related business logic
type Service struct {
	col    store.Collection[models.Admin]
	issuer *tokens.Issuer
	cost   int

	dummyOnce sync.Once
	dummy     []byte
}

func NewService(col store.Collection[models.Admin], issuer *tokens.Issuer) *Service {
	return &Service{col: col, issuer: issuer, cost: bcrypt.DefaultCost}
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Login checks credentials and returns a signed token for the admin.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, apperr.BadRequest("Please provide email and password")
	}
	a, err := s.col.FindOne(ctx, store.Query{Eq: map[string]any{"email": email}})
	if errors.Is(err, store.ErrNotFound) {
		// spend the same bcrypt time as a real comparison
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("find admin: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := s.issuer.GenerateAccessToken(a)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return tok, a, nil
}

// Register creates an account; role defaults to editor.
func (s *Service) Register(ctx context.Context, email, password, role string) (*models.Admin, error) {
	if len(password) < MinPasswordLength {
		return nil, apperr.Invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := &models.Admin{Email: normalizeEmail(email), PasswordHash: string(hash), Role: role}
	a.ApplyDefaults()
	if err := apperr.FromValidation(a.Validate()); err != nil {
		return nil, err
	}
	if err := s.col.Insert(ctx, a); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Duplicate("Duplicate field value entered")
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return a, nil
}

// Get returns the admin with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.Admin, error) {
	a, err := s.col.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
		return nil, apperr.NotFound("Admin not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return a, nil
}

// Count reports how many accounts exist.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.col.Count(ctx, store.Query{})
}

func (s *Service) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.cost)
	})
	return s.dummy
}
