package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/internal/store"
)

// Company manages the single CompanyInfo document.
type Company struct {
	col         store.Collection[models.CompanyInfo]
	defaultName string
}

func NewCompany(col store.Collection[models.CompanyInfo], defaultName string) *Company {
	return &Company{col: col, defaultName: defaultName}
}

var companyQuery = store.Query{Eq: map[string]any{"key": models.CompanyKey}}

// Get returns the document, creating it with defaults on first read.
// Concurrent first reads converge on one document through the unique key.
func (c *Company) Get(ctx context.Context) (*models.CompanyInfo, error) {
	info, err := c.col.FindOne(ctx, companyQuery)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("company info: %w", err)
	}
	info = &models.CompanyInfo{Name: c.defaultName}
	info.ApplyDefaults()
	if err := c.col.Insert(ctx, info); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.col.FindOne(ctx, companyQuery)
		}
		return nil, fmt.Errorf("company info: %w", err)
	}
	return info, nil
}

// Update applies the patch to the existing document, creating it first if needed.
func (c *Company) Update(ctx context.Context, apply func(*models.CompanyInfo) error) (*models.CompanyInfo, error) {
	cur, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}
	id, created := cur.ID, cur.CreatedAt
	if err := apply(cur); err != nil {
		return nil, err
	}
	cur.ID, cur.CreatedAt = id, created
	cur.ApplyDefaults()
	if err := apperr.FromValidation(cur.Validate()); err != nil {
		return nil, err
	}
	if err := c.col.Replace(ctx, cur); err != nil {
		return nil, fmt.Errorf("company info: %w", err)
	}
	return cur, nil
}
