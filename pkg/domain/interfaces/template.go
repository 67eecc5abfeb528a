package interfaces

import (
	"context"

	"github.com/govern-lab/riskframe/pkg/domain/model"
)

// TemplateRepository stores the questionnaire template catalog. The catalog
// is seeded once and read-only at request time.
type TemplateRepository interface {
	// ListActive retrieves all active templates ordered by
	// (frameworkFunction, category, subcategoryId) ascending
	ListActive(ctx context.Context) ([]*model.RiskTemplate, error)

	// Get retrieves a template by subcategory ID
	Get(ctx context.Context, subcategoryID string) (*model.RiskTemplate, error)

	// Count returns the number of stored templates
	Count(ctx context.Context) (int, error)

	// PutMany stores templates, replacing entries with the same subcategory ID
	PutMany(ctx context.Context, templates []*model.RiskTemplate) error
}
