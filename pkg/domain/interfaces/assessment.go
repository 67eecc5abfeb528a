package interfaces

import (
	"context"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// ListAssessmentsOption narrows an assessment listing
type ListAssessmentsOption struct {
	// Status filters by overall status when non-empty
	Status types.AssessmentStatus
}

// AssessmentRepository persists assessments. All operations are scoped to
// one organization; an assessment is never visible outside its owner.
type AssessmentRepository interface {
	// Create stores a new assessment with a generated ID
	Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error)

	// Get retrieves an assessment by ID within the organization
	Get(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) (*model.Assessment, error)

	// List retrieves the organization's assessments, newest first
	List(ctx context.Context, orgID types.OrganizationID, opt ListAssessmentsOption) ([]*model.Assessment, error)

	// Update replaces an existing assessment
	Update(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error)

	// Delete deletes an assessment by ID within the organization
	Delete(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) error
}
