package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

type assessmentRepository struct {
	mu          sync.RWMutex
	assessments map[types.AssessmentID]*model.Assessment
}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		assessments: make(map[types.AssessmentID]*model.Assessment),
	}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := assessment.Clone()
	created.ID = types.NewAssessmentID()
	created.OverallStatus = created.OverallStatus.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.assessments[created.ID] = created
	return created.Clone(), nil
}

func (r *assessmentRepository) Get(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) (*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessment, exists := r.assessments[id]
	if !exists || assessment.OrganizationID != orgID {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id), goerr.V("org_id", orgID))
	}

	return assessment.Clone(), nil
}

func (r *assessmentRepository) List(ctx context.Context, orgID types.OrganizationID, opt interfaces.ListAssessmentsOption) ([]*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessments := make([]*model.Assessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		if a.OrganizationID != orgID {
			continue
		}
		if opt.Status != "" && a.OverallStatus != opt.Status {
			continue
		}
		assessments = append(assessments, a.Clone())
	}

	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.After(assessments[j].CreatedAt)
	})

	return assessments, nil
}

func (r *assessmentRepository) Update(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.assessments[assessment.ID]
	if !exists || existing.OrganizationID != assessment.OrganizationID {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", assessment.ID))
	}

	updated := assessment.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.assessments[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *assessmentRepository) Delete(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.assessments[id]
	if !exists || existing.OrganizationID != orgID {
		return goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id), goerr.V("org_id", orgID))
	}

	delete(r.assessments, id)
	return nil
}
