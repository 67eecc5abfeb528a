package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govern-lab/riskframe/pkg/domain/model"
)

type templateRepository struct {
	mu        sync.RWMutex
	templates map[string]*model.RiskTemplate
}

func newTemplateRepository() *templateRepository {
	return &templateRepository{
		templates: make(map[string]*model.RiskTemplate),
	}
}

func (r *templateRepository) ListActive(ctx context.Context) ([]*model.RiskTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]*model.RiskTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		if !t.IsActive {
			continue
		}
		templates = append(templates, t.Clone())
	}

	sort.SliceStable(templates, func(i, j int) bool {
		if templates[i].FrameworkFunction != templates[j].FrameworkFunction {
			return templates[i].FrameworkFunction < templates[j].FrameworkFunction
		}
		if templates[i].Category != templates[j].Category {
			return templates[i].Category < templates[j].Category
		}
		return templates[i].SubcategoryID < templates[j].SubcategoryID
	})

	return templates, nil
}

func (r *templateRepository) Get(ctx context.Context, subcategoryID string) (*model.RiskTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, exists := r.templates[subcategoryID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "template not found", goerr.V("subcategory_id", subcategoryID))
	}

	return template.Clone(), nil
}

func (r *templateRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.templates), nil
}

func (r *templateRepository) PutMany(ctx context.Context, templates []*model.RiskTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, t := range templates {
		stored := t.Clone()
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		stored.UpdatedAt = now
		r.templates[stored.SubcategoryID] = stored
	}
	return nil
}
