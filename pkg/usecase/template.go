package usecase

import (
	"context"
	"time"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type TemplateUseCase struct {
	repo  interfaces.Repository
	clock func() time.Time
}

func NewTemplateUseCase(repo interfaces.Repository, clock func() time.Time) *TemplateUseCase {
	return &TemplateUseCase{
		repo:  repo,
		clock: clock,
	}
}

// ListGrouped returns the active template catalog grouped by framework
// function. Each group keeps the repository's (category, subcategoryId)
// ordering.
func (uc *TemplateUseCase) ListGrouped(ctx context.Context) (map[types.FrameworkFunction][]*model.RiskTemplate, error) {
	templates, err := uc.repo.Template().ListActive(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list templates")
	}

	grouped := make(map[types.FrameworkFunction][]*model.RiskTemplate)
	for _, fn := range types.AllFrameworkFunctions() {
		grouped[fn] = []*model.RiskTemplate{}
	}
	for _, tpl := range templates {
		grouped[tpl.FrameworkFunction] = append(grouped[tpl.FrameworkFunction], tpl)
	}
	return grouped, nil
}

func (uc *TemplateUseCase) Get(ctx context.Context, subcategoryID string) (*model.RiskTemplate, error) {
	tpl, err := uc.repo.Template().Get(ctx, subcategoryID)
	if err != nil {
		return nil, goerr.Wrap(notFoundAs(err, ErrTemplateNotFound), "failed to get template",
			goerr.V(SubcategoryIDKey, subcategoryID))
	}
	return tpl, nil
}

// Seed loads the template catalog into the store. An already-seeded store
// is left untouched unless force is set. Returns the number of templates
// written.
func (uc *TemplateUseCase) Seed(ctx context.Context, templates []*model.RiskTemplate, force bool) (int, error) {
	if !force {
		count, err := uc.repo.Template().Count(ctx)
		if err != nil {
			return 0, goerr.Wrap(err, "failed to count templates")
		}
		if count > 0 {
			return 0, nil
		}
	}

	if err := uc.repo.Template().PutMany(ctx, templates); err != nil {
		return 0, goerr.Wrap(err, "failed to seed templates")
	}
	return len(templates), nil
}
