package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/repository/memory"
	"github.com/govern-lab/riskframe/pkg/usecase"
)

// faultyRepository simulates a backend outage: assessment and template
// operations fail with an error that is not the not-found sentinel.
type faultyRepository struct {
	interfaces.Repository
	err error
}

func (r *faultyRepository) Assessment() interfaces.AssessmentRepository {
	return &faultyAssessmentRepository{err: r.err}
}

func (r *faultyRepository) Template() interfaces.TemplateRepository {
	return &faultyTemplateRepository{err: r.err}
}

type faultyAssessmentRepository struct {
	err error
}

func (r *faultyAssessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	return nil, r.err
}

func (r *faultyAssessmentRepository) Get(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) (*model.Assessment, error) {
	return nil, r.err
}

func (r *faultyAssessmentRepository) List(ctx context.Context, orgID types.OrganizationID, opt interfaces.ListAssessmentsOption) ([]*model.Assessment, error) {
	return nil, r.err
}

func (r *faultyAssessmentRepository) Update(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	return nil, r.err
}

func (r *faultyAssessmentRepository) Delete(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) error {
	return r.err
}

type faultyTemplateRepository struct {
	err error
}

func (r *faultyTemplateRepository) ListActive(ctx context.Context) ([]*model.RiskTemplate, error) {
	return nil, r.err
}

func (r *faultyTemplateRepository) Get(ctx context.Context, subcategoryID string) (*model.RiskTemplate, error) {
	return nil, r.err
}

func (r *faultyTemplateRepository) Count(ctx context.Context) (int, error) {
	return 0, r.err
}

func (r *faultyTemplateRepository) PutMany(ctx context.Context, templates []*model.RiskTemplate) error {
	return r.err
}

func TestStorageFailureIsNotNotFound(t *testing.T) {
	storageErr := errors.New("backend unavailable")
	uc := usecase.New(
		&faultyRepository{Repository: memory.New(), err: storageErr},
		usecase.WithClock(func() time.Time { return testClock }),
	)
	ctx := context.Background()

	t.Run("get assessment", func(t *testing.T) {
		_, err := uc.Assessment.Get(ctx, testOrgID, "some-id")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrAssessmentNotFound)).False()
		gt.Bool(t, errors.Is(err, storageErr)).True()
	})

	t.Run("update assessment", func(t *testing.T) {
		title := "New Title"
		_, err := uc.Assessment.Update(ctx, testOrgID, "some-id", usecase.UpdateAssessmentInput{Title: &title})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrAssessmentNotFound)).False()
		gt.Bool(t, errors.Is(err, storageErr)).True()
	})

	t.Run("delete assessment", func(t *testing.T) {
		err := uc.Assessment.Delete(ctx, testOrgID, "some-id")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrAssessmentNotFound)).False()
	})

	t.Run("update framework section", func(t *testing.T) {
		_, err := uc.Assessment.UpdateFrameworkSection(ctx, testOrgID, "some-id", "govern", usecase.SectionUpdateInput{})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrAssessmentNotFound)).False()
	})

	t.Run("generate report", func(t *testing.T) {
		_, err := uc.Report.Generate(ctx, testOrgID, "some-id", "json")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrAssessmentNotFound)).False()
	})

	t.Run("get template", func(t *testing.T) {
		_, err := uc.Template.Get(ctx, "GOVERN-1.1")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrTemplateNotFound)).False()
		gt.Bool(t, errors.Is(err, storageErr)).True()
	})
}

func TestMissingEntityIsNotFound(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	_, err := uc.Assessment.Get(ctx, testOrgID, "no-such-id")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrAssessmentNotFound)).True()
	gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).False()

	_, err = uc.Template.Get(ctx, "NO-SUCH-1.1")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrTemplateNotFound)).True()
}
