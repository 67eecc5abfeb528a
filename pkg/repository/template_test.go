package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

func newTemplate(fn types.FrameworkFunction, category, subcategoryID string) *model.RiskTemplate {
	return &model.RiskTemplate{
		FrameworkFunction: fn,
		Category:          category,
		SubcategoryID:     subcategoryID,
		Outcome:           "outcome of " + subcategoryID,
		Questions: []model.Question{
			{ID: subcategoryID + "-q1", Text: "Is it documented?", Type: types.QuestionTypeYesNo, Required: true, Weight: 1},
		},
		IsActive: true,
	}
}

func runTemplateRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("PutMany then ListActive in catalog order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.Template().PutMany(ctx, []*model.RiskTemplate{
			newTemplate(types.FunctionMap, "MAP 1", "MAP 1.1"),
			newTemplate(types.FunctionGovern, "GOVERN 2", "GOVERN 2.1"),
			newTemplate(types.FunctionGovern, "GOVERN 1", "GOVERN 1.2"),
			newTemplate(types.FunctionGovern, "GOVERN 1", "GOVERN 1.1"),
		})
		gt.NoError(t, err).Required()

		templates, err := repo.Template().ListActive(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, templates).Length(4)

		gt.Value(t, templates[0].SubcategoryID).Equal("GOVERN 1.1")
		gt.Value(t, templates[1].SubcategoryID).Equal("GOVERN 1.2")
		gt.Value(t, templates[2].SubcategoryID).Equal("GOVERN 2.1")
		gt.Value(t, templates[3].SubcategoryID).Equal("MAP 1.1")

		gt.Bool(t, templates[0].CreatedAt.IsZero()).False()
		gt.Bool(t, templates[0].UpdatedAt.IsZero()).False()
	})

	t.Run("ListActive excludes inactive templates", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		active := newTemplate(types.FunctionGovern, "GOVERN 1", "GOVERN 1.1")
		retired := newTemplate(types.FunctionGovern, "GOVERN 1", "GOVERN 1.2")
		retired.IsActive = false

		gt.NoError(t, repo.Template().PutMany(ctx, []*model.RiskTemplate{active, retired})).Required()

		templates, err := repo.Template().ListActive(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, templates).Length(1)
		gt.Value(t, templates[0].SubcategoryID).Equal("GOVERN 1.1")
	})

	t.Run("Get by subcategory ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Template().PutMany(ctx, []*model.RiskTemplate{
			newTemplate(types.FunctionMeasure, "MEASURE 1", "MEASURE 1.1"),
		})).Required()

		tpl, err := repo.Template().Get(ctx, "MEASURE 1.1")
		gt.NoError(t, err).Required()
		gt.Value(t, tpl.FrameworkFunction).Equal(types.FunctionMeasure)
		gt.Array(t, tpl.Questions).Length(1)

		_, err = repo.Template().Get(ctx, "MEASURE 9.9")
		gt.Error(t, err)
	})

	t.Run("Count and replace semantics", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		count, err := repo.Template().Count(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, count).Equal(0)

		tpl := newTemplate(types.FunctionManage, "MANAGE 1", "MANAGE 1.1")
		gt.NoError(t, repo.Template().PutMany(ctx, []*model.RiskTemplate{tpl})).Required()

		// same subcategory ID replaces rather than duplicates
		tpl.Outcome = "revised outcome"
		gt.NoError(t, repo.Template().PutMany(ctx, []*model.RiskTemplate{tpl})).Required()

		count, err = repo.Template().Count(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, count).Equal(1)

		stored, err := repo.Template().Get(ctx, "MANAGE 1.1")
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Outcome).Equal("revised outcome")
	})
}

func TestTemplateRepository_Memory(t *testing.T) {
	runTemplateRepositoryTest(t, newMemoryRepo)
}

func TestTemplateRepository_Firestore(t *testing.T) {
	runTemplateRepositoryTest(t, newFirestoreRepo)
}
