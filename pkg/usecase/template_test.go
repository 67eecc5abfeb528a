package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/usecase"
)

func catalogFixture() []*model.RiskTemplate {
	return []*model.RiskTemplate{
		{
			FrameworkFunction: types.FunctionGovern,
			Category:          "GOVERN 1",
			SubcategoryID:     "GOVERN 1.1",
			Questions:         []model.Question{{ID: "q1", Text: "Documented?", Type: types.QuestionTypeYesNo}},
			IsActive:          true,
		},
		{
			FrameworkFunction: types.FunctionGovern,
			Category:          "GOVERN 1",
			SubcategoryID:     "GOVERN 1.2",
			Questions:         []model.Question{{ID: "q1", Text: "Documented?", Type: types.QuestionTypeYesNo}},
			IsActive:          true,
		},
		{
			FrameworkFunction: types.FunctionManage,
			Category:          "MANAGE 1",
			SubcategoryID:     "MANAGE 1.1",
			Questions:         []model.Question{{ID: "q1", Text: "Documented?", Type: types.QuestionTypeYesNo}},
			IsActive:          true,
		},
	}
}

func TestSeedTemplates(t *testing.T) {
	t.Run("seeds an empty store", func(t *testing.T) {
		uc := newUseCases()

		seeded, err := uc.Template.Seed(context.Background(), catalogFixture(), false)
		gt.NoError(t, err).Required()
		gt.Value(t, seeded).Equal(3)
	})

	t.Run("skips an already seeded store", func(t *testing.T) {
		uc := newUseCases()

		_, err := uc.Template.Seed(context.Background(), catalogFixture(), false)
		gt.NoError(t, err).Required()

		seeded, err := uc.Template.Seed(context.Background(), catalogFixture(), false)
		gt.NoError(t, err).Required()
		gt.Value(t, seeded).Equal(0)
	})

	t.Run("force reseeds", func(t *testing.T) {
		uc := newUseCases()

		_, err := uc.Template.Seed(context.Background(), catalogFixture(), false)
		gt.NoError(t, err).Required()

		seeded, err := uc.Template.Seed(context.Background(), catalogFixture(), true)
		gt.NoError(t, err).Required()
		gt.Value(t, seeded).Equal(3)
	})
}

func TestListGroupedTemplates(t *testing.T) {
	uc := newUseCases()

	_, err := uc.Template.Seed(context.Background(), catalogFixture(), false)
	gt.NoError(t, err).Required()

	grouped, err := uc.Template.ListGrouped(context.Background())
	gt.NoError(t, err).Required()

	// all four functions are present even when empty
	gt.Value(t, len(grouped)).Equal(4)
	gt.Array(t, grouped[types.FunctionGovern]).Length(2)
	gt.Array(t, grouped[types.FunctionManage]).Length(1)
	gt.Array(t, grouped[types.FunctionMap]).Length(0)
	gt.Array(t, grouped[types.FunctionMeasure]).Length(0)

	gt.Value(t, grouped[types.FunctionGovern][0].SubcategoryID).Equal("GOVERN 1.1")
	gt.Value(t, grouped[types.FunctionGovern][1].SubcategoryID).Equal("GOVERN 1.2")
}

func TestGetTemplate(t *testing.T) {
	uc := newUseCases()

	_, err := uc.Template.Seed(context.Background(), catalogFixture(), false)
	gt.NoError(t, err).Required()

	tpl, err := uc.Template.Get(context.Background(), "MANAGE 1.1")
	gt.NoError(t, err).Required()
	gt.Value(t, tpl.FrameworkFunction).Equal(types.FunctionManage)

	_, err = uc.Template.Get(context.Background(), "MANAGE 9.9")
	gt.Error(t, err).Is(usecase.ErrTemplateNotFound)
}
