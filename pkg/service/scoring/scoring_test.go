package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/service/scoring"
)

func answers(responses ...string) []model.QuestionAnswer {
	result := make([]model.QuestionAnswer, len(responses))
	for i, r := range responses {
		result[i] = model.QuestionAnswer{
			QuestionID: "q",
			Response:   r,
		}
	}
	return result
}

func TestAnswerPoints(t *testing.T) {
	cases := []struct {
		response string
		points   int
	}{
		{"yes", 100},
		{"5", 100},
		{"4", 75},
		{"3", 50},
		{"2", 25},
		{"1", 0},
		{"no", 0},
		{"", 0},
		{"YES", 0}, // matching is case-sensitive
	}

	for _, tc := range cases {
		t.Run(tc.response, func(t *testing.T) {
			gt.Value(t, scoring.AnswerPoints(tc.response)).Equal(tc.points)
		})
	}
}

func TestDeriveImplementation(t *testing.T) {
	t.Run("empty responses is an error", func(t *testing.T) {
		_, err := scoring.DeriveImplementation(nil)
		gt.Error(t, err)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		cases := []struct {
			name      string
			responses []model.QuestionAnswer
			expect    types.Implementation
		}{
			// avg 100
			{"all yes", answers("yes", "yes"), types.ImplementationFull},
			// avg exactly 90: (100+100+100+75+75)/5 = 90
			{"avg 90 is fully", answers("5", "5", "5", "4", "4"), types.ImplementationFull},
			// avg 87.5
			{"avg below 90 is substantial", answers("5", "4", "5", "4"), types.ImplementationSubstantial},
			// avg exactly 75
			{"avg 75 is substantial", answers("4", "4"), types.ImplementationSubstantial},
			// avg exactly 50
			{"avg 50 is partial", answers("3", "3"), types.ImplementationPartial},
			// avg exactly 30: (50+25+25+25+25)/5 = 30
			{"avg 30 is partial", answers("3", "2", "2", "2", "2"), types.ImplementationPartial},
			// avg 25
			{"avg below 30 is not started", answers("2", "2"), types.ImplementationNotStarted},
			{"all unanswerable", answers("no", ""), types.ImplementationNotStarted},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				impl, err := scoring.DeriveImplementation(tc.responses)
				gt.NoError(t, err).Required()
				gt.Value(t, impl).Equal(tc.expect)
			})
		}
	})
}

func section(impls ...types.Implementation) model.FrameworkSection {
	subs := make([]model.SubcategoryRecord, len(impls))
	for i, impl := range impls {
		subs[i] = model.SubcategoryRecord{
			SubcategoryID:  "SUB",
			Implementation: impl,
		}
	}
	return model.FrameworkSection{Subcategories: subs}
}

func TestSectionScore(t *testing.T) {
	t.Run("empty section scores zero", func(t *testing.T) {
		gt.Value(t, scoring.SectionScore(model.FrameworkSection{})).Equal(0.0)
	})

	t.Run("mean of implementation scores", func(t *testing.T) {
		s := section(
			types.ImplementationFull,        // 100
			types.ImplementationSubstantial, // 75
			types.ImplementationPartial,     // 25
			types.ImplementationNotStarted,  // 0
		)
		gt.Value(t, scoring.SectionScore(s)).Equal(50.0)
	})
}

func TestOverallScore(t *testing.T) {
	t.Run("empty framework scores zero", func(t *testing.T) {
		gt.Value(t, scoring.OverallScore(model.Framework{})).Equal(0)
	})

	t.Run("flattened mean across sections", func(t *testing.T) {
		// Sections of uneven size: a flattened mean weighs each
		// subcategory equally, not each section.
		fw := model.Framework{
			Govern: section(types.ImplementationFull, types.ImplementationFull, types.ImplementationFull),
			Map:    section(types.ImplementationNotStarted),
		}
		// (100+100+100+0)/4 = 75; an average of section averages would be 50
		gt.Value(t, scoring.OverallScore(fw)).Equal(75)
	})

	t.Run("rounds to nearest integer", func(t *testing.T) {
		fw := model.Framework{
			Govern: section(
				types.ImplementationFull,        // 100
				types.ImplementationSubstantial, // 75
				types.ImplementationPartial,     // 25
				types.ImplementationNotStarted,  // 0
			),
		}
		// 200/4 = 50
		gt.Value(t, scoring.OverallScore(fw)).Equal(50)

		fw.Map = section(types.ImplementationSubstantial) // +75 → 275/5 = 55
		gt.Value(t, scoring.OverallScore(fw)).Equal(55)
	})
}

func TestIsComplete(t *testing.T) {
	fw := model.Framework{
		Govern:  model.FrameworkSection{Completed: true},
		Map:     model.FrameworkSection{Completed: true},
		Measure: model.FrameworkSection{Completed: true},
	}
	gt.Bool(t, scoring.IsComplete(fw)).False()

	fw.Manage.Completed = true
	gt.Bool(t, scoring.IsComplete(fw)).True()
}
