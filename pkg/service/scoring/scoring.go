// Package scoring implements the risk scoring pipeline: questionnaire
// answers are reduced to an implementation level per subcategory, and
// implementation levels are aggregated into section scores and an overall
// assessment risk score. All functions are pure; callers pass fully loaded
// state and receive derived values.
package scoring

import (
	"math"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// AnswerPoints maps a raw questionnaire response to its point value. The
// mapping is a fixed global policy; per-question weight is not applied.
func AnswerPoints(response string) int {
	switch response {
	case "yes", "5":
		return 100
	case "4":
		return 75
	case "3":
		return 50
	case "2":
		return 25
	default:
		return 0
	}
}

// DeriveImplementation classifies a subcategory's answer set into an
// implementation level. The classification boundaries are inclusive at
// 90 / 70 / 30. An empty answer set is a caller error: averaging over zero
// answers is undefined.
func DeriveImplementation(responses []model.QuestionAnswer) (types.Implementation, error) {
	if len(responses) == 0 {
		return "", goerr.New("cannot derive implementation from empty responses")
	}

	total := 0
	for _, resp := range responses {
		total += AnswerPoints(resp.Response)
	}
	avg := float64(total) / float64(len(responses))

	switch {
	case avg >= 90:
		return types.ImplementationFull, nil
	case avg >= 70:
		return types.ImplementationSubstantial, nil
	case avg >= 30:
		return types.ImplementationPartial, nil
	default:
		return types.ImplementationNotStarted, nil
	}
}

// SectionScore returns the mean implementation score of a section's
// subcategories, 0 when the section has none.
func SectionScore(section model.FrameworkSection) float64 {
	if len(section.Subcategories) == 0 {
		return 0
	}

	total := 0
	for _, sub := range section.Subcategories {
		total += sub.Implementation.Score()
	}
	return float64(total) / float64(len(section.Subcategories))
}

// OverallScore returns the assessment-wide risk score: the mean
// implementation score across all subcategories of all four sections
// (flattened, not an average of section averages), rounded to the nearest
// integer. 0 when there are no subcategories anywhere.
func OverallScore(framework model.Framework) int {
	total := 0
	count := 0
	for _, fn := range types.AllFrameworkFunctions() {
		for _, sub := range framework.Section(fn).Subcategories {
			total += sub.Implementation.Score()
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// IsComplete reports whether all four framework sections are completed
func IsComplete(framework model.Framework) bool {
	for _, fn := range types.AllFrameworkFunctions() {
		if !framework.Section(fn).Completed {
			return false
		}
	}
	return true
}
