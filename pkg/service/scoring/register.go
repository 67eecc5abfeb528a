package scoring

import (
	"strings"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// BuildRiskRegister extracts remediation rows from the given assessments:
// every subcategory that is not yet fully implemented becomes one row, in
// assessment then section then subcategory order. assessors resolves the
// assessor display name per assessment; a missing entry leaves the column
// empty.
func BuildRiskRegister(assessments []*model.Assessment, assessors map[types.UserID]*model.User) []model.RiskRegisterRow {
	var rows []model.RiskRegisterRow

	for _, a := range assessments {
		assessorName := ""
		if user, ok := assessors[a.AssessorID]; ok {
			assessorName = user.FullName()
		}

		for _, fn := range types.AllFrameworkFunctions() {
			for _, sub := range a.Framework.Section(fn).Subcategories {
				if sub.Implementation == types.ImplementationFull {
					continue
				}

				rows = append(rows, model.RiskRegisterRow{
					AssessmentTitle:       a.Title,
					AISystemName:          a.AISystem.Name,
					FrameworkSection:      strings.ToUpper(fn.String()),
					SubcategoryID:         sub.SubcategoryID,
					Outcome:               sub.Outcome,
					CurrentImplementation: sub.Implementation,
					RiskLevel:             sub.Implementation.RiskLevel(),
					Assessor:              assessorName,
					LastReviewed:          sub.LastReviewed,
					Notes:                 sub.Notes,
				})
			}
		}
	}
	return rows
}
