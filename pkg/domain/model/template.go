package model

import (
	"time"

	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// Question is a single questionnaire item of a risk template. Weight is
// declared per question but not consumed by the scoring formula; it is kept
// for catalog fidelity and future weighted scoring.
type Question struct {
	ID       string             `json:"id"`
	Text     string             `json:"text"`
	Type     types.QuestionType `json:"type"`
	Options  []string           `json:"options,omitempty"`
	Required bool               `json:"required"`
	HelpText string             `json:"helpText,omitempty"`
	Weight   int                `json:"weight"`
}

// RiskTemplate is an immutable catalog entry defining the questionnaire for
// one framework subcategory. SubcategoryID is unique across active templates.
type RiskTemplate struct {
	FrameworkFunction types.FrameworkFunction `json:"frameworkFunction"`
	Category          string                  `json:"category"`
	SubcategoryID     string                  `json:"subcategoryId"`
	Outcome           string                  `json:"outcome"`
	Description       string                  `json:"description,omitempty"`
	Questions         []Question              `json:"questions"`
	IsActive          bool                    `json:"isActive"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

// Clone returns a deep copy of the template
func (t *RiskTemplate) Clone() *RiskTemplate {
	if t == nil {
		return nil
	}
	copied := *t
	if t.Questions != nil {
		copied.Questions = make([]Question, len(t.Questions))
		for i, q := range t.Questions {
			copied.Questions[i] = q
			copied.Questions[i].Options = append([]string(nil), q.Options...)
		}
	}
	return &copied
}
