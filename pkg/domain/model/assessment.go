package model

import (
	"time"

	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// FileRef points at an uploaded evidence file. Upload and storage are
// handled by the document collaborator; the core only carries the reference.
type FileRef struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

// QuestionAnswer is a single raw answer produced by the questionnaire UI
type QuestionAnswer struct {
	QuestionID string    `json:"questionId"`
	Response   string    `json:"response"`
	Files      []FileRef `json:"files,omitempty"`
}

// SubcategoryRecord holds the assessed state of one framework subcategory.
// Implementation is derived from Responses by the scoring service and must
// never be set directly by a caller.
type SubcategoryRecord struct {
	SubcategoryID  string               `json:"subcategoryId"`
	Outcome        string               `json:"outcome"`
	Implementation types.Implementation `json:"implementation"`
	Responses      []QuestionAnswer     `json:"responses,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	LastReviewed   time.Time            `json:"lastReviewed"`
}

// FrameworkSection holds the assessed state of one framework function
type FrameworkSection struct {
	Completed     bool                `json:"completed"`
	Subcategories []SubcategoryRecord `json:"subcategories"`
}

// Framework holds the four NIST AI RMF sections of an assessment
type Framework struct {
	Govern  FrameworkSection `json:"govern"`
	Map     FrameworkSection `json:"map"`
	Measure FrameworkSection `json:"measure"`
	Manage  FrameworkSection `json:"manage"`
}

// Section returns the section for the given framework function
func (f *Framework) Section(fn types.FrameworkFunction) FrameworkSection {
	switch fn {
	case types.FunctionGovern:
		return f.Govern
	case types.FunctionMap:
		return f.Map
	case types.FunctionMeasure:
		return f.Measure
	case types.FunctionManage:
		return f.Manage
	default:
		return FrameworkSection{}
	}
}

// SetSection replaces the section for the given framework function
func (f *Framework) SetSection(fn types.FrameworkFunction, section FrameworkSection) {
	switch fn {
	case types.FunctionGovern:
		f.Govern = section
	case types.FunctionMap:
		f.Map = section
	case types.FunctionMeasure:
		f.Measure = section
	case types.FunctionManage:
		f.Manage = section
	}
}

// AISystem describes the AI system under assessment
type AISystem struct {
	Name                  string          `json:"name"`
	Description           string          `json:"description,omitempty"`
	Purpose               string          `json:"purpose,omitempty"`
	DataTypes             []string        `json:"dataTypes,omitempty"`
	DeploymentEnvironment string          `json:"deploymentEnvironment,omitempty"`
	Stakeholders          []string        `json:"stakeholders,omitempty"`
	Lifecycle             types.Lifecycle `json:"lifecycle"`
}

// Assessment is the root aggregate: one organization's assessment of one AI
// system against the NIST AI RMF. OverallRiskScore and OverallStatus are
// derived from Framework by the scoring service after every section update.
type Assessment struct {
	ID               types.AssessmentID     `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description,omitempty"`
	OrganizationID   types.OrganizationID   `json:"organizationId"`
	AssessorID       types.UserID           `json:"assessorId"`
	AISystem         AISystem               `json:"aiSystem"`
	Framework        Framework              `json:"framework"`
	OverallStatus    types.AssessmentStatus `json:"overallStatus"`
	OverallRiskScore int                    `json:"overallRiskScore"`
	DueDate          *time.Time             `json:"dueDate,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
	CompletedAt      *time.Time             `json:"completedAt,omitempty"`
}

// Clone returns a deep copy of the assessment
func (a *Assessment) Clone() *Assessment {
	if a == nil {
		return nil
	}
	copied := *a
	copied.AISystem.DataTypes = append([]string(nil), a.AISystem.DataTypes...)
	copied.AISystem.Stakeholders = append([]string(nil), a.AISystem.Stakeholders...)
	copied.Framework = *a.Framework.Clone()
	if a.DueDate != nil {
		due := *a.DueDate
		copied.DueDate = &due
	}
	if a.CompletedAt != nil {
		completed := *a.CompletedAt
		copied.CompletedAt = &completed
	}
	return &copied
}

// Clone returns a deep copy of the framework
func (f *Framework) Clone() *Framework {
	return &Framework{
		Govern:  f.Govern.clone(),
		Map:     f.Map.clone(),
		Measure: f.Measure.clone(),
		Manage:  f.Manage.clone(),
	}
}

func (s FrameworkSection) clone() FrameworkSection {
	copied := FrameworkSection{Completed: s.Completed}
	if s.Subcategories != nil {
		copied.Subcategories = make([]SubcategoryRecord, len(s.Subcategories))
		for i, sub := range s.Subcategories {
			copied.Subcategories[i] = sub.clone()
		}
	}
	return copied
}

func (s SubcategoryRecord) clone() SubcategoryRecord {
	copied := s
	if s.Responses != nil {
		copied.Responses = make([]QuestionAnswer, len(s.Responses))
		for i, resp := range s.Responses {
			copied.Responses[i] = resp
			copied.Responses[i].Files = append([]FileRef(nil), resp.Files...)
		}
	}
	return copied
}
