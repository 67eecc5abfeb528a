package report

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// jsonReport is the snapshot encoding. The framework structure is carried
// verbatim so the export round-trips losslessly.
type jsonReport struct {
	ReportMetadata jsonReportMetadata `json:"reportMetadata"`
	Assessment     jsonAssessment     `json:"assessment"`
}

type jsonReportMetadata struct {
	GeneratedAt time.Time `json:"generatedAt"`
	GeneratedBy string    `json:"generatedBy"`
	ReportType  string    `json:"reportType"`
}

type jsonAssessment struct {
	ID               types.AssessmentID     `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	AISystem         model.AISystem         `json:"aiSystem"`
	OverallStatus    types.AssessmentStatus `json:"overallStatus"`
	OverallRiskScore int                    `json:"overallRiskScore"`
	Assessor         jsonAssessor           `json:"assessor"`
	Organization     jsonOrganization       `json:"organization"`
	Framework        model.Framework        `json:"framework"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
	CompletedAt      *time.Time             `json:"completedAt,omitempty"`
}

type jsonAssessor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type jsonOrganization struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

func renderJSON(in Input) ([]byte, error) {
	a := in.Assessment
	snapshot := jsonReport{
		ReportMetadata: jsonReportMetadata{
			GeneratedAt: in.GeneratedAt,
			GeneratedBy: in.Assessor.Email,
			ReportType:  reportType,
		},
		Assessment: jsonAssessment{
			ID:               a.ID,
			Title:            a.Title,
			Description:      a.Description,
			AISystem:         a.AISystem,
			OverallStatus:    a.OverallStatus,
			OverallRiskScore: a.OverallRiskScore,
			Assessor: jsonAssessor{
				Name:  in.Assessor.FullName(),
				Email: in.Assessor.Email,
			},
			Organization: jsonOrganization{
				Name:     in.Organization.Name,
				Industry: in.Organization.Industry,
			},
			Framework:   a.Framework,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
			CompletedAt: a.CompletedAt,
		},
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode JSON report")
	}
	return data, nil
}
