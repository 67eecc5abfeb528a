package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/service/report"
)

func testInput() report.Input {
	created := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	return report.Input{
		Assessment: &model.Assessment{
			ID:          "a1b2c3",
			Title:       "Support Chatbot Review",
			Description: "Annual compliance review",
			AISystem: model.AISystem{
				Name:      "Support Bot",
				Lifecycle: types.LifecycleOperation,
			},
			OverallStatus:    types.AssessmentStatusInProgress,
			OverallRiskScore: 72,
			Framework: model.Framework{
				Govern: model.FrameworkSection{
					Completed: true,
					Subcategories: []model.SubcategoryRecord{
						{
							SubcategoryID:  "GOVERN 1.1",
							Outcome:        "Legal and regulatory requirements are understood",
							Implementation: types.ImplementationSubstantial,
							Notes:          "Regulatory register maintained in legal wiki, reviewed quarterly by counsel and engineering leads together.",
							LastReviewed:   updated,
						},
					},
				},
				Map: model.FrameworkSection{
					Subcategories: []model.SubcategoryRecord{
						{
							SubcategoryID:  "MAP 1.1",
							Outcome:        "Deployment context is documented",
							Implementation: types.ImplementationPartial,
							LastReviewed:   updated,
						},
					},
				},
			},
			CreatedAt: created,
			UpdatedAt: updated,
		},
		Assessor: &model.User{
			FirstName: "Dana",
			LastName:  "Reyes",
			Email:     "dana@example.com",
		},
		Organization: &model.Organization{
			Name:     "Acme Insurance",
			Industry: "Insurance",
		},
		GeneratedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
}

func TestFilename(t *testing.T) {
	gt.Value(t, report.Filename("Support Chatbot Review", types.ReportFormatPDF)).
		Equal("compliance-report-support-chatbot-review.pdf")
	gt.Value(t, report.Filename("Q3  Audit", types.ReportFormatExcel)).
		Equal("compliance-report-q3-audit.xlsx")
	gt.Value(t, report.Filename("single", types.ReportFormatJSON)).
		Equal("compliance-report-single.json")
}

func TestRenderJSON(t *testing.T) {
	data, err := report.Render(testInput(), types.ReportFormatJSON)
	gt.NoError(t, err).Required()

	var snapshot struct {
		ReportMetadata struct {
			GeneratedBy string `json:"generatedBy"`
			ReportType  string `json:"reportType"`
		} `json:"reportMetadata"`
		Assessment struct {
			Title            string `json:"title"`
			OverallRiskScore int    `json:"overallRiskScore"`
			Assessor         struct {
				Name string `json:"name"`
			} `json:"assessor"`
			Organization struct {
				Name string `json:"name"`
			} `json:"organization"`
			Framework model.Framework `json:"framework"`
		} `json:"assessment"`
	}
	gt.NoError(t, json.Unmarshal(data, &snapshot)).Required()

	gt.Value(t, snapshot.ReportMetadata.ReportType).Equal("NIST AI RMF Compliance Report")
	gt.Value(t, snapshot.ReportMetadata.GeneratedBy).Equal("dana@example.com")
	gt.Value(t, snapshot.Assessment.Title).Equal("Support Chatbot Review")
	gt.Value(t, snapshot.Assessment.OverallRiskScore).Equal(72)
	gt.Value(t, snapshot.Assessment.Assessor.Name).Equal("Dana Reyes")
	gt.Value(t, snapshot.Assessment.Organization.Name).Equal("Acme Insurance")

	// framework content survives the export verbatim
	gt.Array(t, snapshot.Assessment.Framework.Govern.Subcategories).Length(1)
	gt.Value(t, snapshot.Assessment.Framework.Govern.Subcategories[0].SubcategoryID).Equal("GOVERN 1.1")
	gt.Value(t, snapshot.Assessment.Framework.Map.Subcategories[0].Implementation).
		Equal(types.ImplementationPartial)
}

func TestRenderPDF(t *testing.T) {
	data, err := report.Render(testInput(), types.ReportFormatPDF)
	gt.NoError(t, err).Required()

	gt.Bool(t, bytes.HasPrefix(data, []byte("%PDF"))).True()
}

func TestRenderExcel(t *testing.T) {
	data, err := report.Render(testInput(), types.ReportFormatExcel)
	gt.NoError(t, err).Required()

	// XLSX workbooks are zip archives
	gt.Bool(t, bytes.HasPrefix(data, []byte("PK"))).True()
}

func TestRenderRequiresAssessment(t *testing.T) {
	_, err := report.Render(report.Input{}, types.ReportFormatJSON)
	gt.Error(t, err)
}

func TestRenderRiskRegister(t *testing.T) {
	rows := []model.RiskRegisterRow{
		{
			AssessmentTitle:       "Support Chatbot Review",
			AISystemName:          "Support Bot",
			FrameworkSection:      "GOVERN",
			SubcategoryID:         "GOVERN 1.1",
			CurrentImplementation: types.ImplementationPartial,
			RiskLevel:             types.RiskLevelHigh,
			Assessor:              "Dana Reyes",
		},
	}

	data, err := report.RenderRiskRegister(rows)
	gt.NoError(t, err).Required()
	gt.Bool(t, bytes.HasPrefix(data, []byte("PK"))).True()
}
