package model

import (
	"time"

	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// OverviewStats holds the headline counts of an organization's dashboard
type OverviewStats struct {
	TotalAssessments     int `json:"totalAssessments"`
	CompletedAssessments int `json:"completedAssessments"`
	HighRiskItems        int `json:"highRiskItems"`
	AvgComplianceScore   int `json:"avgComplianceScore"`
}

// RecentAssessment is a dashboard projection of a recently updated assessment
type RecentAssessment struct {
	Title     string                 `json:"title"`
	Status    types.AssessmentStatus `json:"status"`
	RiskScore int                    `json:"riskScore"`
	UpdatedAt time.Time              `json:"updatedAt"`
	AISystem  AISystem               `json:"aiSystem"`
}

// TrendPoint is one month of the compliance trend series
type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// Dashboard is the organization-wide aggregate served to the dashboard view
type Dashboard struct {
	OverviewStats         OverviewStats                   `json:"overviewStats"`
	RecentAssessments     []RecentAssessment              `json:"recentAssessments"`
	RiskTrends            []TrendPoint                    `json:"riskTrends"`
	ComplianceByFramework map[types.FrameworkFunction]int `json:"complianceByFramework"`
}

// RiskRegisterRow is one remediation-tracking entry: a subcategory that is
// not yet fully implemented, flattened across assessments and sections.
type RiskRegisterRow struct {
	AssessmentTitle       string               `json:"assessmentTitle"`
	AISystemName          string               `json:"aiSystemName"`
	FrameworkSection      string               `json:"frameworkSection"`
	SubcategoryID         string               `json:"subcategoryId"`
	Outcome               string               `json:"outcome"`
	CurrentImplementation types.Implementation `json:"currentImplementation"`
	RiskLevel             types.RiskLevel      `json:"riskLevel"`
	Assessor              string               `json:"assessor"`
	LastReviewed          time.Time            `json:"lastReviewed"`
	Notes                 string               `json:"notes"`
}
