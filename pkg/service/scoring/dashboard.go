package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

const (
	// highRiskThreshold marks assessments scoring below it as high risk
	highRiskThreshold = 60
	// recentAssessmentLimit caps the dashboard's recent-activity list
	recentAssessmentLimit = 5
	// trendMonths is the length of the compliance trend series
	trendMonths = 6
)

// BuildDashboard aggregates all of an organization's assessments into the
// dashboard view. now anchors the trend series so the result is
// deterministic for a given input.
func BuildDashboard(assessments []*model.Assessment, now time.Time) *model.Dashboard {
	return &model.Dashboard{
		OverviewStats:         buildOverviewStats(assessments),
		RecentAssessments:     buildRecentAssessments(assessments),
		RiskTrends:            buildRiskTrends(assessments, now),
		ComplianceByFramework: buildComplianceByFramework(assessments),
	}
}

func buildOverviewStats(assessments []*model.Assessment) model.OverviewStats {
	stats := model.OverviewStats{
		TotalAssessments: len(assessments),
	}

	totalScore := 0
	for _, a := range assessments {
		if a.OverallStatus == types.AssessmentStatusCompleted {
			stats.CompletedAssessments++
		}
		if a.OverallRiskScore < highRiskThreshold {
			stats.HighRiskItems++
		}
		totalScore += a.OverallRiskScore
	}

	if len(assessments) > 0 {
		stats.AvgComplianceScore = int(math.Round(float64(totalScore) / float64(len(assessments))))
	}
	return stats
}

func buildRecentAssessments(assessments []*model.Assessment) []model.RecentAssessment {
	sorted := make([]*model.Assessment, len(assessments))
	copy(sorted, assessments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})

	if len(sorted) > recentAssessmentLimit {
		sorted = sorted[:recentAssessmentLimit]
	}

	recent := make([]model.RecentAssessment, len(sorted))
	for i, a := range sorted {
		recent[i] = model.RecentAssessment{
			Title:     a.Title,
			Status:    a.OverallStatus,
			RiskScore: a.OverallRiskScore,
			UpdatedAt: a.UpdatedAt,
			AISystem:  a.AISystem,
		}
	}
	return recent
}

// buildRiskTrends rolls current scores up into a monthly series over the
// last trendMonths months, bucketing each assessment by the month it was
// last updated. There is no persisted score history, so months without
// activity report zero rather than fabricated values.
func buildRiskTrends(assessments []*model.Assessment, now time.Time) []model.TrendPoint {
	type bucket struct {
		total int
		count int
	}
	buckets := make(map[string]*bucket, trendMonths)

	// Anchor to the first of the month: AddDate from a month-end date can
	// normalize into a neighboring month and duplicate bucket labels.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	trends := make([]model.TrendPoint, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0).Format("2006-01")
		buckets[month] = &bucket{}
		trends = append(trends, model.TrendPoint{Date: month})
	}

	for _, a := range assessments {
		month := a.UpdatedAt.Format("2006-01")
		if b, ok := buckets[month]; ok {
			b.total += a.OverallRiskScore
			b.count++
		}
	}

	for i := range trends {
		if b := buckets[trends[i].Date]; b.count > 0 {
			trends[i].Score = int(math.Round(float64(b.total) / float64(b.count)))
		}
	}
	return trends
}

// buildComplianceByFramework computes the mean section score per framework
// function across assessments. Only assessments whose section has
// subcategories contribute to that function's mean.
func buildComplianceByFramework(assessments []*model.Assessment) map[types.FrameworkFunction]int {
	result := make(map[types.FrameworkFunction]int, len(types.AllFrameworkFunctions()))

	for _, fn := range types.AllFrameworkFunctions() {
		total := 0.0
		count := 0
		for _, a := range assessments {
			section := a.Framework.Section(fn)
			if len(section.Subcategories) == 0 {
				continue
			}
			total += SectionScore(section)
			count++
		}

		if count > 0 {
			result[fn] = int(math.Round(total / float64(count)))
		} else {
			result[fn] = 0
		}
	}
	return result
}
