package types

import "fmt"

// AssessmentStatus represents the overall status of an assessment
type AssessmentStatus string

const (
	AssessmentStatusNotStarted  AssessmentStatus = "not-started"
	AssessmentStatusInProgress  AssessmentStatus = "in-progress"
	AssessmentStatusCompleted   AssessmentStatus = "completed"
	AssessmentStatusNeedsReview AssessmentStatus = "needs-review"
)

// AllAssessmentStatuses returns all valid assessment statuses
func AllAssessmentStatuses() []AssessmentStatus {
	return []AssessmentStatus{
		AssessmentStatusNotStarted,
		AssessmentStatusInProgress,
		AssessmentStatusCompleted,
		AssessmentStatusNeedsReview,
	}
}

// IsValid checks if the assessment status is valid
func (s AssessmentStatus) IsValid() bool {
	switch s {
	case AssessmentStatusNotStarted,
		AssessmentStatusInProgress,
		AssessmentStatusCompleted,
		AssessmentStatusNeedsReview:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as not-started for newly
// created assessments.
func (s AssessmentStatus) Normalize() AssessmentStatus {
	if s == "" {
		return AssessmentStatusNotStarted
	}
	return s
}

// String returns the string representation of the assessment status
func (s AssessmentStatus) String() string {
	return string(s)
}

// ParseAssessmentStatus parses a string into an AssessmentStatus
func ParseAssessmentStatus(s string) (AssessmentStatus, error) {
	status := AssessmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid assessment status: %s", s)
	}
	return status, nil
}
