package types

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// AssessmentID represents a unique identifier for an assessment
type AssessmentID string

// NewAssessmentID generates a new random assessment ID
func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.NewString())
}

// Validate checks if the AssessmentID is valid
func (a AssessmentID) Validate() error {
	if a == "" {
		return goerr.New("assessment ID cannot be empty")
	}
	if _, err := uuid.Parse(string(a)); err != nil {
		return goerr.Wrap(err, "assessment ID must be a UUID", goerr.V("id", a))
	}
	return nil
}

// String returns the string representation of AssessmentID
func (a AssessmentID) String() string {
	return string(a)
}

// OrganizationID represents a unique identifier for an organization
type OrganizationID string

var orgIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Validate checks if the OrganizationID is valid
func (o OrganizationID) Validate() error {
	if o == "" {
		return goerr.New("organization ID cannot be empty")
	}
	if !orgIDPattern.MatchString(string(o)) {
		return goerr.New("organization ID must be alphanumeric with hyphens or underscores", goerr.V("id", o))
	}
	return nil
}

// String returns the string representation of OrganizationID
func (o OrganizationID) String() string {
	return string(o)
}

// UserID represents a unique identifier for a user
type UserID string

// Validate checks if the UserID is valid
func (u UserID) Validate() error {
	if u == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

// String returns the string representation of UserID
func (u UserID) String() string {
	return string(u)
}
