package usecase

import (
	"errors"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
)

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrTemplateNotFound   = errors.New("template not found")

	// Validation errors
	ErrUnknownSection     = errors.New("unknown framework section")
	ErrEmptyResponses     = errors.New("subcategory has no responses")
	ErrUnsupportedFormat  = errors.New("unsupported report format")
	ErrInvalidStatus      = errors.New("invalid assessment status")
	ErrTitleRequired      = errors.New("assessment title is required")
	ErrSystemNameRequired = errors.New("AI system name is required")
)

// notFoundAs substitutes the given sentinel when the repository reports a
// missing entity. Infrastructure failures pass through untouched so they
// surface as internal errors instead of not-found.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return sentinel
	}
	return err
}

// Context keys for error values
const (
	AssessmentIDKey  = "assessment_id"
	SectionKey       = "section"
	SubcategoryIDKey = "subcategory_id"
	FormatKey        = "format"
)
