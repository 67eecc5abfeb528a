package types

import "fmt"

// Implementation represents the four-point ordinal classification of how
// completely a subcategory's controls are in place. It is always derived
// from questionnaire responses, never set directly.
type Implementation string

const (
	ImplementationNotStarted  Implementation = "not-started"
	ImplementationPartial     Implementation = "partially-implemented"
	ImplementationSubstantial Implementation = "substantially-implemented"
	ImplementationFull        Implementation = "fully-implemented"
)

// AllImplementations returns all implementation levels in ascending order
func AllImplementations() []Implementation {
	return []Implementation{
		ImplementationNotStarted,
		ImplementationPartial,
		ImplementationSubstantial,
		ImplementationFull,
	}
}

// IsValid checks if the implementation level is valid
func (i Implementation) IsValid() bool {
	switch i {
	case ImplementationNotStarted,
		ImplementationPartial,
		ImplementationSubstantial,
		ImplementationFull:
		return true
	default:
		return false
	}
}

// Score returns the numeric value of the implementation level used by the
// scoring engine. Unknown values score 0.
func (i Implementation) Score() int {
	switch i {
	case ImplementationNotStarted:
		return 0
	case ImplementationPartial:
		return 25
	case ImplementationSubstantial:
		return 75
	case ImplementationFull:
		return 100
	default:
		return 0
	}
}

// RiskLevel maps the implementation level to a remediation priority for the
// risk register.
func (i Implementation) RiskLevel() RiskLevel {
	switch i {
	case ImplementationNotStarted:
		return RiskLevelCritical
	case ImplementationPartial:
		return RiskLevelHigh
	case ImplementationSubstantial:
		return RiskLevelMedium
	case ImplementationFull:
		return RiskLevelLow
	default:
		return RiskLevelUnknown
	}
}

// String returns the string representation of the implementation level
func (i Implementation) String() string {
	return string(i)
}

// ParseImplementation parses a string into an Implementation
func ParseImplementation(s string) (Implementation, error) {
	impl := Implementation(s)
	if !impl.IsValid() {
		return "", fmt.Errorf("invalid implementation level: %s", s)
	}
	return impl, nil
}
