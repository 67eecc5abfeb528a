package types

import "fmt"

// Lifecycle represents the lifecycle stage of an AI system under assessment
type Lifecycle string

const (
	LifecycleDesign      Lifecycle = "design"
	LifecycleDevelopment Lifecycle = "development"
	LifecycleDeployment  Lifecycle = "deployment"
	LifecycleOperation   Lifecycle = "operation"
	LifecycleRetirement  Lifecycle = "retirement"
)

// IsValid checks if the lifecycle stage is valid
func (l Lifecycle) IsValid() bool {
	switch l {
	case LifecycleDesign,
		LifecycleDevelopment,
		LifecycleDeployment,
		LifecycleOperation,
		LifecycleRetirement:
		return true
	default:
		return false
	}
}

// Normalize returns the lifecycle, treating empty as design
func (l Lifecycle) Normalize() Lifecycle {
	if l == "" {
		return LifecycleDesign
	}
	return l
}

// String returns the string representation of the lifecycle stage
func (l Lifecycle) String() string {
	return string(l)
}

// ParseLifecycle parses a string into a Lifecycle
func ParseLifecycle(s string) (Lifecycle, error) {
	lc := Lifecycle(s)
	if !lc.IsValid() {
		return "", fmt.Errorf("invalid lifecycle stage: %s", s)
	}
	return lc, nil
}
