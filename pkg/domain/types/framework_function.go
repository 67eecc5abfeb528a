package types

import "fmt"

// FrameworkFunction represents one of the four NIST AI RMF pillars
type FrameworkFunction string

const (
	FunctionGovern  FrameworkFunction = "govern"
	FunctionMap     FrameworkFunction = "map"
	FunctionMeasure FrameworkFunction = "measure"
	FunctionManage  FrameworkFunction = "manage"
)

// AllFrameworkFunctions returns all framework functions in canonical order
func AllFrameworkFunctions() []FrameworkFunction {
	return []FrameworkFunction{
		FunctionGovern,
		FunctionMap,
		FunctionMeasure,
		FunctionManage,
	}
}

// IsValid checks if the framework function is valid
func (f FrameworkFunction) IsValid() bool {
	switch f {
	case FunctionGovern,
		FunctionMap,
		FunctionMeasure,
		FunctionManage:
		return true
	default:
		return false
	}
}

// String returns the string representation of the framework function
func (f FrameworkFunction) String() string {
	return string(f)
}

// ParseFrameworkFunction parses a string into a FrameworkFunction
func ParseFrameworkFunction(s string) (FrameworkFunction, error) {
	fn := FrameworkFunction(s)
	if !fn.IsValid() {
		return "", fmt.Errorf("invalid framework function: %s", s)
	}
	return fn, nil
}
