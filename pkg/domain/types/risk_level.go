package types

// RiskLevel represents the remediation priority of a subcategory that is
// not yet fully implemented
type RiskLevel string

const (
	RiskLevelCritical RiskLevel = "Critical"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelUnknown  RiskLevel = "Unknown"
)

// String returns the string representation of the risk level
func (r RiskLevel) String() string {
	return string(r)
}
