package model

import (
	"strings"

	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// User is an assessor reference. Account lifecycle and authentication are
// owned by the auth collaborator; the core only resolves display identity.
type User struct {
	ID        types.UserID `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
}

// FullName returns the display name of the user
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Organization owns assessments. Each assessment belongs to exactly one
// organization.
type Organization struct {
	ID       types.OrganizationID `json:"id"`
	Name     string               `json:"name"`
	Industry string               `json:"industry,omitempty"`
}
