// Package memory provides an in-memory repository backend for development
// and tests. All data is lost on process exit.
package memory

import (
	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = interfaces.ErrNotFound

type Memory struct {
	assessment   *assessmentRepository
	template     *templateRepository
	user         *userRepository
	organization *organizationRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		assessment:   newAssessmentRepository(),
		template:     newTemplateRepository(),
		user:         newUserRepository(),
		organization: newOrganizationRepository(),
	}
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) Template() interfaces.TemplateRepository {
	return m.template
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Organization() interfaces.OrganizationRepository {
	return m.organization
}

func (m *Memory) Close() error {
	return nil
}
