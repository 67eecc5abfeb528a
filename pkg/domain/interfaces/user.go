package interfaces

import (
	"context"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// UserRepository resolves assessor references for reporting
type UserRepository interface {
	// Get retrieves a user by ID
	Get(ctx context.Context, id types.UserID) (*model.User, error)

	// Put stores a user, replacing an existing entry with the same ID
	Put(ctx context.Context, user *model.User) error
}

// OrganizationRepository resolves organization references for reporting
type OrganizationRepository interface {
	// Get retrieves an organization by ID
	Get(ctx context.Context, id types.OrganizationID) (*model.Organization, error)

	// Put stores an organization, replacing an existing entry with the same ID
	Put(ctx context.Context, org *model.Organization) error
}
