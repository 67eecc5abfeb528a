package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

type userDocument struct {
	ID        string `firestore:"id"`
	FirstName string `firestore:"first_name"`
	LastName  string `firestore:"last_name"`
	Email     string `firestore:"email"`
}

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{client: client}
}

func (r *userRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_users"
	}
	return "users"
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}

	var userDoc userDocument
	if err := doc.DataTo(&userDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal user", goerr.V("id", id))
	}

	return &model.User{
		ID:        types.UserID(userDoc.ID),
		FirstName: userDoc.FirstName,
		LastName:  userDoc.LastName,
		Email:     userDoc.Email,
	}, nil
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	doc := &userDocument{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	if _, err := r.client.Collection(r.collection()).Doc(doc.ID).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put user", goerr.V("id", doc.ID))
	}
	return nil
}

type organizationDocument struct {
	ID       string `firestore:"id"`
	Name     string `firestore:"name"`
	Industry string `firestore:"industry,omitempty"`
}

type organizationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newOrganizationRepository(client *firestore.Client) *organizationRepository {
	return &organizationRepository{client: client}
}

func (r *organizationRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_organizations"
	}
	return "organizations"
}

func (r *organizationRepository) Get(ctx context.Context, id types.OrganizationID) (*model.Organization, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "organization not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get organization", goerr.V("id", id))
	}

	var orgDoc organizationDocument
	if err := doc.DataTo(&orgDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal organization", goerr.V("id", id))
	}

	return &model.Organization{
		ID:       types.OrganizationID(orgDoc.ID),
		Name:     orgDoc.Name,
		Industry: orgDoc.Industry,
	}, nil
}

func (r *organizationRepository) Put(ctx context.Context, org *model.Organization) error {
	doc := &organizationDocument{
		ID:       org.ID.String(),
		Name:     org.Name,
		Industry: org.Industry,
	}
	if _, err := r.client.Collection(r.collection()).Doc(doc.ID).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put organization", goerr.V("id", doc.ID))
	}
	return nil
}
