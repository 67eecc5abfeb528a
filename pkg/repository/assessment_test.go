package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/repository/firestore"
	"github.com/govern-lab/riskframe/pkg/repository/memory"
)

const testOrgID = types.OrganizationID("org-test")

func newMemoryRepo(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newFirestoreRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	repo, err := firestore.New(context.Background(), projectID, databaseID,
		firestore.WithCollectionPrefix("test_"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func newAssessment(title string) *model.Assessment {
	return &model.Assessment{
		Title:          title,
		Description:    "test assessment",
		OrganizationID: testOrgID,
		AssessorID:     "user-1",
		AISystem: model.AISystem{
			Name:      "Support Bot",
			Lifecycle: types.LifecycleOperation,
		},
	}
}

func runAssessmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID, status and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, newAssessment("Chatbot Review"))
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID.String()).NotEqual("")
		gt.Value(t, created.Title).Equal("Chatbot Review")
		gt.Value(t, created.OverallStatus).Equal(types.AssessmentStatusNotStarted)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()
	})

	t.Run("Get retrieves a stored assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, newAssessment("Fraud Model Review"))
		gt.NoError(t, err).Required()

		retrieved, err := repo.Assessment().Get(ctx, testOrgID, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.ID).Equal(created.ID)
		gt.Value(t, retrieved.Title).Equal(created.Title)
		gt.Value(t, retrieved.AISystem.Name).Equal("Support Bot")
	})

	t.Run("Get fails for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Assessment().Get(ctx, testOrgID, types.NewAssessmentID())
		gt.Error(t, err)
	})

	t.Run("Get fails across organizations", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, newAssessment("Org Scoped"))
		gt.NoError(t, err).Required()

		_, err = repo.Assessment().Get(ctx, "org-other", created.ID)
		gt.Error(t, err)
	})

	t.Run("List returns newest first and filters by status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Assessment().Create(ctx, newAssessment("First"))
		gt.NoError(t, err).Required()
		second, err := repo.Assessment().Create(ctx, newAssessment("Second"))
		gt.NoError(t, err).Required()

		second.OverallStatus = types.AssessmentStatusInProgress
		_, err = repo.Assessment().Update(ctx, second)
		gt.NoError(t, err).Required()

		all, err := repo.Assessment().List(ctx, testOrgID, interfaces.ListAssessmentsOption{})
		gt.NoError(t, err).Required()
		gt.Array(t, all).Length(2)

		inProgress, err := repo.Assessment().List(ctx, testOrgID, interfaces.ListAssessmentsOption{
			Status: types.AssessmentStatusInProgress,
		})
		gt.NoError(t, err).Required()
		gt.Array(t, inProgress).Length(1)
		gt.Value(t, inProgress[0].ID).Equal(second.ID)

		_ = first
	})

	t.Run("Update replaces content but preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, newAssessment("Before"))
		gt.NoError(t, err).Required()

		created.Title = "After"
		created.Framework.Govern = model.FrameworkSection{
			Completed: true,
			Subcategories: []model.SubcategoryRecord{
				{
					SubcategoryID:  "GOVERN 1.1",
					Implementation: types.ImplementationFull,
					Responses: []model.QuestionAnswer{
						{QuestionID: "q1", Response: "yes"},
					},
				},
			},
		}

		updated, err := repo.Assessment().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Title).Equal("After")
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
		gt.Array(t, updated.Framework.Govern.Subcategories).Length(1)
		gt.Value(t, updated.Framework.Govern.Subcategories[0].Responses[0].Response).Equal("yes")
	})

	t.Run("Update fails for unknown assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		missing := newAssessment("Ghost")
		missing.ID = types.NewAssessmentID()
		_, err := repo.Assessment().Update(ctx, missing)
		gt.Error(t, err)
	})

	t.Run("Delete removes the assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, newAssessment("Doomed"))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Assessment().Delete(ctx, testOrgID, created.ID)).Required()

		_, err = repo.Assessment().Get(ctx, testOrgID, created.ID)
		gt.Error(t, err)
	})

	t.Run("Delete fails across organizations", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, newAssessment("Protected"))
		gt.NoError(t, err).Required()

		gt.Error(t, repo.Assessment().Delete(ctx, "org-other", created.ID))
	})
}

func TestAssessmentRepository_Memory(t *testing.T) {
	runAssessmentRepositoryTest(t, newMemoryRepo)
}

func TestAssessmentRepository_Firestore(t *testing.T) {
	runAssessmentRepositoryTest(t, newFirestoreRepo)
}
