package usecase

import (
	"context"
	"time"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/service/scoring"
	"github.com/m-mizutani/goerr/v2"
)

type AssessmentUseCase struct {
	repo  interfaces.Repository
	clock func() time.Time
}

func NewAssessmentUseCase(repo interfaces.Repository, clock func() time.Time) *AssessmentUseCase {
	return &AssessmentUseCase{
		repo:  repo,
		clock: clock,
	}
}

// CreateAssessmentInput carries the caller-supplied fields of a new
// assessment. Identity fields come from the request context, never the body.
type CreateAssessmentInput struct {
	Title       string
	Description string
	AISystem    model.AISystem
	DueDate     *time.Time
}

func (uc *AssessmentUseCase) Create(ctx context.Context, orgID types.OrganizationID, assessorID types.UserID, input CreateAssessmentInput) (*model.Assessment, error) {
	if err := orgID.Validate(); err != nil {
		return nil, err
	}
	if err := assessorID.Validate(); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, goerr.Wrap(ErrTitleRequired, "failed to create assessment")
	}
	if input.AISystem.Name == "" {
		return nil, goerr.Wrap(ErrSystemNameRequired, "failed to create assessment")
	}

	assessment := &model.Assessment{
		Title:          input.Title,
		Description:    input.Description,
		OrganizationID: orgID,
		AssessorID:     assessorID,
		AISystem:       input.AISystem,
		DueDate:        input.DueDate,
	}

	created, err := uc.repo.Assessment().Create(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment")
	}
	return created, nil
}

func (uc *AssessmentUseCase) Get(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) (*model.Assessment, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, orgID, id)
	if err != nil {
		return nil, goerr.Wrap(notFoundAs(err, ErrAssessmentNotFound), "failed to get assessment",
			goerr.V(AssessmentIDKey, id))
	}
	return assessment, nil
}

func (uc *AssessmentUseCase) List(ctx context.Context, orgID types.OrganizationID, status string) ([]*model.Assessment, error) {
	opt := interfaces.ListAssessmentsOption{}
	if status != "" {
		parsed, err := types.ParseAssessmentStatus(status)
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidStatus, "failed to list assessments",
				goerr.V("status", status))
		}
		opt.Status = parsed
	}

	assessments, err := uc.repo.Assessment().List(ctx, orgID, opt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}
	return assessments, nil
}

// UpdateAssessmentInput carries partial metadata updates. Nil fields are
// left untouched. Framework content is updated only through
// UpdateFrameworkSection.
type UpdateAssessmentInput struct {
	Title       *string
	Description *string
	AISystem    *model.AISystem
	DueDate     *time.Time
	Status      *string
}

func (uc *AssessmentUseCase) Update(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID, input UpdateAssessmentInput) (*model.Assessment, error) {
	existing, err := uc.repo.Assessment().Get(ctx, orgID, id)
	if err != nil {
		return nil, goerr.Wrap(notFoundAs(err, ErrAssessmentNotFound), "failed to get assessment for update",
			goerr.V(AssessmentIDKey, id))
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, goerr.Wrap(ErrTitleRequired, "failed to update assessment",
				goerr.V(AssessmentIDKey, id))
		}
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.AISystem != nil {
		if input.AISystem.Name == "" {
			return nil, goerr.Wrap(ErrSystemNameRequired, "failed to update assessment",
				goerr.V(AssessmentIDKey, id))
		}
		existing.AISystem = *input.AISystem
	}
	if input.DueDate != nil {
		existing.DueDate = input.DueDate
	}
	if input.Status != nil {
		parsed, parseErr := types.ParseAssessmentStatus(*input.Status)
		if parseErr != nil {
			return nil, goerr.Wrap(ErrInvalidStatus, "failed to update assessment",
				goerr.V(AssessmentIDKey, id),
				goerr.V("status", *input.Status))
		}
		existing.OverallStatus = parsed
	}

	updated, err := uc.repo.Assessment().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment",
			goerr.V(AssessmentIDKey, id))
	}
	return updated, nil
}

func (uc *AssessmentUseCase) Delete(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) error {
	if _, err := uc.repo.Assessment().Get(ctx, orgID, id); err != nil {
		return goerr.Wrap(notFoundAs(err, ErrAssessmentNotFound), "failed to get assessment for deletion",
			goerr.V(AssessmentIDKey, id))
	}
	if err := uc.repo.Assessment().Delete(ctx, orgID, id); err != nil {
		return goerr.Wrap(err, "failed to delete assessment",
			goerr.V(AssessmentIDKey, id))
	}
	return nil
}

// SubcategoryInput is one subcategory's submission from the questionnaire.
// The implementation level is always derived server-side from Responses.
type SubcategoryInput struct {
	SubcategoryID string
	Outcome       string
	Responses     []model.QuestionAnswer
	Notes         string
}

// SectionUpdateInput replaces the full content of one framework section
type SectionUpdateInput struct {
	Completed     bool
	Subcategories []SubcategoryInput
}

// UpdateFrameworkSection replaces one section of the assessment framework,
// derives each subcategory's implementation level from its responses, and
// recomputes the overall risk score. When all four sections are completed
// the assessment transitions to completed; the transition is one-way.
func (uc *AssessmentUseCase) UpdateFrameworkSection(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID, section string, input SectionUpdateInput) (*model.Assessment, error) {
	fn, err := types.ParseFrameworkFunction(section)
	if err != nil {
		return nil, goerr.Wrap(ErrUnknownSection, "failed to update framework section",
			goerr.V(AssessmentIDKey, id),
			goerr.V(SectionKey, section))
	}

	assessment, err := uc.repo.Assessment().Get(ctx, orgID, id)
	if err != nil {
		return nil, goerr.Wrap(notFoundAs(err, ErrAssessmentNotFound), "failed to get assessment for section update",
			goerr.V(AssessmentIDKey, id))
	}

	now := uc.clock()
	records := make([]model.SubcategoryRecord, 0, len(input.Subcategories))
	for _, sub := range input.Subcategories {
		implementation, deriveErr := scoring.DeriveImplementation(sub.Responses)
		if deriveErr != nil {
			return nil, goerr.Wrap(ErrEmptyResponses, "failed to derive implementation level",
				goerr.V(AssessmentIDKey, id),
				goerr.V(SectionKey, section),
				goerr.V(SubcategoryIDKey, sub.SubcategoryID))
		}
		records = append(records, model.SubcategoryRecord{
			SubcategoryID:  sub.SubcategoryID,
			Outcome:        sub.Outcome,
			Implementation: implementation,
			Responses:      sub.Responses,
			Notes:          sub.Notes,
			LastReviewed:   now,
		})
	}

	assessment.Framework.SetSection(fn, model.FrameworkSection{
		Completed:     input.Completed,
		Subcategories: records,
	})
	assessment.OverallRiskScore = scoring.OverallScore(assessment.Framework)

	if scoring.IsComplete(assessment.Framework) && assessment.OverallStatus != types.AssessmentStatusCompleted {
		assessment.OverallStatus = types.AssessmentStatusCompleted
		completedAt := now
		assessment.CompletedAt = &completedAt
	}

	updated, err := uc.repo.Assessment().Update(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update framework section",
			goerr.V(AssessmentIDKey, id),
			goerr.V(SectionKey, section))
	}
	return updated, nil
}
