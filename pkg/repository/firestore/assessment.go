package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

type fileRefDocument struct {
	ID       string `firestore:"id"`
	Filename string `firestore:"filename"`
}

type questionAnswerDocument struct {
	QuestionID string            `firestore:"question_id"`
	Response   string            `firestore:"response"`
	Files      []fileRefDocument `firestore:"files,omitempty"`
}

type subcategoryDocument struct {
	SubcategoryID  string                   `firestore:"subcategory_id"`
	Outcome        string                   `firestore:"outcome"`
	Implementation string                   `firestore:"implementation"`
	Responses      []questionAnswerDocument `firestore:"responses,omitempty"`
	Notes          string                   `firestore:"notes,omitempty"`
	LastReviewed   time.Time                `firestore:"last_reviewed"`
}

type sectionDocument struct {
	Completed     bool                  `firestore:"completed"`
	Subcategories []subcategoryDocument `firestore:"subcategories,omitempty"`
}

type frameworkDocument struct {
	Govern  sectionDocument `firestore:"govern"`
	Map     sectionDocument `firestore:"map"`
	Measure sectionDocument `firestore:"measure"`
	Manage  sectionDocument `firestore:"manage"`
}

type aiSystemDocument struct {
	Name                  string   `firestore:"name"`
	Description           string   `firestore:"description,omitempty"`
	Purpose               string   `firestore:"purpose,omitempty"`
	DataTypes             []string `firestore:"data_types,omitempty"`
	DeploymentEnvironment string   `firestore:"deployment_environment,omitempty"`
	Stakeholders          []string `firestore:"stakeholders,omitempty"`
	Lifecycle             string   `firestore:"lifecycle"`
}

type assessmentDocument struct {
	ID               string            `firestore:"id"`
	Title            string            `firestore:"title"`
	Description      string            `firestore:"description,omitempty"`
	OrganizationID   string            `firestore:"organization_id"`
	AssessorID       string            `firestore:"assessor_id"`
	AISystem         aiSystemDocument  `firestore:"ai_system"`
	Framework        frameworkDocument `firestore:"framework"`
	OverallStatus    string            `firestore:"overall_status"`
	OverallRiskScore int               `firestore:"overall_risk_score"`
	DueDate          *time.Time        `firestore:"due_date,omitempty"`
	CreatedAt        time.Time         `firestore:"created_at"`
	UpdatedAt        time.Time         `firestore:"updated_at"`
	CompletedAt      *time.Time        `firestore:"completed_at,omitempty"`
}

func toAssessmentDocument(a *model.Assessment) *assessmentDocument {
	return &assessmentDocument{
		ID:               a.ID.String(),
		Title:            a.Title,
		Description:      a.Description,
		OrganizationID:   a.OrganizationID.String(),
		AssessorID:       a.AssessorID.String(),
		AISystem:         toAISystemDocument(a.AISystem),
		Framework:        toFrameworkDocument(a.Framework),
		OverallStatus:    a.OverallStatus.String(),
		OverallRiskScore: a.OverallRiskScore,
		DueDate:          a.DueDate,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		CompletedAt:      a.CompletedAt,
	}
}

func (d *assessmentDocument) toModel() *model.Assessment {
	return &model.Assessment{
		ID:               types.AssessmentID(d.ID),
		Title:            d.Title,
		Description:      d.Description,
		OrganizationID:   types.OrganizationID(d.OrganizationID),
		AssessorID:       types.UserID(d.AssessorID),
		AISystem:         d.AISystem.toModel(),
		Framework:        d.Framework.toModel(),
		OverallStatus:    types.AssessmentStatus(d.OverallStatus),
		OverallRiskScore: d.OverallRiskScore,
		DueDate:          d.DueDate,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		CompletedAt:      d.CompletedAt,
	}
}

func toAISystemDocument(s model.AISystem) aiSystemDocument {
	return aiSystemDocument{
		Name:                  s.Name,
		Description:           s.Description,
		Purpose:               s.Purpose,
		DataTypes:             s.DataTypes,
		DeploymentEnvironment: s.DeploymentEnvironment,
		Stakeholders:          s.Stakeholders,
		Lifecycle:             s.Lifecycle.String(),
	}
}

func (d aiSystemDocument) toModel() model.AISystem {
	return model.AISystem{
		Name:                  d.Name,
		Description:           d.Description,
		Purpose:               d.Purpose,
		DataTypes:             d.DataTypes,
		DeploymentEnvironment: d.DeploymentEnvironment,
		Stakeholders:          d.Stakeholders,
		Lifecycle:             types.Lifecycle(d.Lifecycle),
	}
}

func toFrameworkDocument(f model.Framework) frameworkDocument {
	return frameworkDocument{
		Govern:  toSectionDocument(f.Govern),
		Map:     toSectionDocument(f.Map),
		Measure: toSectionDocument(f.Measure),
		Manage:  toSectionDocument(f.Manage),
	}
}

func (d frameworkDocument) toModel() model.Framework {
	return model.Framework{
		Govern:  d.Govern.toModel(),
		Map:     d.Map.toModel(),
		Measure: d.Measure.toModel(),
		Manage:  d.Manage.toModel(),
	}
}

func toSectionDocument(s model.FrameworkSection) sectionDocument {
	doc := sectionDocument{Completed: s.Completed}
	for _, sub := range s.Subcategories {
		responses := make([]questionAnswerDocument, 0, len(sub.Responses))
		for _, resp := range sub.Responses {
			files := make([]fileRefDocument, 0, len(resp.Files))
			for _, f := range resp.Files {
				files = append(files, fileRefDocument(f))
			}
			responses = append(responses, questionAnswerDocument{
				QuestionID: resp.QuestionID,
				Response:   resp.Response,
				Files:      files,
			})
		}
		doc.Subcategories = append(doc.Subcategories, subcategoryDocument{
			SubcategoryID:  sub.SubcategoryID,
			Outcome:        sub.Outcome,
			Implementation: sub.Implementation.String(),
			Responses:      responses,
			Notes:          sub.Notes,
			LastReviewed:   sub.LastReviewed,
		})
	}
	return doc
}

func (d sectionDocument) toModel() model.FrameworkSection {
	section := model.FrameworkSection{Completed: d.Completed}
	for _, sub := range d.Subcategories {
		responses := make([]model.QuestionAnswer, 0, len(sub.Responses))
		for _, resp := range sub.Responses {
			files := make([]model.FileRef, 0, len(resp.Files))
			for _, f := range resp.Files {
				files = append(files, model.FileRef(f))
			}
			responses = append(responses, model.QuestionAnswer{
				QuestionID: resp.QuestionID,
				Response:   resp.Response,
				Files:      files,
			})
		}
		section.Subcategories = append(section.Subcategories, model.SubcategoryRecord{
			SubcategoryID:  sub.SubcategoryID,
			Outcome:        sub.Outcome,
			Implementation: types.Implementation(sub.Implementation),
			Responses:      responses,
			Notes:          sub.Notes,
			LastReviewed:   sub.LastReviewed,
		})
	}
	return section
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{client: client}
}

func (r *assessmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessments"
	}
	return "assessments"
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	now := time.Now().UTC()
	created := assessment.Clone()
	created.ID = types.NewAssessmentID()
	created.OverallStatus = created.OverallStatus.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := toAssessmentDocument(created)
	if _, err := r.client.Collection(r.collection()).Doc(doc.ID).Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment", goerr.V("id", doc.ID))
	}

	return created, nil
}

func (r *assessmentRepository) Get(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) (*model.Assessment, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	var assessmentDoc assessmentDocument
	if err := doc.DataTo(&assessmentDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("id", id))
	}

	if assessmentDoc.OrganizationID != orgID.String() {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id), goerr.V("org_id", orgID))
	}

	return assessmentDoc.toModel(), nil
}

func (r *assessmentRepository) List(ctx context.Context, orgID types.OrganizationID, opt interfaces.ListAssessmentsOption) ([]*model.Assessment, error) {
	query := r.client.Collection(r.collection()).
		Where("organization_id", "==", orgID.String())
	if opt.Status != "" {
		query = query.Where("overall_status", "==", opt.Status.String())
	}

	iter := query.OrderBy("created_at", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var assessments []*model.Assessment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments", goerr.V("org_id", orgID))
		}

		var assessmentDoc assessmentDocument
		if err := doc.DataTo(&assessmentDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("doc_id", doc.Ref.ID))
		}
		assessments = append(assessments, assessmentDoc.toModel())
	}

	return assessments, nil
}

func (r *assessmentRepository) Update(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	existing, err := r.Get(ctx, assessment.OrganizationID, assessment.ID)
	if err != nil {
		return nil, err
	}

	updated := assessment.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	doc := toAssessmentDocument(updated)
	if _, err := r.client.Collection(r.collection()).Doc(doc.ID).Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment", goerr.V("id", doc.ID))
	}

	return updated, nil
}

func (r *assessmentRepository) Delete(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID) error {
	if _, err := r.Get(ctx, orgID, id); err != nil {
		return err
	}

	if _, err := r.client.Collection(r.collection()).Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}
	return nil
}
