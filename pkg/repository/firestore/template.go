package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

type questionDocument struct {
	ID       string   `firestore:"id"`
	Text     string   `firestore:"text"`
	Type     string   `firestore:"type"`
	Options  []string `firestore:"options,omitempty"`
	Required bool     `firestore:"required"`
	HelpText string   `firestore:"help_text,omitempty"`
	Weight   int      `firestore:"weight"`
}

type templateDocument struct {
	FrameworkFunction string             `firestore:"framework_function"`
	Category          string             `firestore:"category"`
	SubcategoryID     string             `firestore:"subcategory_id"`
	Outcome           string             `firestore:"outcome"`
	Description       string             `firestore:"description,omitempty"`
	Questions         []questionDocument `firestore:"questions,omitempty"`
	IsActive          bool               `firestore:"is_active"`
	CreatedAt         time.Time          `firestore:"created_at"`
	UpdatedAt         time.Time          `firestore:"updated_at"`
}

func toTemplateDocument(t *model.RiskTemplate) *templateDocument {
	doc := &templateDocument{
		FrameworkFunction: t.FrameworkFunction.String(),
		Category:          t.Category,
		SubcategoryID:     t.SubcategoryID,
		Outcome:           t.Outcome,
		Description:       t.Description,
		IsActive:          t.IsActive,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	for _, q := range t.Questions {
		doc.Questions = append(doc.Questions, questionDocument{
			ID:       q.ID,
			Text:     q.Text,
			Type:     q.Type.String(),
			Options:  q.Options,
			Required: q.Required,
			HelpText: q.HelpText,
			Weight:   q.Weight,
		})
	}
	return doc
}

func (d *templateDocument) toModel() *model.RiskTemplate {
	template := &model.RiskTemplate{
		FrameworkFunction: types.FrameworkFunction(d.FrameworkFunction),
		Category:          d.Category,
		SubcategoryID:     d.SubcategoryID,
		Outcome:           d.Outcome,
		Description:       d.Description,
		IsActive:          d.IsActive,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	for _, q := range d.Questions {
		template.Questions = append(template.Questions, model.Question{
			ID:       q.ID,
			Text:     q.Text,
			Type:     types.QuestionType(q.Type),
			Options:  q.Options,
			Required: q.Required,
			HelpText: q.HelpText,
			Weight:   q.Weight,
		})
	}
	return template
}

type templateRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTemplateRepository(client *firestore.Client) *templateRepository {
	return &templateRepository{client: client}
}

func (r *templateRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risk_templates"
	}
	return "risk_templates"
}

func (r *templateRepository) ListActive(ctx context.Context) ([]*model.RiskTemplate, error) {
	iter := r.client.Collection(r.collection()).
		Where("is_active", "==", true).
		OrderBy("framework_function", firestore.Asc).
		OrderBy("category", firestore.Asc).
		OrderBy("subcategory_id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var templates []*model.RiskTemplate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate templates")
		}

		var templateDoc templateDocument
		if err := doc.DataTo(&templateDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal template", goerr.V("doc_id", doc.Ref.ID))
		}
		templates = append(templates, templateDoc.toModel())
	}

	return templates, nil
}

func (r *templateRepository) Get(ctx context.Context, subcategoryID string) (*model.RiskTemplate, error) {
	doc, err := r.client.Collection(r.collection()).Doc(subcategoryID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "template not found", goerr.V("subcategory_id", subcategoryID))
		}
		return nil, goerr.Wrap(err, "failed to get template", goerr.V("subcategory_id", subcategoryID))
	}

	var templateDoc templateDocument
	if err := doc.DataTo(&templateDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal template", goerr.V("subcategory_id", subcategoryID))
	}

	return templateDoc.toModel(), nil
}

func (r *templateRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.client.Collection(r.collection()).Documents(ctx).GetAll()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count templates")
	}
	return len(docs), nil
}

func (r *templateRepository) PutMany(ctx context.Context, templates []*model.RiskTemplate) error {
	bw := r.client.BulkWriter(ctx)
	now := time.Now().UTC()

	for _, t := range templates {
		doc := toTemplateDocument(t)
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = now
		}
		doc.UpdatedAt = now

		ref := r.client.Collection(r.collection()).Doc(doc.SubcategoryID)
		if _, err := bw.Set(ref, doc); err != nil {
			return goerr.Wrap(err, "failed to enqueue template write", goerr.V("subcategory_id", doc.SubcategoryID))
		}
	}

	bw.End()
	return nil
}
