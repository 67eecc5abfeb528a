package config

import (
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

//go:embed templates.toml
var defaultCatalog []byte

// Catalog holds CLI flags for the questionnaire template catalog
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "template-catalog",
			Usage:       "Path to a TOML template catalog (uses the built-in NIST AI RMF catalog when empty)",
			Sources:     cli.EnvVars("RISKFRAME_TEMPLATE_CATALOG"),
			Destination: &c.path,
		},
	}
}

// CatalogQuestion is one questionnaire item in the catalog file
type CatalogQuestion struct {
	ID       string   `toml:"id"`
	Text     string   `toml:"text"`
	Type     string   `toml:"type"`
	Options  []string `toml:"options"`
	Required bool     `toml:"required"`
	HelpText string   `toml:"help_text"`
	Weight   int      `toml:"weight"`
}

// Validate checks if the CatalogQuestion is valid
func (q *CatalogQuestion) Validate() error {
	if q.ID == "" {
		return goerr.New("question id is required")
	}
	if q.Text == "" {
		return goerr.New("question text is required", goerr.V("id", q.ID))
	}
	if _, err := types.ParseQuestionType(q.Type); err != nil {
		return goerr.Wrap(err, "invalid question type", goerr.V("id", q.ID))
	}
	return nil
}

// CatalogTemplate is one subcategory questionnaire in the catalog file
type CatalogTemplate struct {
	Function      string            `toml:"function"`
	Category      string            `toml:"category"`
	SubcategoryID string            `toml:"subcategory_id"`
	Outcome       string            `toml:"outcome"`
	Description   string            `toml:"description"`
	Questions     []CatalogQuestion `toml:"question"`
}

// Validate checks if the CatalogTemplate is valid
func (t *CatalogTemplate) Validate() error {
	if t.SubcategoryID == "" {
		return goerr.New("subcategory_id is required")
	}
	if _, err := types.ParseFrameworkFunction(t.Function); err != nil {
		return goerr.Wrap(err, "invalid framework function", goerr.V("subcategory_id", t.SubcategoryID))
	}
	if t.Category == "" {
		return goerr.New("category is required", goerr.V("subcategory_id", t.SubcategoryID))
	}
	if len(t.Questions) == 0 {
		return goerr.New("at least one question is required", goerr.V("subcategory_id", t.SubcategoryID))
	}
	for _, q := range t.Questions {
		if err := q.Validate(); err != nil {
			return goerr.Wrap(err, "invalid question", goerr.V("subcategory_id", t.SubcategoryID))
		}
	}
	return nil
}

type catalogFile struct {
	Templates []CatalogTemplate `toml:"template"`
}

// Load parses and validates the catalog, returning the templates to seed.
// A configured path overrides the built-in catalog.
func (c *Catalog) Load() ([]*model.RiskTemplate, error) {
	raw := defaultCatalog
	if c.path != "" {
		data, err := os.ReadFile(c.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read template catalog", goerr.V("path", c.path))
		}
		raw = data
	}

	var file catalogFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse template catalog", goerr.V("path", c.path))
	}
	if len(file.Templates) == 0 {
		return nil, goerr.New("template catalog is empty", goerr.V("path", c.path))
	}

	seen := make(map[string]struct{}, len(file.Templates))
	templates := make([]*model.RiskTemplate, 0, len(file.Templates))
	for _, entry := range file.Templates {
		if err := entry.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid template catalog entry")
		}
		if _, ok := seen[entry.SubcategoryID]; ok {
			return nil, goerr.New("duplicate subcategory in template catalog",
				goerr.V("subcategory_id", entry.SubcategoryID))
		}
		seen[entry.SubcategoryID] = struct{}{}

		questions := make([]model.Question, 0, len(entry.Questions))
		for _, q := range entry.Questions {
			questions = append(questions, model.Question{
				ID:       q.ID,
				Text:     q.Text,
				Type:     types.QuestionType(q.Type),
				Options:  q.Options,
				Required: q.Required,
				HelpText: q.HelpText,
				Weight:   q.Weight,
			})
		}

		templates = append(templates, &model.RiskTemplate{
			FrameworkFunction: types.FrameworkFunction(entry.Function),
			Category:          entry.Category,
			SubcategoryID:     entry.SubcategoryID,
			Outcome:           entry.Outcome,
			Description:       entry.Description,
			Questions:         questions,
			IsActive:          true,
		})
	}

	return templates, nil
}
