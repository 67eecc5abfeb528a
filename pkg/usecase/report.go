package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/service/report"
	"github.com/govern-lab/riskframe/pkg/service/scoring"
	"github.com/govern-lab/riskframe/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

type ReportUseCase struct {
	repo  interfaces.Repository
	clock func() time.Time
}

func NewReportUseCase(repo interfaces.Repository, clock func() time.Time) *ReportUseCase {
	return &ReportUseCase{
		repo:  repo,
		clock: clock,
	}
}

// Dashboard aggregates the organization's assessments into overview
// statistics, recent activity, a six-month score trend, and per-function
// compliance averages.
func (uc *ReportUseCase) Dashboard(ctx context.Context, orgID types.OrganizationID) (*model.Dashboard, error) {
	assessments, err := uc.repo.Assessment().List(ctx, orgID, interfaces.ListAssessmentsOption{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments for dashboard")
	}
	return scoring.BuildDashboard(assessments, uc.clock()), nil
}

// RiskRegister renders the organization's open risk items as an XLSX
// workbook. Assessor names are resolved concurrently; a missing assessor
// record degrades to an empty name rather than failing the export.
func (uc *ReportUseCase) RiskRegister(ctx context.Context, orgID types.OrganizationID) ([]byte, error) {
	assessments, err := uc.repo.Assessment().List(ctx, orgID, interfaces.ListAssessmentsOption{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments for risk register")
	}

	assessors, err := uc.resolveAssessors(ctx, assessments)
	if err != nil {
		return nil, err
	}

	rows := scoring.BuildRiskRegister(assessments, assessors)
	data, err := report.RenderRiskRegister(rows)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render risk register")
	}
	return data, nil
}

// GeneratedReport is a rendered report ready to serve as an attachment
type GeneratedReport struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Generate renders one assessment's compliance report in the requested
// format.
func (uc *ReportUseCase) Generate(ctx context.Context, orgID types.OrganizationID, id types.AssessmentID, format string) (*GeneratedReport, error) {
	parsed, err := types.ParseReportFormat(format)
	if err != nil {
		return nil, goerr.Wrap(ErrUnsupportedFormat, "failed to generate report",
			goerr.V(AssessmentIDKey, id),
			goerr.V(FormatKey, format))
	}

	assessment, err := uc.repo.Assessment().Get(ctx, orgID, id)
	if err != nil {
		return nil, goerr.Wrap(notFoundAs(err, ErrAssessmentNotFound), "failed to get assessment for report",
			goerr.V(AssessmentIDKey, id))
	}

	assessor, err := uc.repo.User().Get(ctx, assessment.AssessorID)
	if err != nil {
		// A deprovisioned assessor must not block the report
		errutil.Handle(ctx, err, "assessor not resolvable for report")
		assessor = &model.User{ID: assessment.AssessorID}
	}

	organization, err := uc.repo.Organization().Get(ctx, orgID)
	if err != nil {
		errutil.Handle(ctx, err, "organization not resolvable for report")
		organization = &model.Organization{ID: orgID}
	}

	data, err := report.Render(report.Input{
		Assessment:   assessment,
		Assessor:     assessor,
		Organization: organization,
		GeneratedAt:  uc.clock(),
	}, parsed)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render report",
			goerr.V(AssessmentIDKey, id),
			goerr.V(FormatKey, parsed))
	}

	return &GeneratedReport{
		Data:        data,
		Filename:    report.Filename(assessment.Title, parsed),
		ContentType: parsed.ContentType(),
	}, nil
}

// resolveAssessors fetches the distinct assessors referenced by the given
// assessments. Lookups run in parallel; a not-found assessor is simply
// absent from the result map.
func (uc *ReportUseCase) resolveAssessors(ctx context.Context, assessments []*model.Assessment) (map[types.UserID]*model.User, error) {
	ids := make(map[types.UserID]struct{})
	for _, assessment := range assessments {
		if assessment.AssessorID != "" {
			ids[assessment.AssessorID] = struct{}{}
		}
	}

	var mu sync.Mutex
	assessors := make(map[types.UserID]*model.User, len(ids))

	eg, ctx := errgroup.WithContext(ctx)
	for id := range ids {
		eg.Go(func() error {
			user, err := uc.repo.User().Get(ctx, id)
			if err != nil {
				if errors.Is(err, interfaces.ErrNotFound) {
					return nil
				}
				return err
			}
			mu.Lock()
			assessors[id] = user
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve assessors")
	}

	return assessors, nil
}
