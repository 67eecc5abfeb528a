package usecase

import (
	"time"

	"github.com/govern-lab/riskframe/pkg/domain/interfaces"
)

type UseCases struct {
	repo  interfaces.Repository
	clock func() time.Time

	Assessment *AssessmentUseCase
	Template   *TemplateUseCase
	Report     *ReportUseCase
}

type Option func(*UseCases)

// WithClock overrides the time source. Used by tests to pin timestamps.
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:  repo,
		clock: func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Assessment = NewAssessmentUseCase(repo, uc.clock)
	uc.Template = NewTemplateUseCase(repo, uc.clock)
	uc.Report = NewReportUseCase(repo, uc.clock)

	return uc
}
