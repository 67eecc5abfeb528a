package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/service/report"
)

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	dashboard, err := s.uc.Report.Dashboard(ctx, orgID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, dashboard)
}

func (s *Server) riskRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	data, err := s.uc.Report.RiskRegister(ctx, orgID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondAttachment(ctx, w, types.ReportFormatExcel.ContentType(), report.RiskRegisterFilename, data)
}

func (s *Server) generateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}
	id := types.AssessmentID(chi.URLParam(r, "assessmentID"))
	format := chi.URLParam(r, "format")

	generated, err := s.uc.Report.Generate(ctx, orgID, id, format)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondAttachment(ctx, w, generated.ContentType, generated.Filename, generated.Data)
}
