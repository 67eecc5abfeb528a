package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/usecase"
	"github.com/govern-lab/riskframe/pkg/utils/errutil"
)

type createAssessmentRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	AISystem    model.AISystem `json:"aiSystem"`
	DueDate     *time.Time     `json:"dueDate"`
}

func (s *Server) createAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}
	userID, ok := userIDFromContext(ctx)
	if !ok {
		errutil.HandleHTTP(ctx, w, goerr.New("missing user header", goerr.V("header", HeaderUser)), http.StatusBadRequest)
		return
	}

	var req createAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse request body"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.Assessment.Create(ctx, orgID, userID, usecase.CreateAssessmentInput{
		Title:       req.Title,
		Description: req.Description,
		AISystem:    req.AISystem,
		DueDate:     req.DueDate,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) listAssessments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	assessments, err := s.uc.Assessment.List(ctx, orgID, r.URL.Query().Get("status"))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, assessments)
}

func (s *Server) getAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}
	id := types.AssessmentID(chi.URLParam(r, "assessmentID"))

	assessment, err := s.uc.Assessment.Get(ctx, orgID, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, assessment)
}

type updateAssessmentRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	AISystem    *model.AISystem `json:"aiSystem"`
	DueDate     *time.Time      `json:"dueDate"`
	Status      *string         `json:"overallStatus"`
}

func (s *Server) updateAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}
	id := types.AssessmentID(chi.URLParam(r, "assessmentID"))

	var req updateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse request body"), http.StatusBadRequest)
		return
	}

	updated, err := s.uc.Assessment.Update(ctx, orgID, id, usecase.UpdateAssessmentInput{
		Title:       req.Title,
		Description: req.Description,
		AISystem:    req.AISystem,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}
	id := types.AssessmentID(chi.URLParam(r, "assessmentID"))

	if err := s.uc.Assessment.Delete(ctx, orgID, id); err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "assessment deleted"})
}

type frameworkSubcategoryRequest struct {
	SubcategoryID string                 `json:"subcategoryId"`
	Outcome       string                 `json:"outcome"`
	Responses     []model.QuestionAnswer `json:"responses"`
	Notes         string                 `json:"notes"`
}

type updateFrameworkSectionRequest struct {
	Section string `json:"section"`
	Data    struct {
		Completed     bool                          `json:"completed"`
		Subcategories []frameworkSubcategoryRequest `json:"subcategories"`
	} `json:"data"`
}

func (s *Server) updateFrameworkSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, ok := requireOrganization(w, r)
	if !ok {
		return
	}
	id := types.AssessmentID(chi.URLParam(r, "assessmentID"))

	var req updateFrameworkSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse request body"), http.StatusBadRequest)
		return
	}

	subcategories := make([]usecase.SubcategoryInput, 0, len(req.Data.Subcategories))
	for _, sub := range req.Data.Subcategories {
		subcategories = append(subcategories, usecase.SubcategoryInput{
			SubcategoryID: sub.SubcategoryID,
			Outcome:       sub.Outcome,
			Responses:     sub.Responses,
			Notes:         sub.Notes,
		})
	}

	updated, err := s.uc.Assessment.UpdateFrameworkSection(ctx, orgID, id, req.Section, usecase.SectionUpdateInput{
		Completed:     req.Data.Completed,
		Subcategories: subcategories,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
