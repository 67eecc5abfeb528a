package http

import (
	"net/http"
)

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	grouped, err := s.uc.Template.ListGrouped(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, grouped)
}
