package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/govern-lab/riskframe/pkg/usecase"
	"github.com/govern-lab/riskframe/pkg/utils/errutil"
)

// handleError maps use case sentinels onto HTTP status codes and delegates
// logging and response writing.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrAssessmentNotFound),
		errors.Is(err, usecase.ErrTemplateNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)

	case errors.Is(err, usecase.ErrUnknownSection),
		errors.Is(err, usecase.ErrEmptyResponses),
		errors.Is(err, usecase.ErrUnsupportedFormat),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrTitleRequired),
		errors.Is(err, usecase.ErrSystemNameRequired):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)

	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}
