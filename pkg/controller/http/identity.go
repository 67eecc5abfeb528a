package http

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govern-lab/riskframe/pkg/domain/types"
	"github.com/govern-lab/riskframe/pkg/utils/errutil"
)

// Identity headers installed by the upstream auth proxy. The core trusts
// them as-is; authentication itself happens before requests reach here.
const (
	HeaderOrganization = "X-Riskframe-Org"
	HeaderUser         = "X-Riskframe-User"
)

type contextKey string

const (
	ctxKeyOrganizationID contextKey = "organization_id"
	ctxKeyUserID         contextKey = "user_id"
)

// identityMiddleware copies the identity headers into the request context.
// Presence is enforced per-route, not here.
func identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if org := r.Header.Get(HeaderOrganization); org != "" {
			ctx = context.WithValue(ctx, ctxKeyOrganizationID, types.OrganizationID(org))
		}
		if user := r.Header.Get(HeaderUser); user != "" {
			ctx = context.WithValue(ctx, ctxKeyUserID, types.UserID(user))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func organizationIDFromContext(ctx context.Context) (types.OrganizationID, bool) {
	id, ok := ctx.Value(ctxKeyOrganizationID).(types.OrganizationID)
	return id, ok
}

// requireOrganization resolves the organization from the request context,
// writing a 400 response when the header was absent.
func requireOrganization(w http.ResponseWriter, r *http.Request) (types.OrganizationID, bool) {
	id, ok := organizationIDFromContext(r.Context())
	if !ok {
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("missing organization header", goerr.V("header", HeaderOrganization)),
			http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func userIDFromContext(ctx context.Context) (types.UserID, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(types.UserID)
	return id, ok
}
