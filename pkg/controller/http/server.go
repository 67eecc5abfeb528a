package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/govern-lab/riskframe/pkg/usecase"
	"github.com/govern-lab/riskframe/pkg/utils/logging"
	"github.com/govern-lab/riskframe/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(identityMiddleware)

	r.Get("/health", healthHandler)

	r.Get("/templates", s.listTemplates)

	r.Route("/assessments", func(r chi.Router) {
		r.Post("/", s.createAssessment)
		r.Get("/", s.listAssessments)
		r.Route("/{assessmentID}", func(r chi.Router) {
			r.Get("/", s.getAssessment)
			r.Put("/", s.updateAssessment)
			r.Delete("/", s.deleteAssessment)
			r.Put("/framework", s.updateFrameworkSection)
		})
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/dashboard", s.dashboard)
		r.Get("/risk-register", s.riskRegister)
		r.Get("/{assessmentID}/{format}", s.generateReport)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("failed to encode response", "error", err)
	}
}

// respondAttachment writes rendered report bytes as a download
func respondAttachment(ctx context.Context, w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	safe.Write(ctx, w, data)
}
