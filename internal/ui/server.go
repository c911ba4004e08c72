// Package ui is the local web interface: a thin presentation layer over
// the remote API, holding no business logic of its own.
package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/claude/liftlog/internal/api"
	"github.com/claude/liftlog/internal/session"
	"github.com/claude/liftlog/internal/workout"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server holds dependencies for the UI handlers.
type Server struct {
	sess     *session.Manager
	client   *api.Client
	recorder *workout.Recorder
	log      *slog.Logger
	router   chi.Router
	tmpl     *template.Template
}

// New creates a Server with all routes configured.
func New(sess *session.Manager, client *api.Client, recorder *workout.Recorder, log *slog.Logger) *Server {
	s := &Server{
		sess:     sess,
		client:   client,
		recorder: recorder,
		log:      log,
		router:   chi.NewRouter(),
		tmpl: template.Must(template.New("").Funcs(template.FuncMap{
			"inc": func(i int) int { return i + 1 },
		}).ParseFS(templateFS, "templates/*.html")),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/profile", http.StatusFound)
	})

	s.router.Get("/login", s.handleLoginPage)
	s.router.Post("/login", s.handleLogin)
	s.router.Post("/logout", s.handleLogout)

	s.router.Get("/profile", s.handleProfile)
	s.router.Post("/profile", s.handleProfileSubmit)

	s.router.Get("/workouts", s.handleWorkouts)
	s.router.Post("/workouts", s.handleWorkoutSubmit)
	s.router.Get("/workouts/analytics", s.handleAnalytics)
	s.router.Get("/workouts/analytics/chart", s.handleAnalyticsChart)

	s.router.Get("/verify-email/{token}", s.handleVerifyEmail)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("template render failed", "template", name, "error", err)
	}
}

// requireAuth redirects unauthenticated requests to the login page.
// Returns false when the caller should stop handling.
func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if !s.sess.IsAuthenticated() {
		http.Redirect(w, r, "/login", http.StatusFound)
		return false
	}
	return true
}
