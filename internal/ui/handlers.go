package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/api"
	"github.com/claude/liftlog/internal/profile"
	"github.com/claude/liftlog/internal/session"
	"github.com/claude/liftlog/internal/workout"
	"github.com/go-chi/chi/v5"
)

type loginData struct {
	Error string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if s.sess.IsAuthenticated() {
		http.Redirect(w, r, "/profile", http.StatusFound)
		return
	}
	s.render(w, "login.html", loginData{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	tok := r.FormValue("token")
	if tok == "" {
		s.render(w, "login.html", loginData{Error: "A token is required"})
		return
	}

	if err := s.sess.Login(r.Context(), tok); err != nil {
		msg := "Login failed"
		if errors.Is(err, session.ErrTokenExpired) {
			msg = "Token has expired"
		}
		s.render(w, "login.html", loginData{Error: msg})
		return
	}
	http.Redirect(w, r, "/profile", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sess.Logout()
	http.Redirect(w, r, "/login", http.StatusFound)
}

type profileData struct {
	User    *api.User
	Editing bool
	Form    profile.Form
	Message string
	Error   string
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}

	user := s.sess.User()
	if user == nil {
		// Authenticated but the profile fetch failed earlier; try again.
		if err := s.sess.RefreshUser(r.Context()); err == nil {
			user = s.sess.User()
		}
	}

	data := profileData{User: user}
	if r.URL.Query().Get("edit") == "1" && user != nil {
		data.Editing = true
		data.Form = profile.FormFromUser(user)
	}
	s.render(w, "profile.html", data)
}

func (s *Server) handleProfileSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}
	user := s.sess.User()
	if user == nil {
		http.Redirect(w, r, "/profile", http.StatusFound)
		return
	}

	form := profile.Form{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Height:   r.FormValue("height"),
		Weight:   r.FormValue("weight"),
		Gender:   r.FormValue("gender"),
		Age:      r.FormValue("age"),
	}

	msg, err := form.Submit(r.Context(), s.client, user.ID)
	if err != nil {
		var verr *profile.ValidationError
		errMsg := profile.FailureMessage(err)
		if errors.As(err, &verr) {
			switch verr.Reason {
			case profile.ReasonMissingField:
				errMsg = "All fields are required"
			case profile.ReasonNonNumeric:
				errMsg = "Height, weight, and age must be numbers"
			}
		}
		// Stay in edit mode with the draft intact.
		s.render(w, "profile.html", profileData{
			User: user, Editing: true, Form: form, Error: errMsg,
		})
		return
	}

	// Success exits edit mode and re-fetches the updated record.
	if err := s.sess.RefreshUser(r.Context()); err != nil {
		s.log.Warn("user refresh after profile update failed", "error", err)
	}
	s.render(w, "profile.html", profileData{User: s.sess.User(), Message: msg})
}

type workoutsData struct {
	Groups     []string
	Group      string
	Exercises  []string
	Exercise   string
	Sets       int
	SetIndexes []int
	Past       []api.WorkoutRecord
	Message    string
	Error      string
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}

	if err := s.recorder.Refresh(r.Context()); err != nil {
		s.log.Warn("workout history fetch failed", "error", err)
	}

	q := r.URL.Query()
	data := workoutsData{
		Groups:  workout.MuscleGroups(),
		Group:   q.Get("group"),
		Past:    s.recorder.Past(),
		Message: q.Get("msg"),
		Error:   q.Get("err"),
	}
	if data.Group != "" {
		data.Exercises = workout.Exercises(data.Group)
		data.Exercise = q.Get("exercise")
	}
	if sets, err := strconv.Atoi(q.Get("sets")); err == nil && sets > 0 {
		data.Sets = sets
		data.SetIndexes = make([]int, sets)
		for i := range data.SetIndexes {
			data.SetIndexes[i] = i
		}
	}
	s.render(w, "workouts.html", data)
}

func (s *Server) handleWorkoutSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}

	var form workout.Form
	form.SetMuscleGroup(r.FormValue("group"))
	form.SetExercise(r.FormValue("exercise"))

	sets, err := strconv.Atoi(r.FormValue("sets"))
	if err != nil {
		sets = 0
	}
	form.SetSets(sets)
	for i := 0; i < sets; i++ {
		form.SetRep(i, r.FormValue("reps_"+strconv.Itoa(i)))
		form.SetWeight(i, r.FormValue("weight_"+strconv.Itoa(i)))
	}

	if err := s.recorder.Submit(r.Context(), &form); err != nil {
		http.Redirect(w, r, "/workouts?err="+url.QueryEscape("Failed to add workout"), http.StatusFound)
		return
	}
	http.Redirect(w, r, "/workouts?msg="+url.QueryEscape("Workout added"), http.StatusFound)
}

type analyticsData struct {
	Exercises []string
	Exercise  string
	NoData    bool
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}

	if err := s.recorder.Refresh(r.Context()); err != nil {
		s.log.Warn("workout history fetch failed", "error", err)
	}

	data := analyticsData{
		Exercises: s.recorder.DistinctExercises(),
		Exercise:  r.URL.Query().Get("exercise"),
	}
	if data.Exercise != "" {
		records, err := s.client.GetAnalytics(r.Context(), data.Exercise)
		if err != nil {
			s.log.Warn("analytics fetch failed", "exercise", data.Exercise, "error", err)
			data.NoData = true
		} else {
			data.NoData = analytics.Transform(records).Empty()
		}
	}
	s.render(w, "analytics.html", data)
}

// handleAnalyticsChart renders the go-echarts page for one exercise.
// Embedded by the analytics page in an iframe.
func (s *Server) handleAnalyticsChart(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}

	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "exercise parameter required", http.StatusBadRequest)
		return
	}

	records, err := s.client.GetAnalytics(r.Context(), exercise)
	if err != nil {
		s.log.Error("analytics fetch failed", "exercise", exercise, "error", err)
		http.Error(w, "failed to fetch analytics", http.StatusBadGateway)
		return
	}

	line := analytics.LineChart(exercise, analytics.Transform(records))
	if err := line.Render(w); err != nil {
		s.log.Error("chart render failed", "error", err)
	}
}

type verifyData struct {
	Message string
}

func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	verifyToken := chi.URLParam(r, "token")

	msg, err := s.client.VerifyEmail(r.Context(), verifyToken)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		} else {
			msg = "An error occurred"
		}
	}
	s.render(w, "verify.html", verifyData{Message: msg})
}
