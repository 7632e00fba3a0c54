// Package nav holds the portal's navigation state: a single current route
// that views are resolved from. Transitions are unconditional replacements;
// a route pointing at a missing entity renders "not found" downstream and is
// never a router error.
package nav

import "sync"

// Page identifiers.
const (
	PageSignIn        = "signin"
	PageSignUp        = "signup"
	PageHome          = "home"
	PageAnnouncements = "announcements"
	PageCourses       = "courses"
	PageCoursePlanner = "coursePlanner"
	PageGpa           = "gpa"
	PageGrades        = "grades"
	PageAssignments   = "assignments"
	PageResources     = "resources"
	PageFlashcards    = "flashcards"
	PageQuizzes       = "quizzes"
	PageTakeQuiz      = "takeQuiz"
	PageQuizResults   = "quizResults"
	PagePolls         = "polls"
	PageForums        = "forums"
	PageForumThread   = "viewForumThread"
	PageCalendar      = "calendar"
	PageMessages      = "messages"
	PageJobs          = "jobs"
	PageLostFound     = "lostFound"
	PageTutors        = "tutors"
	PagePublicNotes   = "publicNotes"
	PageFaculty       = "faculty"
	PageProfile       = "profile"
	PageAdmin         = "admin"
	PageMaintenance   = "maintenance"
	PageNotFound      = "notFound"
)

// Route is the current page identifier plus free-form navigation parameters.
type Route struct {
	Page   string            `json:"page"`
	Params map[string]string `json:"params,omitempty"`
}

func NewRoute(page string, params ...string) Route {
	rt := Route{Page: page}
	if len(params) > 0 {
		rt.Params = make(map[string]string, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			rt.Params[params[i]] = params[i+1]
		}
	}
	return rt
}

type (
	// Repository persists the last visited route so a reload resumes there.
	Repository interface {
		LastRoute() (Route, error)
		SaveRoute(Route) error
	}

	Router struct {
		mu      sync.RWMutex
		repo    Repository
		current Route
	}
)

// NewRouter resumes at the persisted last route, or home on a fresh install.
func NewRouter(repo Repository) *Router {
	current := Route{Page: PageHome}
	if last, err := repo.LastRoute(); err == nil && last.Page != "" {
		current = last
	}
	return &Router{repo: repo, current: current}
}

func (r *Router) Current() Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Navigate unconditionally replaces the current route. There is no history
// stack; the new route is persisted as the resume point.
func (r *Router) Navigate(rt Route) Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = rt
	_ = r.repo.SaveRoute(rt) // losing the resume point is not fatal
	return r.current
}

// Reset forces the unauthenticated entry state, regardless of prior value.
// Called on sign-out.
func (r *Router) Reset() Route {
	return r.Navigate(Route{Page: PageSignIn})
}
