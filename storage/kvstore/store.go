package kvstore

import (
	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/academics"
	"github.com/trezcool/kitivo/core/board"
	"github.com/trezcool/kitivo/core/forum"
	"github.com/trezcool/kitivo/core/messaging"
	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
	"github.com/trezcool/kitivo/core/poll"
	"github.com/trezcool/kitivo/core/quiz"
	"github.com/trezcool/kitivo/core/settings"
	"github.com/trezcool/kitivo/core/user"
)

// Storage keys, one per table.
const (
	keyUsers         = "users"
	keyRoster        = "roster"
	keyCatalog       = "catalog"
	keyPlans         = "course_plans"
	keyGpaEntries    = "gpa_entries"
	keyCustomGrades  = "custom_grades"
	keyAssignments   = "assignments"
	keyResources     = "resources"
	keyFlashcards    = "flashcard_sets"
	keyQuizzes       = "quizzes"
	keySubmissions   = "quiz_submissions"
	keyPolls         = "polls"
	keyThreads       = "forum_threads"
	keyAnnouncements = "announcements"
	keyEvents        = "calendar_events"
	keyJobs          = "jobs"
	keyLostFound     = "lostfound_items"
	keyNotes         = "public_notes"
	keyTutors        = "tutor_profiles"
	keyFaculty       = "faculty"
	keyMessages      = "messages"
	keyNotifications = "notifications"
	keySettings      = "settings"
	keyLastRoute     = "last_route"
)

// DefaultRoster is the approved matriculation list seeded on new installs.
var DefaultRoster = []string{
	"2024013417", "2024013418", "2024013419", "2024013420",
	"2024013421", "2024013422", "2024013423", "2024013424",
}

// seedCatalog is the fixed course catalog seeded on new installs,
// grouped level → term.
func seedCatalog() academics.Catalog {
	return academics.Catalog{
		"100": {
			"First": {
				{ID: 1, Code: "CSC101", Title: "Introduction to Computer Science", Units: 3},
				{ID: 2, Code: "MTH101", Title: "General Mathematics I", Units: 3},
				{ID: 3, Code: "PHY101", Title: "General Physics I", Units: 2},
			},
			"Second": {
				{ID: 4, Code: "CSC102", Title: "Problem Solving", Units: 3},
				{ID: 5, Code: "MTH102", Title: "General Mathematics II", Units: 3},
			},
		},
		"200": {
			"First": {
				{ID: 6, Code: "CSC201", Title: "Computer Programming I", Units: 3},
				{ID: 7, Code: "CSC203", Title: "Discrete Structures", Units: 2},
			},
			"Second": {
				{ID: 8, Code: "CSC202", Title: "Computer Programming II", Units: 3},
				{ID: 9, Code: "CSC208", Title: "Operating Systems I", Units: 2},
			},
		},
	}
}

type (
	// reloadable lets Backup/Restore treat every table uniformly.
	reloadable interface {
		Reload() error
	}

	tableRef struct {
		key      string
		validate func([]byte) error
		tbl      reloadable
	}

	// Store owns every entity table. It is constructed once per session and
	// handed to the domain services; nothing reaches tables any other way.
	Store struct {
		kv core.KVStore

		users         *Table[user.User]
		roster        *Single[[]string]
		catalog       *Single[academics.Catalog]
		plans         *Table[academics.CoursePlan]
		gpaEntries    *Table[academics.GpaEntry]
		customGrades  *Table[academics.CustomGrade]
		assignments   *Table[academics.Assignment]
		resources     *Table[academics.Resource]
		flashcards    *Table[academics.FlashcardSet]
		quizzes       *Table[quiz.Quiz]
		submissions   *Table[quiz.Submission]
		polls         *Table[poll.Poll]
		threads       *Table[forum.Thread]
		announcements *Table[board.Announcement]
		events        *Table[board.CalendarEvent]
		jobs          *Table[board.Job]
		lostFound     *Table[board.LostFoundItem]
		notes         *Table[board.PublicNote]
		tutors        *Table[board.TutorProfile]
		faculty       *Table[board.Faculty]
		messages      *Table[messaging.Message]
		notifications *Table[notification.Notification]
		settings      *Single[settings.Settings]
		lastRoute     *Single[nav.Route]

		tables []tableRef
	}
)

// Open loads (or seeds) every table from the key-value store.
func Open(kv core.KVStore) (*Store, error) {
	s := &Store{kv: kv}
	var err error

	if s.users, err = NewTable(kv, keyUsers, func(u *user.User) *int { return &u.ID }, nil); err != nil {
		return nil, err
	}
	if s.roster, err = NewSingle(kv, keyRoster, DefaultRoster); err != nil {
		return nil, err
	}
	if s.catalog, err = NewSingle(kv, keyCatalog, seedCatalog()); err != nil {
		return nil, err
	}
	if s.plans, err = NewTable(kv, keyPlans, func(p *academics.CoursePlan) *int { return &p.ID }, nil); err != nil {
		return nil, err
	}
	if s.gpaEntries, err = NewTable(kv, keyGpaEntries, func(e *academics.GpaEntry) *int { return &e.ID }, nil); err != nil {
		return nil, err
	}
	if s.customGrades, err = NewTable(kv, keyCustomGrades, func(g *academics.CustomGrade) *int { return &g.ID }, nil); err != nil {
		return nil, err
	}
	if s.assignments, err = NewTable(kv, keyAssignments, func(a *academics.Assignment) *int { return &a.ID }, nil); err != nil {
		return nil, err
	}
	if s.resources, err = NewTable(kv, keyResources, func(r *academics.Resource) *int { return &r.ID }, nil); err != nil {
		return nil, err
	}
	if s.flashcards, err = NewTable(kv, keyFlashcards, func(f *academics.FlashcardSet) *int { return &f.ID }, nil); err != nil {
		return nil, err
	}
	if s.quizzes, err = NewTable(kv, keyQuizzes, func(q *quiz.Quiz) *int { return &q.ID }, nil); err != nil {
		return nil, err
	}
	if s.submissions, err = NewTable(kv, keySubmissions, func(sub *quiz.Submission) *int { return &sub.ID }, nil); err != nil {
		return nil, err
	}
	if s.polls, err = NewTable(kv, keyPolls, func(p *poll.Poll) *int { return &p.ID }, nil); err != nil {
		return nil, err
	}
	if s.threads, err = NewTable(kv, keyThreads, func(t *forum.Thread) *int { return &t.ID }, nil); err != nil {
		return nil, err
	}
	if s.announcements, err = NewTable(kv, keyAnnouncements, func(a *board.Announcement) *int { return &a.ID }, nil); err != nil {
		return nil, err
	}
	if s.events, err = NewTable(kv, keyEvents, func(e *board.CalendarEvent) *int { return &e.ID }, nil); err != nil {
		return nil, err
	}
	if s.jobs, err = NewTable(kv, keyJobs, func(j *board.Job) *int { return &j.ID }, nil); err != nil {
		return nil, err
	}
	if s.lostFound, err = NewTable(kv, keyLostFound, func(l *board.LostFoundItem) *int { return &l.ID }, nil); err != nil {
		return nil, err
	}
	if s.notes, err = NewTable(kv, keyNotes, func(n *board.PublicNote) *int { return &n.ID }, nil); err != nil {
		return nil, err
	}
	if s.tutors, err = NewTable(kv, keyTutors, func(t *board.TutorProfile) *int { return &t.ID }, nil); err != nil {
		return nil, err
	}
	if s.faculty, err = NewTable(kv, keyFaculty, func(f *board.Faculty) *int { return &f.ID }, nil); err != nil {
		return nil, err
	}
	if s.messages, err = NewTable(kv, keyMessages, func(m *messaging.Message) *int { return &m.ID }, nil); err != nil {
		return nil, err
	}
	if s.notifications, err = NewTable(kv, keyNotifications, func(n *notification.Notification) *int { return &n.ID }, nil); err != nil {
		return nil, err
	}
	if s.settings, err = NewSingle(kv, keySettings, settings.Settings{}); err != nil {
		return nil, err
	}
	if s.lastRoute, err = NewSingle(kv, keyLastRoute, nav.Route{Page: nav.PageHome}); err != nil {
		return nil, err
	}

	s.tables = []tableRef{
		{keyUsers, s.users.validate, s.users},
		{keyRoster, s.roster.validate, s.roster},
		{keyCatalog, s.catalog.validate, s.catalog},
		{keyPlans, s.plans.validate, s.plans},
		{keyGpaEntries, s.gpaEntries.validate, s.gpaEntries},
		{keyCustomGrades, s.customGrades.validate, s.customGrades},
		{keyAssignments, s.assignments.validate, s.assignments},
		{keyResources, s.resources.validate, s.resources},
		{keyFlashcards, s.flashcards.validate, s.flashcards},
		{keyQuizzes, s.quizzes.validate, s.quizzes},
		{keySubmissions, s.submissions.validate, s.submissions},
		{keyPolls, s.polls.validate, s.polls},
		{keyThreads, s.threads.validate, s.threads},
		{keyAnnouncements, s.announcements.validate, s.announcements},
		{keyEvents, s.events.validate, s.events},
		{keyJobs, s.jobs.validate, s.jobs},
		{keyLostFound, s.lostFound.validate, s.lostFound},
		{keyNotes, s.notes.validate, s.notes},
		{keyTutors, s.tutors.validate, s.tutors},
		{keyFaculty, s.faculty.validate, s.faculty},
		{keyMessages, s.messages.validate, s.messages},
		{keyNotifications, s.notifications.validate, s.notifications},
		{keySettings, s.settings.validate, s.settings},
		{keyLastRoute, s.lastRoute.validate, s.lastRoute},
	}
	return s, nil
}
