package board

import (
	"errors"
	"time"

	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
)

var ErrNotFound = errors.New("record not found")

type (
	Repository interface {
		CreateAnnouncement(Announcement) (Announcement, error)
		QueryAllAnnouncements() ([]Announcement, error)
		DeleteAnnouncement(id int) error

		CreateEvent(CalendarEvent) (CalendarEvent, error)
		QueryAllEvents() ([]CalendarEvent, error)
		DeleteEvent(id int) error

		CreateJob(Job) (Job, error)
		QueryAllJobs() ([]Job, error)
		DeleteJob(id int) error

		CreateLostFoundItem(LostFoundItem) (LostFoundItem, error)
		QueryAllLostFoundItems() ([]LostFoundItem, error)
		DeleteLostFoundItem(id int) error

		CreateNote(PublicNote) (PublicNote, error)
		QueryAllNotes() ([]PublicNote, error)
		DeleteNote(id int) error

		GetTutorProfileByUser(userID int) (TutorProfile, error)
		CreateTutorProfile(TutorProfile) (TutorProfile, error)
		UpdateTutorProfile(TutorProfile) (TutorProfile, error)
		QueryAllTutorProfiles() ([]TutorProfile, error)

		CreateFaculty(Faculty) (Faculty, error)
		QueryAllFaculty() ([]Faculty, error)
		UpdateFaculty(Faculty) (Faculty, error)
		DeleteFaculty(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Announcements

func (svc *Service) CreateAnnouncement(actorID int, na NewAnnouncement) (Announcement, []notification.Intent, error) {
	if err := na.Validate(); err != nil {
		return Announcement{}, nil, err
	}
	a, err := svc.repo.CreateAnnouncement(Announcement{
		Title:     na.Title,
		Body:      na.Body,
		AuthorID:  actorID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Announcement{}, nil, err
	}
	return a, broadcast(actorID, "New announcement: "+a.Title, nav.PageAnnouncements), nil
}

func (svc *Service) Announcements() ([]Announcement, error) {
	return svc.repo.QueryAllAnnouncements()
}

func (svc *Service) DeleteAnnouncement(id int) error {
	return svc.repo.DeleteAnnouncement(id)
}

// Calendar events

func (svc *Service) CreateEvent(actorID int, ne NewCalendarEvent) (CalendarEvent, []notification.Intent, error) {
	if err := ne.Validate(); err != nil {
		return CalendarEvent{}, nil, err
	}
	ev, err := svc.repo.CreateEvent(CalendarEvent{
		Title:     ne.Title,
		Date:      ne.Date,
		Venue:     ne.Venue,
		AuthorID:  actorID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return CalendarEvent{}, nil, err
	}
	return ev, broadcast(actorID, "New event: "+ev.Title, nav.PageCalendar), nil
}

func (svc *Service) Events() ([]CalendarEvent, error) {
	return svc.repo.QueryAllEvents()
}

func (svc *Service) DeleteEvent(id int) error {
	return svc.repo.DeleteEvent(id)
}

// Jobs

func (svc *Service) CreateJob(actorID int, nj NewJob) (Job, []notification.Intent, error) {
	if err := nj.Validate(); err != nil {
		return Job{}, nil, err
	}
	j, err := svc.repo.CreateJob(Job{
		Title:       nj.Title,
		Description: nj.Description,
		Contact:     nj.Contact,
		AuthorID:    actorID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return Job{}, nil, err
	}
	return j, broadcast(actorID, "New job posting: "+j.Title, nav.PageJobs), nil
}

func (svc *Service) Jobs() ([]Job, error) {
	return svc.repo.QueryAllJobs()
}

func (svc *Service) DeleteJob(id int) error {
	return svc.repo.DeleteJob(id)
}

// Lost & found

func (svc *Service) CreateLostFoundItem(actorID int, nl NewLostFoundItem) (LostFoundItem, []notification.Intent, error) {
	if err := nl.Validate(); err != nil {
		return LostFoundItem{}, nil, err
	}
	item, err := svc.repo.CreateLostFoundItem(LostFoundItem{
		Kind:        nl.Kind,
		Item:        nl.Item,
		Description: nl.Description,
		Contact:     nl.Contact,
		AuthorID:    actorID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return LostFoundItem{}, nil, err
	}
	return item, broadcast(actorID, "Lost & found: "+item.Item, nav.PageLostFound), nil
}

func (svc *Service) LostFoundItems() ([]LostFoundItem, error) {
	return svc.repo.QueryAllLostFoundItems()
}

func (svc *Service) DeleteLostFoundItem(id int) error {
	return svc.repo.DeleteLostFoundItem(id)
}

// Public notes

func (svc *Service) CreateNote(actorID int, nn NewPublicNote) (PublicNote, []notification.Intent, error) {
	if err := nn.Validate(); err != nil {
		return PublicNote{}, nil, err
	}
	note, err := svc.repo.CreateNote(PublicNote{
		Title:     nn.Title,
		Body:      nn.Body,
		FileName:  nn.FileName,
		Content:   nn.Content,
		AuthorID:  actorID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return PublicNote{}, nil, err
	}
	return note, broadcast(actorID, "New shared note: "+note.Title, nav.PagePublicNotes), nil
}

func (svc *Service) Notes() ([]PublicNote, error) {
	return svc.repo.QueryAllNotes()
}

func (svc *Service) DeleteNote(id int) error {
	return svc.repo.DeleteNote(id)
}

// Tutor profiles

// UpsertTutorProfile registers or updates the user's tutor profile; one
// profile per user.
func (svc *Service) UpsertTutorProfile(userID int, tf TutorProfileForm) (TutorProfile, error) {
	if err := tf.Validate(); err != nil {
		return TutorProfile{}, err
	}

	now := time.Now().UTC()
	profile, err := svc.repo.GetTutorProfileByUser(userID)
	switch {
	case err == nil:
		profile.Courses = tf.Courses
		profile.Rate = tf.Rate
		profile.Bio = tf.Bio
		profile.UpdatedAt = now
		return svc.repo.UpdateTutorProfile(profile)
	case errors.Is(err, ErrNotFound):
		return svc.repo.CreateTutorProfile(TutorProfile{
			UserID:    userID,
			Courses:   tf.Courses,
			Rate:      tf.Rate,
			Bio:       tf.Bio,
			UpdatedAt: now,
		})
	default:
		return TutorProfile{}, err
	}
}

func (svc *Service) TutorProfiles() ([]TutorProfile, error) {
	return svc.repo.QueryAllTutorProfiles()
}

// Faculty directory (admin curated)

func (svc *Service) AddFaculty(ff FacultyForm) (Faculty, error) {
	if err := ff.Validate(); err != nil {
		return Faculty{}, err
	}
	return svc.repo.CreateFaculty(Faculty{Name: ff.Name, Title: ff.Title, Office: ff.Office, Email: ff.Email})
}

func (svc *Service) FacultyDirectory() ([]Faculty, error) {
	return svc.repo.QueryAllFaculty()
}

func (svc *Service) UpdateFaculty(id int, ff FacultyForm) (Faculty, error) {
	if err := ff.Validate(); err != nil {
		return Faculty{}, err
	}
	return svc.repo.UpdateFaculty(Faculty{ID: id, Name: ff.Name, Title: ff.Title, Office: ff.Office, Email: ff.Email})
}

func (svc *Service) DeleteFaculty(id int) error {
	return svc.repo.DeleteFaculty(id)
}

func broadcast(actorID int, text, page string) []notification.Intent {
	route := nav.NewRoute(page)
	return []notification.Intent{notification.Broadcasted(actorID, text, &route)}
}
