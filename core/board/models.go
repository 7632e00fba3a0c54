// Package board holds the department's bulletin and marketplace records:
// announcements, calendar events, job ads, lost & found, public notes,
// tutor profiles and the faculty directory.
package board

import (
	"time"

	"github.com/trezcool/kitivo/core"
)

type Announcement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type CalendarEvent struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Venue     string    `json:"venue"`
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type Job struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	AuthorID    int       `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

// Lost & found kinds
const (
	KindLost  = "lost"
	KindFound = "found"
)

type LostFoundItem struct {
	ID          int       `json:"id"`
	Kind        string    `json:"kind"` // lost | found
	Item        string    `json:"item"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	AuthorID    int       `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

type PublicNote struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	FileName  string    `json:"file_name,omitempty"`
	Content   string    `json:"content,omitempty"` // base64 attachment
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// TutorProfile is upserted per user: one profile per tutor.
type TutorProfile struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Courses   []string  `json:"courses"` // course codes offered
	Rate      string    `json:"rate"`
	Bio       string    `json:"bio"`
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

type Faculty struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Office string `json:"office"`
	Email  string `json:"email"`
}

// Forms

type NewAnnouncement struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

func (na *NewAnnouncement) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Body = core.CleanString(na.Body)
	return core.Validate.Struct(na)
}

type NewCalendarEvent struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Venue string `json:"venue"`
}

func (ne *NewCalendarEvent) Validate() error {
	ne.Title = core.CleanString(ne.Title)
	ne.Date = core.CleanString(ne.Date)
	ne.Venue = core.CleanString(ne.Venue)
	return core.Validate.Struct(ne)
}

type NewJob struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Contact     string `json:"contact" validate:"required"`
}

func (nj *NewJob) Validate() error {
	nj.Title = core.CleanString(nj.Title)
	nj.Description = core.CleanString(nj.Description)
	nj.Contact = core.CleanString(nj.Contact)
	return core.Validate.Struct(nj)
}

type NewLostFoundItem struct {
	Kind        string `json:"kind" validate:"required,oneof=lost found"`
	Item        string `json:"item" validate:"required"`
	Description string `json:"description"`
	Contact     string `json:"contact" validate:"required"`
}

func (nl *NewLostFoundItem) Validate() error {
	nl.Kind = core.CleanString(nl.Kind, true /* lower */)
	nl.Item = core.CleanString(nl.Item)
	nl.Description = core.CleanString(nl.Description)
	nl.Contact = core.CleanString(nl.Contact)
	return core.Validate.Struct(nl)
}

type NewPublicNote struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body"`
	FileName string `json:"file_name"`
	Content  string `json:"content"` // base64
}

func (nn *NewPublicNote) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Body = core.CleanString(nn.Body)
	return core.Validate.Struct(nn)
}

type TutorProfileForm struct {
	Courses []string `json:"courses" validate:"required,min=1"`
	Rate    string   `json:"rate"`
	Bio     string   `json:"bio"`
}

func (tf *TutorProfileForm) Validate() error {
	for i, c := range tf.Courses {
		tf.Courses[i] = core.CleanString(c)
	}
	tf.Rate = core.CleanString(tf.Rate)
	tf.Bio = core.CleanString(tf.Bio)
	return core.Validate.Struct(tf)
}

type FacultyForm struct {
	Name   string `json:"name" validate:"required"`
	Title  string `json:"title"`
	Office string `json:"office"`
	Email  string `json:"email" validate:"omitempty,email"`
}

func (ff *FacultyForm) Validate() error {
	ff.Name = core.CleanString(ff.Name)
	ff.Title = core.CleanString(ff.Title)
	ff.Office = core.CleanString(ff.Office)
	ff.Email = core.CleanString(ff.Email, true /* lower */)
	return core.Validate.Struct(ff)
}
