package academics

import (
	"sort"
	"strings"
	"time"

	"github.com/trezcool/kitivo/core"
)

type Course struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
	Units int    `json:"units"`
}

// Catalog groups courses by level then term. Mutation is by direct keyed
// access, never by cloning the whole tree.
type Catalog map[string]map[string][]Course

// Codes returns the sorted set of distinct course codes across the catalog,
// used as the selection list everywhere a course ref is picked.
func (c Catalog) Codes() []string {
	seen := make(map[string]struct{})
	for _, terms := range c {
		for _, courses := range terms {
			for _, course := range courses {
				seen[course.Code] = struct{}{}
			}
		}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CoursePlan holds a user's selected course codes for one semester label.
// At most one plan exists per (user, semester).
type CoursePlan struct {
	ID       int      `json:"id"`
	UserID   int      `json:"user_id"`
	Semester string   `json:"semester"`
	Codes    []string `json:"codes"`
}

type GpaEntry struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	Code     string `json:"code"`
	Grade    string `json:"grade"` // A..F
	Units    int    `json:"units"`
	Semester string `json:"semester"`
}

// CustomGrade is one scored item (test, lab, ...) a user tracks per course.
type CustomGrade struct {
	ID     int     `json:"id"`
	UserID int     `json:"user_id"`
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Total  float64 `json:"total"`
}

type Assignment struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	DueDate   string    `json:"due_date"`
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type Resource struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	FileName  string    `json:"file_name"`
	Content   string    `json:"content"` // base64
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type FlashcardSet struct {
	ID      int         `json:"id"`
	OwnerID int         `json:"owner_id"`
	Title   string      `json:"title"`
	Cards   []Flashcard `json:"cards"`
}

// Forms

type NewCourse struct {
	Level string `json:"level" validate:"required"`
	Term  string `json:"term" validate:"required"`
	Code  string `json:"code" validate:"required"`
	Title string `json:"title" validate:"required"`
	Units int    `json:"units" validate:"required,min=1"`
}

func (nc *NewCourse) Validate() error {
	nc.Level = core.CleanString(nc.Level)
	nc.Term = core.CleanString(nc.Term)
	nc.Code = core.CleanString(nc.Code)
	nc.Title = core.CleanString(nc.Title)
	return core.Validate.Struct(nc)
}

type NewAssignment struct {
	Code    string `json:"code" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Details string `json:"details"`
	DueDate string `json:"due_date"`
}

func (na *NewAssignment) Validate() error {
	na.Code = core.CleanString(na.Code)
	na.Title = core.CleanString(na.Title)
	return core.Validate.Struct(na)
}

type NewResource struct {
	Code     string `json:"code" validate:"required"`
	Title    string `json:"title" validate:"required"`
	FileName string `json:"file_name"`
	Content  string `json:"content"` // base64
}

func (nr *NewResource) Validate() error {
	nr.Code = core.CleanString(nr.Code)
	nr.Title = core.CleanString(nr.Title)
	return core.Validate.Struct(nr)
}

type NewGpaEntry struct {
	Code     string `json:"code" validate:"required"`
	Grade    string `json:"grade" validate:"required,oneof=A B C D E F"`
	Units    int    `json:"units" validate:"required,min=1"`
	Semester string `json:"semester" validate:"required"`
}

func (ne *NewGpaEntry) Validate() error {
	ne.Code = core.CleanString(ne.Code)
	ne.Grade = strings.ToUpper(core.CleanString(ne.Grade))
	ne.Semester = core.CleanString(ne.Semester)
	return core.Validate.Struct(ne)
}

type NewCustomGrade struct {
	Code  string  `json:"code" validate:"required"`
	Label string  `json:"label" validate:"required"`
	Score float64 `json:"score" validate:"min=0"`
	Total float64 `json:"total" validate:"min=0"`
}

func (ng *NewCustomGrade) Validate() error {
	ng.Code = core.CleanString(ng.Code)
	ng.Label = core.CleanString(ng.Label)
	return core.Validate.Struct(ng)
}
