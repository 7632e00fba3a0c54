package academics

import (
	"errors"
	"fmt"
	"time"

	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrNotFound       = errors.New("record not found")
)

// gradePoints is the fixed letter-grade→point mapping.
var gradePoints = map[string]int{"A": 5, "B": 4, "C": 3, "D": 2, "E": 1, "F": 0}

// ComputeGPA returns (Σ point×units)/(Σ units) to 2 decimals, "0.00" when
// the unit sum is 0. Entry order does not matter.
func ComputeGPA(entries []GpaEntry) string {
	var points, units int
	for _, e := range entries {
		points += gradePoints[e.Grade] * e.Units
		units += e.Units
	}
	if units == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(points)/float64(units))
}

// ComputeCourseAverage returns (Σ score)/(Σ total)×100 to 2 decimals, or
// "N/A" when the total sum is 0.
func ComputeCourseAverage(grades []CustomGrade) string {
	var score, total float64
	for _, g := range grades {
		score += g.Score
		total += g.Total
	}
	if total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", score/total*100)
}

type (
	Repository interface {
		GetCatalog() (Catalog, error)
		SaveCatalog(Catalog) error

		GetPlan(userID int, semester string) (CoursePlan, error)
		CreatePlan(CoursePlan) (CoursePlan, error)
		UpdatePlan(CoursePlan) (CoursePlan, error)
		QueryUserPlans(userID int) ([]CoursePlan, error)

		CreateGpaEntry(GpaEntry) (GpaEntry, error)
		QueryUserGpaEntries(userID int) ([]GpaEntry, error)
		DeleteGpaEntry(id int) error

		CreateCustomGrade(CustomGrade) (CustomGrade, error)
		QueryUserCustomGrades(userID int) ([]CustomGrade, error)
		DeleteCustomGrade(id int) error

		CreateAssignment(Assignment) (Assignment, error)
		QueryAllAssignments() ([]Assignment, error)
		DeleteAssignment(id int) error

		CreateResource(Resource) (Resource, error)
		QueryAllResources() ([]Resource, error)
		DeleteResource(id int) error

		CreateFlashcardSet(FlashcardSet) (FlashcardSet, error)
		GetFlashcardSetByID(id int) (FlashcardSet, error)
		QueryUserFlashcardSets(ownerID int) ([]FlashcardSet, error)
		UpdateFlashcardSet(FlashcardSet) (FlashcardSet, error)
		DeleteFlashcardSet(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Catalog

func (svc *Service) Catalog() (Catalog, error) {
	return svc.repo.GetCatalog()
}

func (svc *Service) CourseCodes() ([]string, error) {
	cat, err := svc.repo.GetCatalog()
	if err != nil {
		return nil, err
	}
	return cat.Codes(), nil
}

func (svc *Service) AddCourse(nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}
	cat, err := svc.repo.GetCatalog()
	if err != nil {
		return Course{}, err
	}

	course := Course{ID: nextCourseID(cat), Code: nc.Code, Title: nc.Title, Units: nc.Units}
	if cat[nc.Level] == nil {
		cat[nc.Level] = make(map[string][]Course)
	}
	cat[nc.Level][nc.Term] = append(cat[nc.Level][nc.Term], course)
	if err = svc.repo.SaveCatalog(cat); err != nil {
		return Course{}, err
	}
	return course, nil
}

func (svc *Service) UpdateCourse(id int, nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}
	cat, err := svc.repo.GetCatalog()
	if err != nil {
		return Course{}, err
	}

	for level, terms := range cat {
		for term, courses := range terms {
			for i, c := range courses {
				if c.ID != id {
					continue
				}
				c.Code, c.Title, c.Units = nc.Code, nc.Title, nc.Units
				if level == nc.Level && term == nc.Term {
					courses[i] = c
				} else {
					// moved across the grouping; re-home it
					cat[level][term] = append(courses[:i], courses[i+1:]...)
					if cat[nc.Level] == nil {
						cat[nc.Level] = make(map[string][]Course)
					}
					cat[nc.Level][nc.Term] = append(cat[nc.Level][nc.Term], c)
				}
				if err = svc.repo.SaveCatalog(cat); err != nil {
					return Course{}, err
				}
				return c, nil
			}
		}
	}
	return Course{}, ErrCourseNotFound
}

func (svc *Service) RemoveCourse(id int) error {
	cat, err := svc.repo.GetCatalog()
	if err != nil {
		return err
	}
	for level, terms := range cat {
		for term, courses := range terms {
			for i, c := range courses {
				if c.ID == id {
					cat[level][term] = append(courses[:i], courses[i+1:]...)
					return svc.repo.SaveCatalog(cat)
				}
			}
		}
	}
	return ErrCourseNotFound
}

// Course plans

// UpsertPlan updates the (user, semester) plan in place if present, else
// inserts it.
func (svc *Service) UpsertPlan(userID int, semester string, codes []string) (CoursePlan, error) {
	semester = core.CleanString(semester)
	if semester == "" {
		return CoursePlan{}, core.NewValidationError(nil, core.FieldError{Field: "semester", Error: "this field is required"})
	}

	plan, err := svc.repo.GetPlan(userID, semester)
	switch {
	case err == nil:
		plan.Codes = codes
		return svc.repo.UpdatePlan(plan)
	case errors.Is(err, ErrNotFound):
		return svc.repo.CreatePlan(CoursePlan{UserID: userID, Semester: semester, Codes: codes})
	default:
		return CoursePlan{}, err
	}
}

func (svc *Service) UserPlans(userID int) ([]CoursePlan, error) {
	return svc.repo.QueryUserPlans(userID)
}

// GPA

func (svc *Service) AddGpaEntry(userID int, ne NewGpaEntry) (GpaEntry, error) {
	if err := ne.Validate(); err != nil {
		return GpaEntry{}, err
	}
	return svc.repo.CreateGpaEntry(GpaEntry{
		UserID:   userID,
		Code:     ne.Code,
		Grade:    ne.Grade,
		Units:    ne.Units,
		Semester: ne.Semester,
	})
}

func (svc *Service) UserGpaEntries(userID int) ([]GpaEntry, error) {
	return svc.repo.QueryUserGpaEntries(userID)
}

// SemesterGPA computes the GPA over one semester's entries; CumulativeGPA
// over all of them.
func (svc *Service) SemesterGPA(userID int, semester string) (string, error) {
	entries, err := svc.repo.QueryUserGpaEntries(userID)
	if err != nil {
		return "", err
	}
	filtered := entries[:0:0]
	for _, e := range entries {
		if e.Semester == semester {
			filtered = append(filtered, e)
		}
	}
	return ComputeGPA(filtered), nil
}

func (svc *Service) CumulativeGPA(userID int) (string, error) {
	entries, err := svc.repo.QueryUserGpaEntries(userID)
	if err != nil {
		return "", err
	}
	return ComputeGPA(entries), nil
}

func (svc *Service) DeleteGpaEntry(id int) error {
	return svc.repo.DeleteGpaEntry(id)
}

// Custom grades

func (svc *Service) AddCustomGrade(userID int, ng NewCustomGrade) (CustomGrade, error) {
	if err := ng.Validate(); err != nil {
		return CustomGrade{}, err
	}
	return svc.repo.CreateCustomGrade(CustomGrade{
		UserID: userID,
		Code:   ng.Code,
		Label:  ng.Label,
		Score:  ng.Score,
		Total:  ng.Total,
	})
}

func (svc *Service) UserCustomGrades(userID int) ([]CustomGrade, error) {
	return svc.repo.QueryUserCustomGrades(userID)
}

// CourseAverage computes the average over a user's grades for one course.
func (svc *Service) CourseAverage(userID int, code string) (string, error) {
	grades, err := svc.repo.QueryUserCustomGrades(userID)
	if err != nil {
		return "", err
	}
	filtered := grades[:0:0]
	for _, g := range grades {
		if g.Code == code {
			filtered = append(filtered, g)
		}
	}
	return ComputeCourseAverage(filtered), nil
}

func (svc *Service) DeleteCustomGrade(id int) error {
	return svc.repo.DeleteCustomGrade(id)
}

// Assignments & resources (broadcast on creation)

func (svc *Service) CreateAssignment(actorID int, na NewAssignment) (Assignment, []notification.Intent, error) {
	if err := na.Validate(); err != nil {
		return Assignment{}, nil, err
	}
	asg, err := svc.repo.CreateAssignment(Assignment{
		Code:      na.Code,
		Title:     na.Title,
		Details:   na.Details,
		DueDate:   na.DueDate,
		AuthorID:  actorID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Assignment{}, nil, err
	}
	route := nav.NewRoute(nav.PageAssignments)
	intents := []notification.Intent{
		notification.Broadcasted(actorID, "New assignment: "+asg.Title+" ("+asg.Code+")", &route),
	}
	return asg, intents, nil
}

func (svc *Service) Assignments() ([]Assignment, error) {
	return svc.repo.QueryAllAssignments()
}

func (svc *Service) DeleteAssignment(id int) error {
	return svc.repo.DeleteAssignment(id)
}

func (svc *Service) CreateResource(actorID int, nr NewResource) (Resource, []notification.Intent, error) {
	if err := nr.Validate(); err != nil {
		return Resource{}, nil, err
	}
	res, err := svc.repo.CreateResource(Resource{
		Code:      nr.Code,
		Title:     nr.Title,
		FileName:  nr.FileName,
		Content:   nr.Content,
		AuthorID:  actorID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Resource{}, nil, err
	}
	route := nav.NewRoute(nav.PageResources)
	intents := []notification.Intent{
		notification.Broadcasted(actorID, "New resource: "+res.Title+" ("+res.Code+")", &route),
	}
	return res, intents, nil
}

func (svc *Service) Resources() ([]Resource, error) {
	return svc.repo.QueryAllResources()
}

func (svc *Service) DeleteResource(id int) error {
	return svc.repo.DeleteResource(id)
}

// Flashcards

func (svc *Service) CreateFlashcardSet(ownerID int, title string, cards []Flashcard) (FlashcardSet, error) {
	title = core.CleanString(title)
	if title == "" {
		return FlashcardSet{}, core.NewValidationError(nil, core.FieldError{Field: "title", Error: "this field is required"})
	}
	return svc.repo.CreateFlashcardSet(FlashcardSet{OwnerID: ownerID, Title: title, Cards: cards})
}

func (svc *Service) UserFlashcardSets(ownerID int) ([]FlashcardSet, error) {
	return svc.repo.QueryUserFlashcardSets(ownerID)
}

func (svc *Service) UpdateFlashcardSet(id int, title string, cards []Flashcard) (FlashcardSet, error) {
	set, err := svc.repo.GetFlashcardSetByID(id)
	if err != nil {
		return FlashcardSet{}, err
	}
	if title = core.CleanString(title); title != "" {
		set.Title = title
	}
	set.Cards = cards
	return svc.repo.UpdateFlashcardSet(set)
}

func (svc *Service) DeleteFlashcardSet(id int) error {
	return svc.repo.DeleteFlashcardSet(id)
}

func nextCourseID(cat Catalog) int {
	max := 0
	for _, terms := range cat {
		for _, courses := range terms {
			for _, c := range courses {
				if c.ID > max {
					max = c.ID
				}
			}
		}
	}
	return max + 1
}
