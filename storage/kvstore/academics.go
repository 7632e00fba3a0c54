package kvstore

import "github.com/trezcool/kitivo/core/academics"

type academicsRepository struct {
	catalog      *Single[academics.Catalog]
	plans        *Table[academics.CoursePlan]
	gpaEntries   *Table[academics.GpaEntry]
	customGrades *Table[academics.CustomGrade]
	assignments  *Table[academics.Assignment]
	resources    *Table[academics.Resource]
	flashcards   *Table[academics.FlashcardSet]
}

var _ academics.Repository = (*academicsRepository)(nil)

func (s *Store) AcademicsRepository() academics.Repository {
	return &academicsRepository{
		catalog:      s.catalog,
		plans:        s.plans,
		gpaEntries:   s.gpaEntries,
		customGrades: s.customGrades,
		assignments:  s.assignments,
		resources:    s.resources,
		flashcards:   s.flashcards,
	}
}

func (repo *academicsRepository) GetCatalog() (academics.Catalog, error) {
	return repo.catalog.Get(), nil
}

func (repo *academicsRepository) SaveCatalog(cat academics.Catalog) error {
	return repo.catalog.Put(cat)
}

func (repo *academicsRepository) GetPlan(userID int, semester string) (academics.CoursePlan, error) {
	plan, ok := repo.plans.Find(func(p academics.CoursePlan) bool {
		return p.UserID == userID && p.Semester == semester
	})
	if !ok {
		return academics.CoursePlan{}, academics.ErrNotFound
	}
	return plan, nil
}

func (repo *academicsRepository) CreatePlan(plan academics.CoursePlan) (academics.CoursePlan, error) {
	return repo.plans.Insert(plan)
}

func (repo *academicsRepository) UpdatePlan(plan academics.CoursePlan) (academics.CoursePlan, error) {
	updated, ok, err := repo.plans.Replace(plan.ID, plan)
	if err != nil {
		return academics.CoursePlan{}, err
	}
	if !ok {
		return academics.CoursePlan{}, academics.ErrNotFound
	}
	return updated, nil
}

func (repo *academicsRepository) QueryUserPlans(userID int) ([]academics.CoursePlan, error) {
	return repo.plans.Filter(func(p academics.CoursePlan) bool { return p.UserID == userID }), nil
}

func (repo *academicsRepository) CreateGpaEntry(e academics.GpaEntry) (academics.GpaEntry, error) {
	return repo.gpaEntries.Insert(e)
}

func (repo *academicsRepository) QueryUserGpaEntries(userID int) ([]academics.GpaEntry, error) {
	return repo.gpaEntries.Filter(func(e academics.GpaEntry) bool { return e.UserID == userID }), nil
}

func (repo *academicsRepository) DeleteGpaEntry(id int) error {
	_, err := repo.gpaEntries.Remove(id)
	return err
}

func (repo *academicsRepository) CreateCustomGrade(g academics.CustomGrade) (academics.CustomGrade, error) {
	return repo.customGrades.Insert(g)
}

func (repo *academicsRepository) QueryUserCustomGrades(userID int) ([]academics.CustomGrade, error) {
	return repo.customGrades.Filter(func(g academics.CustomGrade) bool { return g.UserID == userID }), nil
}

func (repo *academicsRepository) DeleteCustomGrade(id int) error {
	_, err := repo.customGrades.Remove(id)
	return err
}

func (repo *academicsRepository) CreateAssignment(a academics.Assignment) (academics.Assignment, error) {
	return repo.assignments.Insert(a)
}

func (repo *academicsRepository) QueryAllAssignments() ([]academics.Assignment, error) {
	return repo.assignments.List(), nil
}

func (repo *academicsRepository) DeleteAssignment(id int) error {
	_, err := repo.assignments.Remove(id)
	return err
}

func (repo *academicsRepository) CreateResource(r academics.Resource) (academics.Resource, error) {
	return repo.resources.Insert(r)
}

func (repo *academicsRepository) QueryAllResources() ([]academics.Resource, error) {
	return repo.resources.List(), nil
}

func (repo *academicsRepository) DeleteResource(id int) error {
	_, err := repo.resources.Remove(id)
	return err
}

func (repo *academicsRepository) CreateFlashcardSet(f academics.FlashcardSet) (academics.FlashcardSet, error) {
	return repo.flashcards.Insert(f)
}

func (repo *academicsRepository) GetFlashcardSetByID(id int) (academics.FlashcardSet, error) {
	if set, ok := repo.flashcards.Get(id); ok {
		return set, nil
	}
	return academics.FlashcardSet{}, academics.ErrNotFound
}

func (repo *academicsRepository) QueryUserFlashcardSets(ownerID int) ([]academics.FlashcardSet, error) {
	return repo.flashcards.Filter(func(f academics.FlashcardSet) bool { return f.OwnerID == ownerID }), nil
}

func (repo *academicsRepository) UpdateFlashcardSet(f academics.FlashcardSet) (academics.FlashcardSet, error) {
	updated, ok, err := repo.flashcards.Replace(f.ID, f)
	if err != nil {
		return academics.FlashcardSet{}, err
	}
	if !ok {
		return academics.FlashcardSet{}, academics.ErrNotFound
	}
	return updated, nil
}

func (repo *academicsRepository) DeleteFlashcardSet(id int) error {
	_, err := repo.flashcards.Remove(id)
	return err
}
