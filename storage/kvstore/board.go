package kvstore

import "github.com/trezcool/kitivo/core/board"

type boardRepository struct {
	announcements *Table[board.Announcement]
	events        *Table[board.CalendarEvent]
	jobs          *Table[board.Job]
	lostFound     *Table[board.LostFoundItem]
	notes         *Table[board.PublicNote]
	tutors        *Table[board.TutorProfile]
	faculty       *Table[board.Faculty]
}

var _ board.Repository = (*boardRepository)(nil)

func (s *Store) BoardRepository() board.Repository {
	return &boardRepository{
		announcements: s.announcements,
		events:        s.events,
		jobs:          s.jobs,
		lostFound:     s.lostFound,
		notes:         s.notes,
		tutors:        s.tutors,
		faculty:       s.faculty,
	}
}

func (repo *boardRepository) CreateAnnouncement(a board.Announcement) (board.Announcement, error) {
	return repo.announcements.Insert(a)
}

func (repo *boardRepository) QueryAllAnnouncements() ([]board.Announcement, error) {
	return repo.announcements.List(), nil
}

func (repo *boardRepository) DeleteAnnouncement(id int) error {
	_, err := repo.announcements.Remove(id)
	return err
}

func (repo *boardRepository) CreateEvent(e board.CalendarEvent) (board.CalendarEvent, error) {
	return repo.events.Insert(e)
}

func (repo *boardRepository) QueryAllEvents() ([]board.CalendarEvent, error) {
	return repo.events.List(), nil
}

func (repo *boardRepository) DeleteEvent(id int) error {
	_, err := repo.events.Remove(id)
	return err
}

func (repo *boardRepository) CreateJob(j board.Job) (board.Job, error) {
	return repo.jobs.Insert(j)
}

func (repo *boardRepository) QueryAllJobs() ([]board.Job, error) {
	return repo.jobs.List(), nil
}

func (repo *boardRepository) DeleteJob(id int) error {
	_, err := repo.jobs.Remove(id)
	return err
}

func (repo *boardRepository) CreateLostFoundItem(item board.LostFoundItem) (board.LostFoundItem, error) {
	return repo.lostFound.Insert(item)
}

func (repo *boardRepository) QueryAllLostFoundItems() ([]board.LostFoundItem, error) {
	return repo.lostFound.List(), nil
}

func (repo *boardRepository) DeleteLostFoundItem(id int) error {
	_, err := repo.lostFound.Remove(id)
	return err
}

func (repo *boardRepository) CreateNote(n board.PublicNote) (board.PublicNote, error) {
	return repo.notes.Insert(n)
}

func (repo *boardRepository) QueryAllNotes() ([]board.PublicNote, error) {
	return repo.notes.List(), nil
}

func (repo *boardRepository) DeleteNote(id int) error {
	_, err := repo.notes.Remove(id)
	return err
}

func (repo *boardRepository) GetTutorProfileByUser(userID int) (board.TutorProfile, error) {
	profile, ok := repo.tutors.Find(func(t board.TutorProfile) bool { return t.UserID == userID })
	if !ok {
		return board.TutorProfile{}, board.ErrNotFound
	}
	return profile, nil
}

func (repo *boardRepository) CreateTutorProfile(t board.TutorProfile) (board.TutorProfile, error) {
	return repo.tutors.Insert(t)
}

func (repo *boardRepository) UpdateTutorProfile(t board.TutorProfile) (board.TutorProfile, error) {
	updated, ok, err := repo.tutors.Replace(t.ID, t)
	if err != nil {
		return board.TutorProfile{}, err
	}
	if !ok {
		return board.TutorProfile{}, board.ErrNotFound
	}
	return updated, nil
}

func (repo *boardRepository) QueryAllTutorProfiles() ([]board.TutorProfile, error) {
	return repo.tutors.List(), nil
}

func (repo *boardRepository) CreateFaculty(f board.Faculty) (board.Faculty, error) {
	return repo.faculty.Insert(f)
}

func (repo *boardRepository) QueryAllFaculty() ([]board.Faculty, error) {
	return repo.faculty.List(), nil
}

func (repo *boardRepository) UpdateFaculty(f board.Faculty) (board.Faculty, error) {
	updated, ok, err := repo.faculty.Replace(f.ID, f)
	if err != nil {
		return board.Faculty{}, err
	}
	if !ok {
		return board.Faculty{}, board.ErrNotFound
	}
	return updated, nil
}

func (repo *boardRepository) DeleteFaculty(id int) error {
	_, err := repo.faculty.Remove(id)
	return err
}
