package quiz

import (
	"errors"
	"time"

	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
)

var (
	ErrNotFound         = errors.New("quiz not found")
	ErrAlreadySubmitted = errors.New("quiz already submitted")
)

type (
	Repository interface {
		CreateQuiz(Quiz) (Quiz, error)
		QueryAllQuizzes() ([]Quiz, error)
		GetQuizByID(id int) (Quiz, error)
		DeleteQuiz(id int) error

		CreateSubmission(Submission) (Submission, error)
		QueryQuizSubmissions(quizID int) ([]Submission, error)
		QueryUserSubmissions(userID int) ([]Submission, error)
		DeleteQuizSubmissions(quizID int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(actorID int, nq NewQuiz) (Quiz, []notification.Intent, error) {
	if err := nq.Validate(); err != nil {
		return Quiz{}, nil, err
	}
	qz, err := svc.repo.CreateQuiz(Quiz{
		Title:     nq.Title,
		Code:      nq.Code,
		AuthorID:  actorID,
		Questions: nq.Questions,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Quiz{}, nil, err
	}
	route := nav.NewRoute(nav.PageQuizzes)
	intents := []notification.Intent{
		notification.Broadcasted(actorID, "New quiz: "+qz.Title, &route),
	}
	return qz, intents, nil
}

func (svc *Service) QueryAll() ([]Quiz, error) {
	return svc.repo.QueryAllQuizzes()
}

func (svc *Service) GetByID(id int) (Quiz, error) {
	return svc.repo.GetQuizByID(id)
}

// Submit scores the answers deterministically and records the attempt.
// A user gets exactly one scored attempt per quiz.
func (svc *Service) Submit(quizID, userID int, answers []*int) (Submission, error) {
	qz, err := svc.repo.GetQuizByID(quizID)
	if err != nil {
		return Submission{}, err
	}

	subs, err := svc.repo.QueryQuizSubmissions(quizID)
	if err != nil {
		return Submission{}, err
	}
	for _, s := range subs {
		if s.UserID == userID {
			return Submission{}, ErrAlreadySubmitted
		}
	}

	return svc.repo.CreateSubmission(Submission{
		QuizID:      quizID,
		UserID:      userID,
		Answers:     answers,
		Score:       qz.Score(answers),
		SubmittedAt: time.Now().UTC(),
	})
}

func (svc *Service) Results(quizID int) ([]Submission, error) {
	if _, err := svc.repo.GetQuizByID(quizID); err != nil {
		return nil, err
	}
	return svc.repo.QueryQuizSubmissions(quizID)
}

func (svc *Service) UserSubmissions(userID int) ([]Submission, error) {
	return svc.repo.QueryUserSubmissions(userID)
}

// Delete removes a quiz and cascades all its submissions. Submissions go
// first, so a failure partway through never leaves submissions pointing at
// a quiz that no longer exists.
func (svc *Service) Delete(id int) error {
	if _, err := svc.repo.GetQuizByID(id); err != nil {
		return err
	}
	if err := svc.repo.DeleteQuizSubmissions(id); err != nil {
		return err
	}
	return svc.repo.DeleteQuiz(id)
}
