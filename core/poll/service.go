package poll

import (
	"errors"
	"time"

	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
)

var (
	ErrNotFound      = errors.New("poll not found")
	ErrInvalidOption = errors.New("invalid poll option")
)

type (
	Repository interface {
		CreatePoll(Poll) (Poll, error)
		QueryAllPolls() ([]Poll, error)
		GetPollByID(id int) (Poll, error)
		UpdatePoll(Poll) (Poll, error)
		DeletePoll(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(actorID int, np NewPoll) (Poll, []notification.Intent, error) {
	if err := np.Validate(); err != nil {
		return Poll{}, nil, err
	}
	opts := make([]Option, len(np.Options))
	for i, text := range np.Options {
		opts[i] = Option{Text: text}
	}
	p, err := svc.repo.CreatePoll(Poll{
		Question:  np.Question,
		AuthorID:  actorID,
		Options:   opts,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Poll{}, nil, err
	}
	route := nav.NewRoute(nav.PagePolls)
	intents := []notification.Intent{
		notification.Broadcasted(actorID, "New poll: "+p.Question, &route),
	}
	return p, intents, nil
}

func (svc *Service) QueryAll() ([]Poll, error) {
	return svc.repo.QueryAllPolls()
}

func (svc *Service) GetByID(id int) (Poll, error) {
	return svc.repo.GetPollByID(id)
}

// CastVote applies the at-most-one-vote invariant and persists the poll.
func (svc *Service) CastVote(pollID, voterID, optionIdx int) (Poll, error) {
	p, err := svc.repo.GetPollByID(pollID)
	if err != nil {
		return Poll{}, err
	}
	if err = p.CastVote(voterID, optionIdx); err != nil {
		return Poll{}, err
	}
	return svc.repo.UpdatePoll(p)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeletePoll(id)
}
