package forum

import (
	"errors"
	"strconv"
	"time"

	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
)

var ErrNotFound = errors.New("thread not found")

type (
	Repository interface {
		CreateThread(Thread) (Thread, error)
		QueryAllThreads() ([]Thread, error)
		GetThreadByID(id int) (Thread, error)
		UpdateThread(Thread) (Thread, error)
		DeleteThread(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(actorID int, nt NewThread) (Thread, []notification.Intent, error) {
	if err := nt.Validate(); err != nil {
		return Thread{}, nil, err
	}
	now := time.Now().UTC()
	t, err := svc.repo.CreateThread(Thread{
		Title:     nt.Title,
		AuthorID:  actorID,
		Posts:     []Post{{AuthorID: actorID, Body: nt.Body, CreatedAt: now}},
		CreatedAt: now,
	})
	if err != nil {
		return Thread{}, nil, err
	}
	route := nav.NewRoute(nav.PageForumThread, "id", strconv.Itoa(t.ID))
	intents := []notification.Intent{
		notification.Broadcasted(actorID, "New forum thread: "+t.Title, &route),
	}
	return t, intents, nil
}

func (svc *Service) QueryAll() ([]Thread, error) {
	return svc.repo.QueryAllThreads()
}

func (svc *Service) GetByID(id int) (Thread, error) {
	return svc.repo.GetThreadByID(id)
}

// Reply appends a post and targets every distinct prior author in the
// thread except the replier.
func (svc *Service) Reply(threadID, actorID int, body string) (Thread, []notification.Intent, error) {
	body = core.CleanString(body)
	if body == "" {
		return Thread{}, nil, core.NewValidationError(nil, core.FieldError{Field: "body", Error: "this field is required"})
	}

	t, err := svc.repo.GetThreadByID(threadID)
	if err != nil {
		return Thread{}, nil, err
	}

	recipients := t.PriorAuthors(actorID)
	t.Posts = append(t.Posts, Post{AuthorID: actorID, Body: body, CreatedAt: time.Now().UTC()})
	t, err = svc.repo.UpdateThread(t)
	if err != nil {
		return Thread{}, nil, err
	}

	route := nav.NewRoute(nav.PageForumThread, "id", strconv.Itoa(t.ID))
	intents := make([]notification.Intent, 0, len(recipients))
	for _, uid := range recipients {
		intents = append(intents, notification.Targeted(uid, "New reply in: "+t.Title, &route))
	}
	return t, intents, nil
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteThread(id)
}
