// Package messaging holds directed user-to-user messages.
package messaging

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
)

var ErrNotFound = errors.New("message not found")

type Message struct {
	ID        int       `json:"id"`
	FromID    int       `json:"from_id"`
	ToID      int       `json:"to_id"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

type (
	Repository interface {
		CreateMessage(Message) (Message, error)
		QueryUserMessages(userID int) ([]Message, error) // messages involving userID, either direction
		GetMessageByID(id int) (Message, error)
		UpdateMessage(Message) (Message, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Send(fromID, toID int, body string) (Message, []notification.Intent, error) {
	body = core.CleanString(body)
	if body == "" {
		return Message{}, nil, core.NewValidationError(nil, core.FieldError{Field: "body", Error: "this field is required"})
	}

	msg, err := svc.repo.CreateMessage(Message{
		FromID:    fromID,
		ToID:      toID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Message{}, nil, err
	}

	route := nav.NewRoute(nav.PageMessages, "with", strconv.Itoa(fromID))
	intents := []notification.Intent{
		notification.Targeted(toID, "New message", &route),
	}
	return msg, intents, nil
}

// Conversation returns the messages between two users, oldest first.
func (svc *Service) Conversation(userID, otherID int) ([]Message, error) {
	msgs, err := svc.repo.QueryUserMessages(userID)
	if err != nil {
		return nil, err
	}
	conv := msgs[:0:0]
	for _, m := range msgs {
		if (m.FromID == userID && m.ToID == otherID) || (m.FromID == otherID && m.ToID == userID) {
			conv = append(conv, m)
		}
	}
	sort.Slice(conv, func(i, j int) bool { return conv[i].ID < conv[j].ID })
	return conv, nil
}

// Partners returns the distinct counter-party ids appearing in any message
// involving the user.
func (svc *Service) Partners(userID int) ([]int, error) {
	msgs, err := svc.repo.QueryUserMessages(userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]struct{})
	partners := make([]int, 0, len(msgs))
	for _, m := range msgs {
		other := m.FromID
		if other == userID {
			other = m.ToID
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		partners = append(partners, other)
	}
	return partners, nil
}

// MarkRead flips the read flag. Only the recipient may read a message;
// anyone else sees it as not found.
func (svc *Service) MarkRead(id, userID int) (Message, error) {
	msg, err := svc.repo.GetMessageByID(id)
	if err != nil {
		return Message{}, err
	}
	if msg.ToID != userID {
		return Message{}, ErrNotFound
	}
	if msg.Read {
		return msg, nil
	}
	msg.Read = true
	return svc.repo.UpdateMessage(msg)
}
