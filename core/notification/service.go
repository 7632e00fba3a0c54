package notification

import (
	"errors"
	"sort"
	"time"

	"github.com/trezcool/kitivo/core/user"
)

var ErrNotFound = errors.New("notification not found")

type (
	Repository interface {
		// CreateNotification assigns the record's ID from a strictly
		// increasing counter; feed ordering is backed by it.
		CreateNotification(n Notification) (Notification, error)
		QueryUserNotifications(userID int) ([]Notification, error)
		GetNotificationByID(id int) (Notification, error)
		UpdateNotification(n Notification) (Notification, error)
	}

	// UserDirectory is the slice of the user store broadcasts iterate.
	UserDirectory interface {
		QueryAllUsers() ([]user.User, error)
	}

	Dispatcher struct {
		repo  Repository
		users UserDirectory
	}
)

func NewDispatcher(repo Repository, users UserDirectory) *Dispatcher {
	return &Dispatcher{repo: repo, users: users}
}

// Dispatch turns domain intents into notification records. Broadcast intents
// fan out to every user except the actor, in user-table iteration order.
func (d *Dispatcher) Dispatch(intents ...Intent) ([]Notification, error) {
	created := make([]Notification, 0, len(intents))
	for _, intent := range intents {
		if !intent.Broadcast {
			n, err := d.notify(intent.TargetID, intent.Text, intent)
			if err != nil {
				return created, err
			}
			created = append(created, n)
			continue
		}

		users, err := d.users.QueryAllUsers()
		if err != nil {
			return created, err
		}
		for _, usr := range users {
			if usr.ID == intent.ActorID {
				continue
			}
			n, err := d.notify(usr.ID, intent.Text, intent)
			if err != nil {
				return created, err
			}
			created = append(created, n)
		}
	}
	return created, nil
}

func (d *Dispatcher) notify(userID int, text string, intent Intent) (Notification, error) {
	return d.repo.CreateNotification(Notification{
		UserID:    userID,
		Text:      text,
		Route:     intent.Route,
		CreatedAt: time.Now().UTC(),
	})
}

// Feed returns a user's notifications, newest first by creation order.
func (d *Dispatcher) Feed(userID int) ([]Notification, error) {
	feed, err := d.repo.QueryUserNotifications(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(feed, func(i, j int) bool { return feed[i].ID > feed[j].ID })
	return feed, nil
}

// MarkRead flips the read flag false→true. There is no un-reading.
// A notification belonging to another user is reported as not found.
func (d *Dispatcher) MarkRead(id, userID int) (Notification, error) {
	n, err := d.repo.GetNotificationByID(id)
	if err != nil {
		return Notification{}, err
	}
	if n.UserID != userID {
		return Notification{}, ErrNotFound
	}
	if n.Read {
		return n, nil
	}
	n.Read = true
	return d.repo.UpdateNotification(n)
}
