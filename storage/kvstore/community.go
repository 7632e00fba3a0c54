package kvstore

import (
	"github.com/trezcool/kitivo/core/forum"
	"github.com/trezcool/kitivo/core/messaging"
	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
	"github.com/trezcool/kitivo/core/poll"
	"github.com/trezcool/kitivo/core/quiz"
	"github.com/trezcool/kitivo/core/settings"
)

// quiz

type quizRepository struct {
	quizzes     *Table[quiz.Quiz]
	submissions *Table[quiz.Submission]
}

var _ quiz.Repository = (*quizRepository)(nil)

func (s *Store) QuizRepository() quiz.Repository {
	return &quizRepository{quizzes: s.quizzes, submissions: s.submissions}
}

func (repo *quizRepository) CreateQuiz(q quiz.Quiz) (quiz.Quiz, error) {
	return repo.quizzes.Insert(q)
}

func (repo *quizRepository) QueryAllQuizzes() ([]quiz.Quiz, error) {
	return repo.quizzes.List(), nil
}

func (repo *quizRepository) GetQuizByID(id int) (quiz.Quiz, error) {
	if q, ok := repo.quizzes.Get(id); ok {
		return q, nil
	}
	return quiz.Quiz{}, quiz.ErrNotFound
}

func (repo *quizRepository) DeleteQuiz(id int) error {
	ok, err := repo.quizzes.Remove(id)
	if err != nil {
		return err
	}
	if !ok {
		return quiz.ErrNotFound
	}
	return nil
}

func (repo *quizRepository) CreateSubmission(sub quiz.Submission) (quiz.Submission, error) {
	return repo.submissions.Insert(sub)
}

func (repo *quizRepository) QueryQuizSubmissions(quizID int) ([]quiz.Submission, error) {
	return repo.submissions.Filter(func(s quiz.Submission) bool { return s.QuizID == quizID }), nil
}

func (repo *quizRepository) QueryUserSubmissions(userID int) ([]quiz.Submission, error) {
	return repo.submissions.Filter(func(s quiz.Submission) bool { return s.UserID == userID }), nil
}

func (repo *quizRepository) DeleteQuizSubmissions(quizID int) error {
	_, err := repo.submissions.RemoveWhere(func(s quiz.Submission) bool { return s.QuizID == quizID })
	return err
}

// poll

type pollRepository struct {
	polls *Table[poll.Poll]
}

var _ poll.Repository = (*pollRepository)(nil)

func (s *Store) PollRepository() poll.Repository {
	return &pollRepository{polls: s.polls}
}

func (repo *pollRepository) CreatePoll(p poll.Poll) (poll.Poll, error) {
	return repo.polls.Insert(p)
}

func (repo *pollRepository) QueryAllPolls() ([]poll.Poll, error) {
	return repo.polls.List(), nil
}

func (repo *pollRepository) GetPollByID(id int) (poll.Poll, error) {
	if p, ok := repo.polls.Get(id); ok {
		return p, nil
	}
	return poll.Poll{}, poll.ErrNotFound
}

func (repo *pollRepository) UpdatePoll(p poll.Poll) (poll.Poll, error) {
	updated, ok, err := repo.polls.Replace(p.ID, p)
	if err != nil {
		return poll.Poll{}, err
	}
	if !ok {
		return poll.Poll{}, poll.ErrNotFound
	}
	return updated, nil
}

func (repo *pollRepository) DeletePoll(id int) error {
	_, err := repo.polls.Remove(id)
	return err
}

// forum

type forumRepository struct {
	threads *Table[forum.Thread]
}

var _ forum.Repository = (*forumRepository)(nil)

func (s *Store) ForumRepository() forum.Repository {
	return &forumRepository{threads: s.threads}
}

func (repo *forumRepository) CreateThread(t forum.Thread) (forum.Thread, error) {
	return repo.threads.Insert(t)
}

func (repo *forumRepository) QueryAllThreads() ([]forum.Thread, error) {
	return repo.threads.List(), nil
}

func (repo *forumRepository) GetThreadByID(id int) (forum.Thread, error) {
	if t, ok := repo.threads.Get(id); ok {
		return t, nil
	}
	return forum.Thread{}, forum.ErrNotFound
}

func (repo *forumRepository) UpdateThread(t forum.Thread) (forum.Thread, error) {
	updated, ok, err := repo.threads.Replace(t.ID, t)
	if err != nil {
		return forum.Thread{}, err
	}
	if !ok {
		return forum.Thread{}, forum.ErrNotFound
	}
	return updated, nil
}

func (repo *forumRepository) DeleteThread(id int) error {
	_, err := repo.threads.Remove(id)
	return err
}

// messaging

type messageRepository struct {
	messages *Table[messaging.Message]
}

var _ messaging.Repository = (*messageRepository)(nil)

func (s *Store) MessageRepository() messaging.Repository {
	return &messageRepository{messages: s.messages}
}

func (repo *messageRepository) CreateMessage(m messaging.Message) (messaging.Message, error) {
	return repo.messages.Insert(m)
}

func (repo *messageRepository) QueryUserMessages(userID int) ([]messaging.Message, error) {
	return repo.messages.Filter(func(m messaging.Message) bool {
		return m.FromID == userID || m.ToID == userID
	}), nil
}

func (repo *messageRepository) GetMessageByID(id int) (messaging.Message, error) {
	if m, ok := repo.messages.Get(id); ok {
		return m, nil
	}
	return messaging.Message{}, messaging.ErrNotFound
}

func (repo *messageRepository) UpdateMessage(m messaging.Message) (messaging.Message, error) {
	updated, ok, err := repo.messages.Replace(m.ID, m)
	if err != nil {
		return messaging.Message{}, err
	}
	if !ok {
		return messaging.Message{}, messaging.ErrNotFound
	}
	return updated, nil
}

// notification

type notificationRepository struct {
	notifications *Table[notification.Notification]
}

var _ notification.Repository = (*notificationRepository)(nil)

func (s *Store) NotificationRepository() notification.Repository {
	return &notificationRepository{notifications: s.notifications}
}

func (repo *notificationRepository) CreateNotification(n notification.Notification) (notification.Notification, error) {
	// the table counter doubles as the creation counter: notifications are
	// never deleted, so IDs are strictly increasing
	return repo.notifications.Insert(n)
}

func (repo *notificationRepository) QueryUserNotifications(userID int) ([]notification.Notification, error) {
	return repo.notifications.Filter(func(n notification.Notification) bool { return n.UserID == userID }), nil
}

func (repo *notificationRepository) GetNotificationByID(id int) (notification.Notification, error) {
	if n, ok := repo.notifications.Get(id); ok {
		return n, nil
	}
	return notification.Notification{}, notification.ErrNotFound
}

func (repo *notificationRepository) UpdateNotification(n notification.Notification) (notification.Notification, error) {
	updated, ok, err := repo.notifications.Replace(n.ID, n)
	if err != nil {
		return notification.Notification{}, err
	}
	if !ok {
		return notification.Notification{}, notification.ErrNotFound
	}
	return updated, nil
}

// settings

type settingsRepository struct {
	settings *Single[settings.Settings]
}

var _ settings.Repository = (*settingsRepository)(nil)

func (s *Store) SettingsRepository() settings.Repository {
	return &settingsRepository{settings: s.settings}
}

func (repo *settingsRepository) GetSettings() (settings.Settings, error) {
	return repo.settings.Get(), nil
}

func (repo *settingsRepository) SaveSettings(s settings.Settings) error {
	return repo.settings.Put(s)
}

// nav

type routeRepository struct {
	lastRoute *Single[nav.Route]
}

var _ nav.Repository = (*routeRepository)(nil)

func (s *Store) RouteRepository() nav.Repository {
	return &routeRepository{lastRoute: s.lastRoute}
}

func (repo *routeRepository) LastRoute() (nav.Route, error) {
	return repo.lastRoute.Get(), nil
}

func (repo *routeRepository) SaveRoute(rt nav.Route) error {
	return repo.lastRoute.Put(rt)
}
