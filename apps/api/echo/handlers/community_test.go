package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/kitivo/core/forum"
	"github.com/trezcool/kitivo/core/messaging"
	"github.com/trezcool/kitivo/core/poll"
	"github.com/trezcool/kitivo/core/quiz"
	"github.com/trezcool/kitivo/core/user"
)

func Test_communityApi_quizLifecycle(t *testing.T) {
	env := setupAPI(t)
	president := createUser(t, env, "prez", user.RoleClassPresident)
	student := createUser(t, env, "stud", user.RoleStudent)
	prezToken := getToken(t, president)
	studToken := getToken(t, student)

	// only admins and presidents may create quizzes
	body := marshallObj(t, quiz.NewQuiz{
		Title: "CSC101 revision",
		Questions: []quiz.Question{
			{Prompt: "q1", Options: []string{"a", "b"}, Answer: 0},
			{Prompt: "q2", Options: []string{"a", "b"}, Answer: 1},
		},
	})
	req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes", studToken, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodPost, "/v1/quizzes", prezToken, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var qz quiz.Quiz
	decodeBody(t, rec, &qz)

	// creation broadcast reached the student
	feed, err := env.dispatcher.Feed(student.ID)
	if err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}
	assert.Len(t, feed, 1)

	// first submission scores, second conflicts
	answers := marshallObj(t, SubmitQuizRequest{Answers: []*int{intPtr(0), nil}})
	req, rec = newAuthRequest(http.MethodPost, "/v1/quizzes/"+itoa(qz.ID)+"/submit", studToken, answers)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var sub quiz.Submission
	decodeBody(t, rec, &sub)
	assert.Equal(t, 1, sub.Score)

	req, rec = newAuthRequest(http.MethodPost, "/v1/quizzes/"+itoa(qz.ID)+"/submit", studToken, answers)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// results are restricted
	req, rec = newAuthRequest(http.MethodGet, "/v1/quizzes/"+itoa(qz.ID)+"/results", studToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodGet, "/v1/quizzes/"+itoa(qz.ID)+"/results", prezToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_communityApi_pollVoting(t *testing.T) {
	env := setupAPI(t)
	president := createUser(t, env, "prez", user.RoleClassPresident)
	student := createUser(t, env, "stud", user.RoleStudent)
	studToken := getToken(t, student)

	body := marshallObj(t, poll.NewPoll{Question: "Best lab day?", Options: []string{"Mon", "Wed"}})
	req, rec := newAuthRequest(http.MethodPost, "/v1/polls", getToken(t, president), body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var pl poll.Poll
	decodeBody(t, rec, &pl)

	vote := func(idx int) *poll.Poll {
		req, rec = newAuthRequest(http.MethodPost, "/v1/polls/"+itoa(pl.ID)+"/vote", studToken, marshallObj(t, VoteRequest{Option: idx}))
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			return nil
		}
		var got poll.Poll
		decodeBody(t, rec, &got)
		return &got
	}

	got := vote(0)
	if assert.NotNil(t, got) {
		assert.Equal(t, 1, got.TotalVotes())
	}

	// changing the vote never inflates the totals
	got = vote(1)
	if assert.NotNil(t, got) {
		assert.Equal(t, 1, got.TotalVotes())
		assert.Empty(t, got.Options[0].Votes)
		assert.Equal(t, []int{student.ID}, got.Options[1].Votes)
	}

	// out-of-range option
	req, rec = newAuthRequest(http.MethodPost, "/v1/polls/"+itoa(pl.ID)+"/vote", studToken, marshallObj(t, VoteRequest{Option: 9}))
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_communityApi_forumReplyNotifiesPriorAuthors(t *testing.T) {
	env := setupAPI(t)
	opener := createUser(t, env, "opener", user.RoleStudent)
	replier := createUser(t, env, "replier", user.RoleStudent)
	late := createUser(t, env, "late", user.RoleStudent)

	body := marshallObj(t, forum.NewThread{Title: "Exam prep", Body: "anyone?"})
	req, rec := newAuthRequest(http.MethodPost, "/v1/forums", getToken(t, opener), body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var thread forum.Thread
	decodeBody(t, rec, &thread)

	reply := func(token, text string) {
		req, rec = newAuthRequest(http.MethodPost, "/v1/forums/"+itoa(thread.ID)+"/reply", token, marshallObj(t, ReplyRequest{Body: text}))
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	reply(getToken(t, replier), "me")
	reply(getToken(t, late), "count me in")

	// the late reply notified both prior authors, not the actor
	lateFeed, err := env.dispatcher.Feed(late.ID)
	if err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}
	openerFeed, _ := env.dispatcher.Feed(opener.ID)
	replierFeed, _ := env.dispatcher.Feed(replier.ID)

	// opener: thread broadcast reply x0 + 2 replies; replier: creation broadcast + late reply
	assert.NotEmpty(t, openerFeed)
	assert.NotEmpty(t, replierFeed)
	for _, n := range lateFeed {
		assert.NotEqual(t, "New reply in: Exam prep", n.Text, "actor was notified of their own reply")
	}
}

func Test_communityApi_messaging(t *testing.T) {
	env := setupAPI(t)
	alice := createUser(t, env, "alice", user.RoleStudent)
	bob := createUser(t, env, "bob", user.RoleStudent)
	aliceToken := getToken(t, alice)
	bobToken := getToken(t, bob)

	body := marshallObj(t, SendMessageRequest{To: bob.ID, Body: "hey"})
	req, rec := newAuthRequest(http.MethodPost, "/v1/messages", aliceToken, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var msg messaging.Message
	decodeBody(t, rec, &msg)

	// both sides see the conversation
	req, rec = newAuthRequest(http.MethodGet, "/v1/messages/with/"+itoa(alice.ID), bobToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var msgs []messaging.Message
	decodeBody(t, rec, &msgs)
	assert.Len(t, msgs, 1)

	// only the recipient can mark it read
	req, rec = newAuthRequest(http.MethodPost, "/v1/messages/"+itoa(msg.ID)+"/read", aliceToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req, rec = newAuthRequest(http.MethodPost, "/v1/messages/"+itoa(msg.ID)+"/read", bobToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// the recipient got a notification pointing at the conversation
	feed, err := env.dispatcher.Feed(bob.ID)
	if err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}
	if assert.Len(t, feed, 1) {
		assert.Equal(t, itoa(alice.ID), feed[0].Route.Params["with"])
	}
}

func intPtr(i int) *int { return &i }
