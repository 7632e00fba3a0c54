package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/core/notification"
	"github.com/trezcool/kitivo/core/user"
)

func Test_authApi_signUp(t *testing.T) {
	env := setupAPI(t)

	signUp := func(matric, uname string) []byte {
		return marshallObj(t, user.NewUser{
			FirstName:       "Ada",
			Surname:         "Obi",
			Username:        uname,
			Email:           uname + "@test.cd",
			MatricNumber:    matric,
			Password:        "s3cret!",
			PasswordConfirm: "s3cret!",
		})
	}

	tests := []struct {
		name     string
		body     []byte
		wantCode int
	}{
		{name: "approved matric", body: signUp("2024013417", "ada"), wantCode: http.StatusCreated},
		{name: "matric not on roster", body: signUp("0000000000", "ghost"), wantCode: http.StatusBadRequest},
		{name: "matric already taken", body: signUp("2024013417", "ada2"), wantCode: http.StatusBadRequest},
		{name: "malformed matric", body: signUp("not-a-matric", "odd"), wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/auth/signup", tt.body)
			env.app.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func Test_authApi_signIn(t *testing.T) {
	env := setupAPI(t)
	createUser(t, env, "ada", user.RoleStudent)

	t.Run("valid credentials", func(t *testing.T) {
		body := marshallObj(t, user.Credentials{Identifier: "ada", Password: "s3cret!"})
		req, rec := newRequest(http.MethodPost, "/v1/auth/signin", body)
		env.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp SignInResponse
		decodeBody(t, rec, &resp)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "ada", resp.User.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		body := marshallObj(t, user.Credentials{Identifier: "ada", Password: "nope"})
		req, rec := newRequest(http.MethodPost, "/v1/auth/signin", body)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("suspended account", func(t *testing.T) {
		usr := createUser(t, env, "sus", user.RoleStudent)
		if _, err := env.usrSvc.SetStatus(usr.ID, user.StatusSuspended); err != nil {
			t.Fatalf("SetStatus() failed: %v", err)
		}
		body := marshallObj(t, user.Credentials{Identifier: "sus", Password: "s3cret!"})
		req, rec := newRequest(http.MethodPost, "/v1/auth/signin", body)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func Test_authApi_me(t *testing.T) {
	env := setupAPI(t)
	usr := createUser(t, env, "ada", user.RoleStudent)

	t.Run("no token", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/me")
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/me", "garbage")
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/me", getToken(t, usr))
		env.app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got user.User
		decodeBody(t, rec, &got)
		assert.Equal(t, usr.ID, got.ID)
	})
}

func Test_authApi_nav(t *testing.T) {
	env := setupAPI(t)
	usr := createUser(t, env, "ada", user.RoleStudent)
	token := getToken(t, usr)

	req, rec := newAuthRequest(http.MethodGet, "/v1/nav", token)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var rt nav.Route
	decodeBody(t, rec, &rt)
	assert.Equal(t, nav.PageHome, rt.Page)

	body := marshallObj(t, nav.NewRoute(nav.PageTakeQuiz, "id", "3"))
	req, rec = newAuthRequest(http.MethodPost, "/v1/nav", token, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &rt)
	assert.Equal(t, nav.PageTakeQuiz, rt.Page)
	assert.Equal(t, "3", rt.Params["id"])

	// sign-out forces the router back to the entry state
	req, rec = newAuthRequest(http.MethodPost, "/v1/auth/signout", token)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, nav.PageSignIn, env.router.Current().Page)
}

func Test_authApi_notifications(t *testing.T) {
	env := setupAPI(t)
	actor := createUser(t, env, "actor", user.RoleClassPresident)
	target := createUser(t, env, "target", user.RoleStudent)

	created, err := env.dispatcher.Dispatch(notification.Broadcasted(actor.ID, "Exam moved", nil))
	if err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}

	token := getToken(t, target)
	req, rec := newAuthRequest(http.MethodGet, "/v1/me/notifications", token)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var feed []notification.Notification
	decodeBody(t, rec, &feed)
	if assert.Len(t, feed, 1) {
		assert.Equal(t, "Exam moved", feed[0].Text)
		assert.False(t, feed[0].Read)
	}

	// the actor never hears their own broadcast
	req, rec = newAuthRequest(http.MethodGet, "/v1/me/notifications", getToken(t, actor))
	env.app.ServeHTTP(rec, req)
	var actorFeed []notification.Notification
	decodeBody(t, rec, &actorFeed)
	assert.Empty(t, actorFeed)

	// mark read, own notification only
	var own notification.Notification
	for _, n := range created {
		if n.UserID == target.ID {
			own = n
		}
	}
	req, rec = newAuthRequest(http.MethodPost, "/v1/me/notifications/"+itoa(own.ID)+"/read", token)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var read notification.Notification
	decodeBody(t, rec, &read)
	assert.True(t, read.Read)

	// someone else's notification is invisible
	req, rec = newAuthRequest(http.MethodPost, "/v1/me/notifications/"+itoa(own.ID)+"/read", getToken(t, actor))
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
