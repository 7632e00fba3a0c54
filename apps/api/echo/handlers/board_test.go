package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/kitivo/core/board"
	"github.com/trezcool/kitivo/core/user"
)

func Test_boardApi_announcements(t *testing.T) {
	env := setupAPI(t)
	president := createUser(t, env, "prez", user.RoleClassPresident)
	student := createUser(t, env, "stud", user.RoleStudent)
	prezToken := getToken(t, president)
	studToken := getToken(t, student)

	// only admins and presidents may post announcements
	body := marshallObj(t, board.NewAnnouncement{Title: "Exams moved", Body: "CSC101 now holds Friday."})
	req, rec := newAuthRequest(http.MethodPost, "/v1/board/announcements", studToken, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodPost, "/v1/board/announcements", prezToken, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var ann board.Announcement
	decodeBody(t, rec, &ann)
	assert.Equal(t, president.ID, ann.AuthorID)

	// the broadcast reached everyone but the author
	feed, err := env.dispatcher.Feed(student.ID)
	if err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}
	assert.Len(t, feed, 1)
	assert.Contains(t, feed[0].Text, "Exams moved")
	feed, _ = env.dispatcher.Feed(president.ID)
	assert.Empty(t, feed)

	req, rec = newAuthRequest(http.MethodGet, "/v1/board/announcements", studToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var anns []board.Announcement
	decodeBody(t, rec, &anns)
	assert.Len(t, anns, 1)

	// removal is gated too
	req, rec = newAuthRequest(http.MethodDelete, "/v1/board/announcements/"+itoa(ann.ID), studToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/board/announcements/"+itoa(ann.ID), prezToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newAuthRequest(http.MethodGet, "/v1/board/announcements", studToken)
	env.app.ServeHTTP(rec, req)
	decodeBody(t, rec, &anns)
	assert.Empty(t, anns)
}

func Test_boardApi_jobs(t *testing.T) {
	env := setupAPI(t)
	student := createUser(t, env, "stud", user.RoleStudent)
	admin := createUser(t, env, "hod", user.RoleAdmin)
	studToken := getToken(t, student)

	// any member can post a job
	body := marshallObj(t, board.NewJob{Title: "Lab assistant", Description: "Weekend shifts", Contact: "lab@test.cd"})
	req, rec := newAuthRequest(http.MethodPost, "/v1/board/jobs", studToken, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var job board.Job
	decodeBody(t, rec, &job)

	req, rec = newAuthRequest(http.MethodPost, "/v1/board/jobs", studToken, marshallObj(t, board.NewJob{Title: "No contact"}))
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// but only admins and presidents take one down
	req, rec = newAuthRequest(http.MethodDelete, "/v1/board/jobs/"+itoa(job.ID), studToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/board/jobs/"+itoa(job.ID), getToken(t, admin))
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func Test_boardApi_tutorProfileUpsert(t *testing.T) {
	env := setupAPI(t)
	student := createUser(t, env, "stud", user.RoleStudent)
	studToken := getToken(t, student)

	put := func(courses ...string) {
		body := marshallObj(t, board.TutorProfileForm{Courses: courses, Rate: "free"})
		req, rec := newAuthRequest(http.MethodPut, "/v1/board/tutors/me", studToken, body)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	put("CSC101")
	put("CSC101", "MTH101")

	// one profile per user, last write wins
	req, rec := newAuthRequest(http.MethodGet, "/v1/board/tutors", studToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var profiles []board.TutorProfile
	decodeBody(t, rec, &profiles)
	if assert.Len(t, profiles, 1) {
		assert.Equal(t, student.ID, profiles[0].UserID)
		assert.Equal(t, []string{"CSC101", "MTH101"}, profiles[0].Courses)
	}
}

func Test_boardApi_facultyAdminOnly(t *testing.T) {
	env := setupAPI(t)
	president := createUser(t, env, "prez", user.RoleClassPresident)
	admin := createUser(t, env, "hod", user.RoleAdmin)
	adminToken := getToken(t, admin)

	body := marshallObj(t, board.FacultyForm{Name: "Dr. N. Eze", Title: "Senior Lecturer", Email: "n.eze@test.cd"})
	req, rec := newAuthRequest(http.MethodPost, "/v1/board/faculty", getToken(t, president), body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodPost, "/v1/board/faculty", adminToken, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req, rec = newAuthRequest(http.MethodPost, "/v1/board/faculty", adminToken,
		marshallObj(t, board.FacultyForm{Name: "Dr. Typo", Email: "not-an-email"}))
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// the directory itself is open to every member
	req, rec = newAuthRequest(http.MethodGet, "/v1/board/faculty", getToken(t, president))
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var faculty []board.Faculty
	decodeBody(t, rec, &faculty)
	assert.Len(t, faculty, 1)
}

func Test_boardApi_members(t *testing.T) {
	env := setupAPI(t)
	student := createUser(t, env, "stud", user.RoleStudent)
	createUser(t, env, "prez", user.RoleClassPresident)

	req, rec := newAuthRequest(http.MethodGet, "/v1/board/members", getToken(t, student))
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var members []user.User
	decodeBody(t, rec, &members)
	assert.Len(t, members, 2)
}
