package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/kitivo/core/academics"
	"github.com/trezcool/kitivo/core/user"
)

func Test_academicsApi_catalog(t *testing.T) {
	env := setupAPI(t)
	student := createUser(t, env, "stud", user.RoleStudent)
	admin := createUser(t, env, "boss", user.RoleAdmin)
	studToken := getToken(t, student)

	req, rec := newAuthRequest(http.MethodGet, "/v1/academics/catalog/codes", studToken)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var codes []string
	decodeBody(t, rec, &codes)
	assert.Contains(t, codes, "CSC101")

	// students cannot edit the catalog
	body := marshallObj(t, academics.NewCourse{Code: "CSC301", Title: "Data Structures", Units: 3, Level: "300", Term: "First"})
	req, rec = newAuthRequest(http.MethodPost, "/v1/academics/catalog/courses", studToken, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req, rec = newAuthRequest(http.MethodPost, "/v1/academics/catalog/courses", getToken(t, admin), body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var course academics.Course
	decodeBody(t, rec, &course)
	assert.Equal(t, "CSC301", course.Code)

	req, rec = newAuthRequest(http.MethodGet, "/v1/academics/catalog/codes", studToken)
	env.app.ServeHTTP(rec, req)
	codes = nil
	decodeBody(t, rec, &codes)
	assert.Contains(t, codes, "CSC301")
}

func Test_academicsApi_gpa(t *testing.T) {
	env := setupAPI(t)
	student := createUser(t, env, "stud", user.RoleStudent)
	token := getToken(t, student)

	add := func(code, grade string, units int, semester string) {
		body := marshallObj(t, academics.NewGpaEntry{Code: code, Grade: grade, Units: units, Semester: semester})
		req, rec := newAuthRequest(http.MethodPost, "/v1/academics/gpa", token, body)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	add("CSC101", "A", 3, "100-1")
	add("MTH101", "B", 2, "100-1")
	add("PHY101", "C", 2, "100-2")

	req, rec := newAuthRequest(http.MethodGet, "/v1/academics/gpa/semester/100-1", token)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp GpaResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "4.60", resp.Gpa) // (15+8)/5

	req, rec = newAuthRequest(http.MethodGet, "/v1/academics/gpa/cumulative", token)
	env.app.ServeHTTP(rec, req)
	resp = GpaResponse{}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "4.14", resp.Gpa) // (15+8+6)/7

	// an invalid grade letter is rejected
	body := marshallObj(t, academics.NewGpaEntry{Code: "CSC101", Grade: "Z", Units: 3, Semester: "100-1"})
	req, rec = newAuthRequest(http.MethodPost, "/v1/academics/gpa", token, body)
	env.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_academicsApi_coursePlans(t *testing.T) {
	env := setupAPI(t)
	student := createUser(t, env, "stud", user.RoleStudent)
	token := getToken(t, student)

	put := func(codes []string) {
		body := marshallObj(t, PlanRequest{Semester: "100-1", Codes: codes})
		req, rec := newAuthRequest(http.MethodPut, "/v1/academics/plans", token, body)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	put([]string{"CSC101", "MTH101"})
	put([]string{"CSC101"}) // replaces, never duplicates

	req, rec := newAuthRequest(http.MethodGet, "/v1/academics/plans", token)
	env.app.ServeHTTP(rec, req)
	var plans []academics.CoursePlan
	decodeBody(t, rec, &plans)
	if assert.Len(t, plans, 1) {
		assert.Equal(t, []string{"CSC101"}, plans[0].Codes)
	}
}
