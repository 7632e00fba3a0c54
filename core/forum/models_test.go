package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThread_PriorAuthors(t *testing.T) {
	thread := Thread{
		ID:       1,
		AuthorID: 1,
		Posts: []Post{
			{AuthorID: 1, Body: "first"},
			{AuthorID: 2, Body: "reply"},
			{AuthorID: 3, Body: "reply"},
			{AuthorID: 2, Body: "again"},
			{AuthorID: 4, Body: "late"},
		},
	}

	// distinct, first-posted order, excluding the actor
	assert.Equal(t, []int{1, 2, 3}, thread.PriorAuthors(4))
	assert.Equal(t, []int{2, 3, 4}, thread.PriorAuthors(1))
	// an author never notifies themselves even if they posted several times
	assert.Equal(t, []int{1, 3, 4}, thread.PriorAuthors(2))
}

func TestThread_PriorAuthors_empty(t *testing.T) {
	thread := Thread{ID: 1, AuthorID: 1, Posts: []Post{{AuthorID: 1, Body: "first"}}}
	assert.Empty(t, thread.PriorAuthors(1))
}

func TestNewThread_Validate(t *testing.T) {
	nt := NewThread{Title: "  Exam prep  ", Body: "  anyone?  "}
	assert.NoError(t, nt.Validate())
	assert.Equal(t, "Exam prep", nt.Title)

	missing := NewThread{Title: "no body"}
	assert.Error(t, missing.Validate())
}
