package forum

import (
	"time"

	"github.com/trezcool/kitivo/core"
)

type Post struct {
	AuthorID  int       `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// Thread is an ordered list of posts; the first post is created atomically
// with the thread, from the same author.
type Thread struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	AuthorID  int       `json:"author_id"`
	Posts     []Post    `json:"posts"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// PriorAuthors returns the distinct set of authors in the thread excluding
// `exclude`, in first-posted order. Reply notifications target this set.
func (t Thread) PriorAuthors(exclude int) []int {
	seen := make(map[int]struct{})
	authors := make([]int, 0, len(t.Posts))
	for _, p := range t.Posts {
		if p.AuthorID == exclude {
			continue
		}
		if _, ok := seen[p.AuthorID]; ok {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		authors = append(authors, p.AuthorID)
	}
	return authors
}

type NewThread struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

func (nt *NewThread) Validate() error {
	nt.Title = core.CleanString(nt.Title)
	nt.Body = core.CleanString(nt.Body)
	return core.Validate.Struct(nt)
}
