package quiz

import (
	"time"

	"github.com/trezcool/kitivo/core"
)

type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"` // index into Options
}

type Quiz struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Code      string     `json:"code"` // course ref
	AuthorID  int        `json:"author_id"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"` // UTC
}

// Score counts positions where the submitted answer index equals the
// correct index. A nil answer is unanswered and never correct.
func (q Quiz) Score(answers []*int) int {
	var score int
	for i, question := range q.Questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == question.Answer {
			score++
		}
	}
	return score
}

type Submission struct {
	ID          int       `json:"id"`
	QuizID      int       `json:"quiz_id"`
	UserID      int       `json:"user_id"`
	Answers     []*int    `json:"answers"` // nil = unanswered
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"` // UTC
}

type NewQuiz struct {
	Title     string     `json:"title" validate:"required"`
	Code      string     `json:"code"`
	Questions []Question `json:"questions" validate:"required,min=1,dive"`
}

func (nq *NewQuiz) Validate() error {
	nq.Title = core.CleanString(nq.Title)
	nq.Code = core.CleanString(nq.Code)
	if err := core.Validate.Struct(nq); err != nil {
		return err
	}
	for i, q := range nq.Questions {
		if len(q.Options) < 2 || q.Answer < 0 || q.Answer >= len(q.Options) {
			return core.NewValidationError(nil, core.FieldError{
				Field: "questions",
				Error: "every question needs at least two options and a valid answer index",
			})
		}
		nq.Questions[i].Prompt = core.CleanString(q.Prompt)
	}
	return nil
}
