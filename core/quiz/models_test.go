package quiz

import "testing"

func intPtr(i int) *int { return &i }

func TestQuiz_Score(t *testing.T) {
	qz := Quiz{
		Questions: []Question{
			{Prompt: "q1", Options: []string{"a", "b"}, Answer: 0},
			{Prompt: "q2", Options: []string{"a", "b", "c"}, Answer: 1},
			{Prompt: "q3", Options: []string{"a", "b", "c"}, Answer: 2},
		},
	}

	tests := []struct {
		name    string
		answers []*int
		want    int
	}{
		{name: "all correct", answers: []*int{intPtr(0), intPtr(1), intPtr(2)}, want: 3},
		{name: "one wrong one skipped", answers: []*int{intPtr(0), intPtr(1), nil}, want: 2},
		{name: "all skipped", answers: []*int{nil, nil, nil}, want: 0},
		{name: "short answer list", answers: []*int{intPtr(0)}, want: 1},
		{name: "no answers", answers: nil, want: 0},
		{name: "all wrong", answers: []*int{intPtr(1), intPtr(0), intPtr(0)}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := qz.Score(tt.answers); got != tt.want {
				t.Errorf("Score() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestNewQuiz_Validate(t *testing.T) {
	valid := func() NewQuiz {
		return NewQuiz{
			Title: "CSC101 revision",
			Code:  "CSC101",
			Questions: []Question{
				{Prompt: "q1", Options: []string{"a", "b"}, Answer: 1},
			},
		}
	}

	nq := valid()
	if err := nq.Validate(); err != nil {
		t.Errorf("Validate() err = %v; want nil", err)
	}

	noQuestions := valid()
	noQuestions.Questions = nil
	if err := noQuestions.Validate(); err == nil {
		t.Error("Validate() passed a quiz with no questions")
	}

	oneOption := valid()
	oneOption.Questions[0].Options = []string{"only"}
	if err := oneOption.Validate(); err == nil {
		t.Error("Validate() passed a question with a single option")
	}

	badAnswer := valid()
	badAnswer.Questions[0].Answer = 5
	if err := badAnswer.Validate(); err == nil {
		t.Error("Validate() passed an out-of-range answer index")
	}
}
