package poll

import (
	"time"

	"github.com/trezcool/kitivo/core"
)

type Option struct {
	Text  string `json:"text"`
	Votes []int  `json:"votes"` // voter ids
}

type Poll struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	AuthorID  int       `json:"author_id"`
	Options   []Option  `json:"options"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// CastVote records voterID's vote for the option at idx. A voter's id lives
// in at most one option's vote list at any time: it is removed from every
// option before being added to the chosen one.
func (p *Poll) CastVote(voterID, idx int) error {
	if idx < 0 || idx >= len(p.Options) {
		return ErrInvalidOption
	}
	for i := range p.Options {
		votes := p.Options[i].Votes
		for j, id := range votes {
			if id == voterID {
				p.Options[i].Votes = append(votes[:j], votes[j+1:]...)
				break
			}
		}
	}
	p.Options[idx].Votes = append(p.Options[idx].Votes, voterID)
	return nil
}

// TotalVotes counts votes across all options; with the invariant above it
// equals the number of distinct voters who have ever voted.
func (p Poll) TotalVotes() int {
	var n int
	for _, opt := range p.Options {
		n += len(opt.Votes)
	}
	return n
}

type NewPoll struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"required,min=2,dive,required"`
}

func (np *NewPoll) Validate() error {
	np.Question = core.CleanString(np.Question)
	for i, opt := range np.Options {
		np.Options[i] = core.CleanString(opt)
	}
	return core.Validate.Struct(np)
}
