package ai

import (
	"context"

	"github.com/talentbridge/match-ranker/internal/matching"
)

// Advice is a short, generated application brief for one ranked match.
type Advice struct {
	Message       string
	TalkingPoints []string
	Raw           string
}

// Advisor turns an already-scored match into application advice. It runs
// after ranking and never feeds back into scores.
type Advisor interface {
	Advise(ctx context.Context, user *matching.UserProfile, job *matching.JobPosting, match *matching.MatchResult) (*Advice, error)
}
