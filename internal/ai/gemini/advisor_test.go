package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/talentbridge/match-ranker/internal/matching"
)

type stubGenerator struct {
	response   string
	err        error
	cacheName  string
	cacheErr   error
	lastPrompt string
	usedCache  string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) GenerateContentWithCache(_ context.Context, prompt, cacheName string) (string, error) {
	s.lastPrompt = prompt
	s.usedCache = cacheName
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) EnsureProfileCache(_ context.Context, _, _, _ string) (string, error) {
	if s.cacheErr != nil {
		return "", s.cacheErr
	}
	return s.cacheName, nil
}

func testInputs() (*matching.UserProfile, *matching.JobPosting, *matching.MatchResult) {
	user := &matching.UserProfile{ID: "u1", Name: "Ayşe", Skills: []string{"React"}}
	job := &matching.JobPosting{ID: "j1", Title: "Frontend Developer", RequiredSkills: []string{"React", "TypeScript"}}
	match := &matching.MatchResult{JobID: "j1", UserID: "u1", TotalScore: 0.85, Explanation: "Skills: 50% (1/2)"}
	return user, job, match
}

func TestAdvisorAdvise(t *testing.T) {
	stub := &stubGenerator{response: `{"message": "I would love to apply.", "talking_points": ["React experience", "Fast learner"]}`}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	user, job, match := testInputs()

	advice, err := advisor.Advise(context.Background(), user, job, match)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advice.Message != "I would love to apply." {
		t.Fatalf("unexpected message: %q", advice.Message)
	}
	if len(advice.TalkingPoints) != 2 {
		t.Fatalf("expected two talking points, got %v", advice.TalkingPoints)
	}
	if advice.Raw == "" {
		t.Fatalf("expected raw response to be kept")
	}

	if !strings.Contains(stub.lastPrompt, "Frontend Developer") {
		t.Fatalf("expected the job in the prompt, got: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "Skills: 50% (1/2)") {
		t.Fatalf("expected the match breakdown in the prompt")
	}
}

func TestAdvisorUsesProfileCache(t *testing.T) {
	stub := &stubGenerator{
		response:  `{"message": "Hi"}`,
		cacheName: "caches/abc",
	}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	user, job, match := testInputs()

	if _, err := advisor.Advise(context.Background(), user, job, match); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stub.usedCache != "caches/abc" {
		t.Fatalf("expected cached content to be used, got %q", stub.usedCache)
	}
	if strings.Contains(stub.lastPrompt, `"name": "Ayşe"`) {
		t.Fatalf("profile must not be inlined when cached")
	}
}

func TestAdvisorFallsBackWhenCacheFails(t *testing.T) {
	stub := &stubGenerator{
		response: `{"message": "Hi"}`,
		cacheErr: errors.New("cache unavailable"),
	}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	user, job, match := testInputs()

	if _, err := advisor.Advise(context.Background(), user, job, match); err != nil {
		t.Fatalf("cache failure must not fail the advice call: %v", err)
	}
	if stub.usedCache != "" {
		t.Fatalf("expected no cached content, got %q", stub.usedCache)
	}
	if !strings.Contains(stub.lastPrompt, `"name": "Ayşe"`) {
		t.Fatalf("expected the profile inlined on cache failure")
	}
}

func TestAdvisorGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	user, job, match := testInputs()

	if _, err := advisor.Advise(context.Background(), user, job, match); err == nil {
		t.Fatalf("expected the generator error to propagate")
	}
}

func TestParseResponseFencedJSON(t *testing.T) {
	raw := "```json\n{\"message\": \"Hello\", \"talking_points\": [\"a\"]}\n```"

	advice, err := parseResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advice.Message != "Hello" || len(advice.TalkingPoints) != 1 {
		t.Fatalf("unexpected advice: %+v", advice)
	}
}

func TestParseResponseMalformed(t *testing.T) {
	if _, err := parseResponse("not json at all"); err == nil {
		t.Fatalf("expected a parse error")
	}
}
