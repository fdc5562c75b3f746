package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/talentbridge/match-ranker/internal/ai"
	"github.com/talentbridge/match-ranker/internal/matching"
	"github.com/talentbridge/match-ranker/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	GenerateContentWithCache(ctx context.Context, prompt, cacheName string) (string, error)
	EnsureProfileCache(ctx context.Context, profileID, displayName, payload string) (string, error)
}

// Advisor generates application advice for ranked matches via Gemini.
// It consumes MatchResults the engine already produced; scores are inputs
// here, never outputs.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewAdvisor(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Advisor) Advise(ctx context.Context, user *matching.UserProfile, job *matching.JobPosting, match *matching.MatchResult) (*ai.Advice, error) {
	if user == nil {
		return nil, fmt.Errorf("user profile is required")
	}
	if job == nil {
		return nil, fmt.Errorf("job posting is required")
	}
	if match == nil {
		return nil, fmt.Errorf("match result is required")
	}

	profileJSON, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal job payload: %w", err)
	}

	matchJSON, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal match payload: %w", err)
	}

	cacheName, err := a.generator.EnsureProfileCache(ctx, user.ID, fmt.Sprintf("profile-%s", user.ID), string(profileJSON))
	if err != nil {
		a.logger.Debug("profile cache unavailable, sending profile inline",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		cacheName = ""
	}

	prompt := buildPrompt(string(profileJSON), string(jobJSON), string(matchJSON), cacheName != "")

	a.logger.Debug("gemini advice request",
		zap.String("job_id", job.ID),
		zap.String("user_id", user.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	var raw string
	if cacheName != "" {
		raw, err = a.generator.GenerateContentWithCache(ctx, prompt, cacheName)
	} else {
		raw, err = a.generator.GenerateContent(ctx, prompt)
	}
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini advice response",
		zap.String("job_id", job.ID),
		zap.String("user_id", user.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	advice, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	advice.Raw = raw
	return advice, nil
}

func buildPrompt(profileJSON, jobJSON, matchJSON string, profileCached bool) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE_JSON}}\n\nJob:\n{{JOB_JSON}}\n\nMatch:\n{{MATCH_JSON}}\n\nJSON Response:"
	}

	profile := profileJSON
	if profileCached {
		profile = "(provided via cached content)"
	}

	prompt := strings.ReplaceAll(template, "{{PROFILE_JSON}}", profile)
	prompt = strings.ReplaceAll(prompt, "{{JOB_JSON}}", jobJSON)
	prompt = strings.ReplaceAll(prompt, "{{MATCH_JSON}}", matchJSON)
	return prompt
}

func parseResponse(raw string) (*ai.Advice, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	advice := &ai.Advice{
		Message: coerceString(data["message"]),
	}

	if points, ok := data["talking_points"].([]any); ok {
		for _, point := range points {
			if text := coerceString(point); text != "" {
				advice.TalkingPoints = append(advice.TalkingPoints, text)
			}
		}
	}

	return advice, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
