package matching

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit is used by callers that have no opinion on result count.
const DefaultLimit = 10

// ErrInvalidLimit marks a limit below 1. That is a caller bug, not input
// noise, so ranking fails fast instead of guessing.
var ErrInvalidLimit = errors.New("limit must be at least 1")

// Engine ranks job postings against a single candidate profile. It holds
// only read-only configuration tables, so one Engine is safe to share
// across concurrent Rank calls.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// New builds an Engine, filling unset config sections with defaults.
func New(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg.withDefaults(), logger: logger}
}

// Rank scores every posting against the profile and returns the top
// matches sorted by total score, best first. Ties keep the input order.
// A posting that cannot be scored is logged and skipped; the rest of the
// batch is unaffected.
func (e *Engine) Rank(user *UserProfile, jobs []*JobPosting, limit int) (*MatchResults, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	if user == nil {
		return nil, errors.New("user profile is required")
	}

	// Jobs are scored independently, so fan out. Results land in their
	// input slot; ordering is decided by the sort below, never by
	// completion order.
	scored := make([]*MatchResult, len(jobs))

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		group.Go(func() error {
			scored[i] = e.scoreJob(user, job)
			return nil
		})
	}
	// scoreJob never returns an error; failures are logged and skipped.
	_ = group.Wait()

	results := make([]*MatchResult, 0, len(scored))
	for _, result := range scored {
		if result != nil {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return &MatchResults{Items: results}, nil
}

// scoreJob computes one MatchResult. A panic while scoring marks the job
// unscoreable and returns nil; it must never take the batch down.
func (e *Engine) scoreJob(user *UserProfile, job *JobPosting) (result *MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			jobID := ""
			if job != nil {
				jobID = job.ID
			}
			e.logger.Error("scoring job failed",
				zap.String("job_id", jobID),
				zap.Any("panic", r),
			)
			result = nil
		}
	}()

	if job == nil {
		e.logger.Warn("skipping nil job posting")
		return nil
	}

	skillScore, skillDetail := e.scoreSkills(user.Skills, job.RequiredSkills)
	expScore, _ := e.scoreExperience(user.ExperienceYears, job.ExperienceLevel)
	locScore, _ := e.scoreLocation(user.Location, job.Location, job.RemoteFriendly)
	salScore, _ := e.scoreSalary(user.SalaryExpectation, job.SalaryRange)

	weights := e.cfg.Weights
	total := clamp01(skillScore*weights.Skills +
		expScore*weights.Experience +
		locScore*weights.Location +
		salScore*weights.Salary)

	boost := e.programBoost(user, job)
	total = clamp01(total + boost)

	confidence := clamp01(e.completeness(user)*0.8 + total*0.2)

	return &MatchResult{
		JobID:           job.ID,
		UserID:          user.ID,
		TotalScore:      total,
		SkillScore:      skillScore,
		ExperienceScore: expScore,
		LocationScore:   locScore,
		SalaryScore:     salScore,
		CulturalFit:     e.cfg.CulturalFit,
		Confidence:      confidence,
		Explanation:     buildExplanation(skillScore, expScore, locScore, salScore, boost, skillDetail),
		Recommendations: e.buildRecommendations(total, expScore, locScore, skillDetail, job),
	}
}

// completeness measures how much of the profile is actually filled in.
// Salary gets partial credit either way: a stated expectation is a weak
// signal, a missing one still allows matching.
func (e *Engine) completeness(user *UserProfile) float64 {
	score := 0.0
	if len(user.Skills) > 0 {
		score += 1.0
	}
	if user.ExperienceYears >= 0 {
		score += 1.0
	}
	if strings.TrimSpace(user.Location) != "" {
		score += 1.0
	}
	if user.SalaryExpectation > 0 {
		score += 0.8
	} else {
		score += 0.2
	}
	return score / 4.0
}

func buildExplanation(skill, exp, loc, sal, boost float64, detail SkillMatchDetail) string {
	parts := []string{
		fmt.Sprintf("Skills: %d%% (%d/%d)", Percent(skill), detail.MatchCount, detail.TotalRequired),
		fmt.Sprintf("Experience: %d%%", Percent(exp)),
		fmt.Sprintf("Location: %d%%", Percent(loc)),
		fmt.Sprintf("Salary: %d%%", Percent(sal)),
	}
	if boost > 0 {
		parts = append(parts, fmt.Sprintf("Program boost (+%d%%)", Percent(boost)))
	}
	return strings.Join(parts, " | ")
}

func (e *Engine) buildRecommendations(total, exp, loc float64, detail SkillMatchDetail, job *JobPosting) []string {
	var recs []string

	if n := len(detail.Missing); n > 0 && n <= 3 {
		recs = append(recs, "Skills to learn: "+strings.Join(detail.Missing, ", "))
	} else if n > 3 {
		recs = append(recs, "Several required skills are missing - review the details")
	}

	if exp < 0.6 {
		recs = append(recs, "Highlight personal projects and portfolio work")
	}

	if loc < 0.6 && !job.RemoteFriendly {
		recs = append(recs, "Consider remote-friendly openings")
	}

	switch {
	case total >= 0.8:
		recs = append(recs, "Excellent match - apply right away")
	case total >= 0.6:
		recs = append(recs, "Good match - worth applying")
	}

	return recs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DumpToTmpFile writes the ranked results as indented JSON to a temp file
// and returns its name.
func (r *MatchResults) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ToFile writes the ranked results as indented JSON to the given path.
func (r *MatchResults) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
