package matching

import (
	"fmt"
	"strings"
)

// neutralExperienceScore is returned when the job's level label is not in
// the experience table. An unknown label is input noise, not an error.
const neutralExperienceScore = 0.6

// scoreExperience compares the candidate's years against the minimum the
// job's level implies. Overqualification decays mildly, missing years
// decay fast.
func (e *Engine) scoreExperience(years int, level string) (float64, string) {
	required, ok := e.cfg.ExperienceLevels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return neutralExperienceScore, fmt.Sprintf("Ambiguous experience level: %s", level)
	}

	if years >= required {
		switch over := years - required; {
		case over == 0:
			return 1.0, "Experience level is an exact fit"
		case over == 1:
			return 0.95, "Experience level fits"
		case over == 2:
			return 0.8, "Slightly overqualified but suitable"
		default:
			return 0.6, "Overqualified - a more senior role may fit better"
		}
	}

	switch gap := required - years; {
	case gap == 1:
		return 0.7, "Slightly short on experience but can close the gap"
	case gap == 2:
		return 0.4, "Noticeable experience gap"
	default:
		return 0.2, "Significant experience gap"
	}
}
