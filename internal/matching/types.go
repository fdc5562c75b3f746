package matching

// UserProfile is the candidate side of a ranking call. It is treated as
// read-only for the duration of the call.
type UserProfile struct {
	ID                string   `json:"id,omitempty"`
	Name              string   `json:"name,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	ExperienceYears   int      `json:"experience_years,omitempty"`
	Location          string   `json:"location,omitempty"`
	SalaryExpectation int      `json:"salary_expectation,omitempty"`
	TrainingProgram   string   `json:"training_program,omitempty"`
}

// JobPosting is one open position to rank against a profile.
type JobPosting struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title,omitempty"`
	Company         string   `json:"company,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	Location        string   `json:"location,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	RemoteFriendly  bool     `json:"remote_friendly,omitempty"`
}

// MatchResult is the scored outcome for a single (profile, job) pair.
// All score fields are in [0, 1].
type MatchResult struct {
	JobID           string   `json:"job_id"`
	UserID          string   `json:"user_id"`
	TotalScore      float64  `json:"total_score"`
	SkillScore      float64  `json:"skill_score"`
	ExperienceScore float64  `json:"experience_score"`
	LocationScore   float64  `json:"location_score"`
	SalaryScore     float64  `json:"salary_score"`
	CulturalFit     float64  `json:"cultural_fit_score"`
	Confidence      float64  `json:"confidence"`
	Explanation     string   `json:"explanation"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// MatchResults wraps an ordered list of results with reporting helpers.
type MatchResults struct {
	Items []*MatchResult
}

func (r *MatchResults) Len() int {
	return len(r.Items)
}

// FindByJobID returns the result for the given job id, or nil.
func (r *MatchResults) FindByJobID(id string) *MatchResult {
	for _, item := range r.Items {
		if item.JobID == id {
			return item
		}
	}
	return nil
}

// Percent renders a score as a rounded integer percentage, the form the
// presentation layer expects.
func Percent(score float64) int {
	return int(score*100 + 0.5)
}
