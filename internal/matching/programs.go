package matching

import "strings"

// Boost values for training-program alignment. Graduating from any
// recorded program earns the generic boost; postings whose text overlaps
// the program's domain keywords earn the aligned one.
const (
	genericProgramBoost = 0.05
	alignedProgramBoost = 0.15
)

// programBoost returns the additive bonus for the candidate's training
// track. Candidates without a recorded program get nothing.
func (e *Engine) programBoost(user *UserProfile, job *JobPosting) float64 {
	recorded := strings.ToLower(strings.TrimSpace(user.TrainingProgram))
	if recorded == "" {
		return 0.0
	}

	var program *Program
	for i := range e.cfg.Programs {
		if strings.Contains(recorded, strings.ToLower(e.cfg.Programs[i].Name)) {
			program = &e.cfg.Programs[i]
			break
		}
	}
	if program == nil {
		return genericProgramBoost
	}

	jobText := strings.ToLower(job.Title + " " + strings.Join(job.RequiredSkills, " "))
	for _, keyword := range program.Keywords {
		if strings.Contains(jobText, keyword) {
			return alignedProgramBoost
		}
	}

	return genericProgramBoost
}
