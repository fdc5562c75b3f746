// Package source resolves candidate profiles and job postings from local
// JSON documents. It is the file-backed variant of the profile/job source
// the engine expects as a collaborator; the engine itself never learns
// where its inputs came from.
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/talentbridge/match-ranker/internal/matching"
)

// LoadProfile reads a single UserProfile document.
func LoadProfile(path string) (*matching.UserProfile, error) {
	var raw map[string]any
	if err := readJSON(path, &raw); err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	var profile matching.UserProfile
	if err := decode(raw, &profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}

	applyProfileDefaults(&profile)
	return &profile, nil
}

// LoadJobs reads a job postings document. The file may hold either a bare
// array or an object with an "items" key.
func LoadJobs(path string) ([]*matching.JobPosting, error) {
	var raw any
	if err := readJSON(path, &raw); err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}

	items := raw
	if wrapped, ok := raw.(map[string]any); ok {
		if inner, ok := wrapped["items"]; ok {
			items = inner
		}
	}

	var jobs []*matching.JobPosting
	if err := decode(items, &jobs); err != nil {
		return nil, fmt.Errorf("decoding jobs: %w", err)
	}

	for _, job := range jobs {
		applyJobDefaults(job)
	}
	return jobs, nil
}

// decode maps loosely-typed document values onto the engine's records,
// reusing the json tags so documents and wire shapes stay identical.
func decode(input, output any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   output,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func readJSON(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(out)
}

// Absent fields must arrive at the engine as explicit zero values, not
// nulls: empty skill slice, zero years, empty strings.
func applyProfileDefaults(profile *matching.UserProfile) {
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.ExperienceYears < 0 {
		profile.ExperienceYears = 0
	}
	if profile.SalaryExpectation < 0 {
		profile.SalaryExpectation = 0
	}
}

func applyJobDefaults(job *matching.JobPosting) {
	if job == nil {
		return
	}
	if job.RequiredSkills == nil {
		job.RequiredSkills = []string{}
	}
}

// FindJob returns the posting with the given id, or nil.
func FindJob(jobs []*matching.JobPosting, id string) *matching.JobPosting {
	for _, job := range jobs {
		if job != nil && job.ID == id {
			return job
		}
	}
	return nil
}
