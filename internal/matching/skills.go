package matching

import (
	"strings"
	"unicode"
)

// SkillMatchDetail is the structured breakdown behind a skill score.
// Matched and Missing always partition the job's required skills; Extra
// holds candidate skills the job does not ask for, capped for display.
type SkillMatchDetail struct {
	Matched       []string
	Missing       []string
	Extra         []string
	MatchCount    int
	TotalRequired int
}

// SkillVariants returns every spelling that should be treated as
// equivalent to the given skill: the trimmed, title-cased form plus the
// canonical name and synonyms from the synonym table. Skills absent from
// the table are their own sole variant. Lookup is case-insensitive and
// exact; there is no fuzzy matching.
func (e *Engine) SkillVariants(skill string) []string {
	clean := titleCase(strings.TrimSpace(skill))

	seen := map[string]struct{}{strings.ToLower(clean): {}}
	variants := []string{clean}

	add := func(v string) {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		variants = append(variants, v)
	}

	for canonical, synonyms := range e.cfg.SkillSynonyms {
		matched := strings.EqualFold(canonical, clean)
		if !matched {
			for _, synonym := range synonyms {
				if strings.EqualFold(synonym, clean) {
					matched = true
					break
				}
			}
		}
		if !matched {
			continue
		}
		add(canonical)
		for _, synonym := range synonyms {
			add(synonym)
		}
	}

	return variants
}

// scoreSkills computes the fraction of required skills the candidate
// covers. A job without requirements, or a candidate without skills,
// scores zero: there is nothing to match against.
func (e *Engine) scoreSkills(userSkills, jobSkills []string) (float64, SkillMatchDetail) {
	detail := SkillMatchDetail{TotalRequired: len(jobSkills)}

	if len(userSkills) == 0 || len(jobSkills) == 0 {
		detail.Missing = append(detail.Missing, jobSkills...)
		detail.Extra = capSkills(userSkills, e.cfg.MaxExtraSkills)
		return 0.0, detail
	}

	userVariants := make(map[string]struct{})
	for _, skill := range userSkills {
		for _, variant := range e.SkillVariants(skill) {
			userVariants[strings.ToLower(variant)] = struct{}{}
		}
	}

	jobVariants := make(map[string]struct{})
	for _, skill := range jobSkills {
		for _, variant := range e.SkillVariants(skill) {
			jobVariants[strings.ToLower(variant)] = struct{}{}
		}
	}

	for _, jobSkill := range jobSkills {
		matched := false
		for _, variant := range e.SkillVariants(jobSkill) {
			if _, ok := userVariants[strings.ToLower(variant)]; ok {
				matched = true
				break
			}
		}
		if matched {
			detail.Matched = append(detail.Matched, jobSkill)
		} else {
			detail.Missing = append(detail.Missing, jobSkill)
		}
	}

	var extra []string
	for _, userSkill := range userSkills {
		required := false
		for _, variant := range e.SkillVariants(userSkill) {
			if _, ok := jobVariants[strings.ToLower(variant)]; ok {
				required = true
				break
			}
		}
		if !required {
			extra = append(extra, userSkill)
		}
	}
	detail.Extra = capSkills(extra, e.cfg.MaxExtraSkills)

	detail.MatchCount = len(detail.Matched)
	return float64(detail.MatchCount) / float64(len(jobSkills)), detail
}

func capSkills(skills []string, limit int) []string {
	if len(skills) <= limit {
		return skills
	}
	return skills[:limit]
}

// titleCase upper-cases the first letter of each space-separated word,
// leaving the rest untouched so spellings like "PostgreSQL" survive.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
