package matching

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(DefaultConfig(), zap.NewNop())
}

func containsFold(list []string, want string) bool {
	for _, item := range list {
		if strings.EqualFold(item, want) {
			return true
		}
	}
	return false
}

func TestSkillVariantsSynonymLookup(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name  string
		skill string
		want  []string
	}{
		{
			name:  "synonym resolves to canonical",
			skill: "ReactJS",
			want:  []string{"React.js", "React", "React JS"},
		},
		{
			name:  "canonical pulls in synonyms",
			skill: "JavaScript",
			want:  []string{"JS", "Javascript", "ECMAScript"},
		},
		{
			name:  "case insensitive",
			skill: "  typescript ",
			want:  []string{"TypeScript", "TS"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			variants := engine.SkillVariants(tc.skill)
			for _, want := range tc.want {
				if !containsFold(variants, want) {
					t.Fatalf("expected variant %q in %v", want, variants)
				}
			}
		})
	}
}

func TestSkillVariantsUnknownSkill(t *testing.T) {
	engine := newTestEngine(t)

	variants := engine.SkillVariants("cobol")
	if len(variants) != 1 {
		t.Fatalf("expected the skill to be its own sole variant, got %v", variants)
	}
	if variants[0] != "Cobol" {
		t.Fatalf("expected title-cased variant, got %q", variants[0])
	}
}

func TestScoreSkillsPartition(t *testing.T) {
	engine := newTestEngine(t)

	userSkills := []string{"React", "JavaScript", "CSS"}
	jobSkills := []string{"React", "TypeScript", "CSS"}

	score, detail := engine.scoreSkills(userSkills, jobSkills)

	if got, want := score, 2.0/3.0; got != want {
		t.Fatalf("expected score %v, got %v", want, got)
	}

	if len(detail.Matched)+len(detail.Missing) != len(jobSkills) {
		t.Fatalf("matched %v and missing %v must partition required %v",
			detail.Matched, detail.Missing, jobSkills)
	}
	for _, matched := range detail.Matched {
		if containsFold(detail.Missing, matched) {
			t.Fatalf("skill %q is both matched and missing", matched)
		}
	}

	if !containsFold(detail.Missing, "TypeScript") {
		t.Fatalf("expected TypeScript missing, got %v", detail.Missing)
	}
	if detail.MatchCount != 2 || detail.TotalRequired != 3 {
		t.Fatalf("unexpected counts: %d/%d", detail.MatchCount, detail.TotalRequired)
	}
}

func TestScoreSkillsMatchesThroughSynonyms(t *testing.T) {
	engine := newTestEngine(t)

	score, detail := engine.scoreSkills([]string{"JS", "Postgres"}, []string{"JavaScript", "PostgreSQL"})
	if score != 1.0 {
		t.Fatalf("expected full match through synonyms, got %v (%+v)", score, detail)
	}
}

func TestScoreSkillsEmptyLists(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name       string
		userSkills []string
		jobSkills  []string
	}{
		{name: "no requirements", userSkills: []string{"Go"}, jobSkills: nil},
		{name: "no candidate skills", userSkills: nil, jobSkills: []string{"Go", "SQL"}},
		{name: "both empty", userSkills: nil, jobSkills: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, detail := engine.scoreSkills(tc.userSkills, tc.jobSkills)
			if score != 0.0 {
				t.Fatalf("expected zero score, got %v", score)
			}
			if len(detail.Missing) != len(tc.jobSkills) {
				t.Fatalf("expected full required list missing, got %v", detail.Missing)
			}
			if len(detail.Matched) != 0 {
				t.Fatalf("expected no matches, got %v", detail.Matched)
			}
		})
	}
}

func TestScoreSkillsExtraCapped(t *testing.T) {
	engine := newTestEngine(t)

	userSkills := []string{"Go", "Rust", "Elixir", "Haskell", "Zig"}
	_, detail := engine.scoreSkills(userSkills, []string{"Go"})

	if len(detail.Extra) != 3 {
		t.Fatalf("expected extra skills capped to 3, got %v", detail.Extra)
	}
}
