package personality

import (
	"strings"
	"testing"
)

func first(int) int { return 0 }

func TestFallback_NightCoderWinsOutright(t *testing.T) {
	stats := PromptStats{
		Year:       2024,
		CodingTime: "night",
		// scores that would otherwise pick a collaborator
		PRs:    50,
		Issues: 40,
	}
	got := Fallback(stats, first)
	if got.Archetype != ArchetypeNightCoder {
		t.Fatalf("archetype = %q, want night coder", got.Archetype)
	}
	if len(got.Traits) != 3 {
		t.Fatalf("traits = %v", got.Traits)
	}
}

func TestFallback_Scoring(t *testing.T) {
	tests := []struct {
		name  string
		stats PromptStats
		want  string
	}{
		{
			name:  "collaborator from pr and issue volume",
			stats: PromptStats{PRs: 25, Issues: 20, CodingTime: "afternoon"},
			want:  ArchetypeCollaborator,
		},
		{
			name:  "explorer from language spread",
			stats: PromptStats{Languages: []string{"Go", "Rust", "Python", "TypeScript", "Zig"}, CodingTime: "morning"},
			want:  ArchetypeExplorer,
		},
		{
			name:  "speedrunner from large commits",
			stats: PromptStats{AvgCommitSize: "large", Commits: 900, CodingTime: "afternoon"},
			want:  ArchetypeSpeedrunner,
		},
		{
			name:  "craftsperson from small commits",
			stats: PromptStats{AvgCommitSize: "small", Commits: 500, CodingTime: "morning"},
			want:  ArchetypeCraftsperson,
		},
		{
			name:  "maintainer from focused steady work",
			stats: PromptStats{RepoCount: 5, Commits: 300, AvgCommitSize: "medium", CodingTime: "afternoon"},
			want:  ArchetypeMaintainer,
		},
		{
			name:  "builder as the default",
			stats: PromptStats{Commits: 10, RepoCount: 2, CodingTime: "morning"},
			want:  ArchetypeBuilder,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.stats, first)
			if got.Archetype != tt.want {
				t.Fatalf("archetype = %q, want %q", got.Archetype, tt.want)
			}
			if got.Description == "" || len(got.Traits) != 3 {
				t.Fatalf("incomplete personality: %+v", got)
			}
		})
	}
}

func TestFallback_PickerSelectsVariation(t *testing.T) {
	stats := PromptStats{Year: 2025, CodingTime: "night"}
	a := Fallback(stats, func(int) int { return 0 })
	b := Fallback(stats, func(n int) int { return n - 1 })
	if a.Description == b.Description {
		t.Fatalf("expected distinct variations, both %q", a.Description)
	}
	if !strings.Contains(b.Description, "2025") {
		t.Fatalf("year not rendered: %q", b.Description)
	}

	// out of range pickers clamp instead of panicking
	c := Fallback(stats, func(n int) int { return n + 7 })
	if c.Archetype != ArchetypeNightCoder {
		t.Fatalf("clamped pick changed archetype: %+v", c)
	}
}

func TestCoerceTraits(t *testing.T) {
	if got := CoerceTraits([]string{"a", "b", "c", "d"}); len(got) != 3 || got[2] != "c" {
		t.Fatalf("trim failed: %v", got)
	}
	if got := CoerceTraits([]string{"a"}); len(got) != 3 || got[1] != "Dedicated" || got[2] != "Dedicated" {
		t.Fatalf("pad failed: %v", got)
	}
	if got := CoerceTraits(nil); len(got) != 3 {
		t.Fatalf("nil pad failed: %v", got)
	}
}

func TestBuildPrompt_ContainsStats(t *testing.T) {
	p := BuildPrompt(PromptStats{
		Year:            2024,
		Commits:         512,
		PrimaryLanguage: "Go",
		Languages:       []string{"Go", "TypeScript"},
		CodingTime:      "evening",
		PRs:             12,
		Issues:          4,
		RepoCount:       9,
		TopRepo:         "gitwrapped",
		AvgCommitSize:   "medium",
	})
	for _, want := range []string{"512", "Go, TypeScript", "evening", "12 PRs", "gitwrapped", "medium commits", "2024"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestDefault(t *testing.T) {
	p := Default(2024)
	if p.Archetype != ArchetypeBuilder || len(p.Traits) != 3 {
		t.Fatalf("default personality malformed: %+v", p)
	}
	if !strings.Contains(p.Description, "2024") {
		t.Fatalf("default description missing year: %q", p.Description)
	}
}
