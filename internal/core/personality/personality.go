// Package personality derives a developer archetype from yearly activity.
// The LLM path lives in adapters/narrative; this package owns the types,
// the prompt inputs, and the rule based fallback so a wrap always gets one
package personality

// Archetype names shown on the personality slide
const (
	ArchetypeCraftsperson = "The Craftsperson"
	ArchetypeSpeedrunner  = "The Speedrunner"
	ArchetypeNightCoder   = "The Night Coder"
	ArchetypeExplorer     = "The Explorer"
	ArchetypeMaintainer   = "The Maintainer"
	ArchetypeCollaborator = "The Collaborator"
	ArchetypeBuilder      = "The Builder"
	ArchetypeFixer        = "The Fixer"
)

// Personality is the archetype result attached to a wrap
type Personality struct {
	Archetype   string   `json:"archetype"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
}

// PromptStats is the stat summary the analyzer reasons over
type PromptStats struct {
	Year            int
	Commits         int
	PrimaryLanguage string
	Languages       []string
	CodingTime      string // morning, afternoon, evening, night
	PRs             int
	Issues          int
	RepoCount       int
	TopRepo         string
	AvgCommitSize   string // small, medium, large
}

// variation is one of several celebratory phrasings per archetype
type variation struct {
	description string
	traits      []string
}

// Default returns the static personality used when no stats are available
// (for example when the analyzer is disabled and scoring is skipped)
func Default(year int) Personality {
	return Personality{
		Archetype:   ArchetypeBuilder,
		Description: yearly("A dedicated developer who shipped code consistently throughout %d.", year),
		Traits:      []string{"Consistent", "Focused", "Productive"},
	}
}

// Fallback scores archetypes from stats when the LLM path is unavailable.
// pick chooses among phrasing variations; pass a seeded picker in tests
func Fallback(stats PromptStats, pick func(n int) int) Personality {
	if pick == nil {
		pick = func(int) int { return 0 }
	}

	scores := map[string]int{
		"nightCoder":   boolScore(stats.CodingTime == "night", 10),
		"collaborator": boolScore(stats.PRs > 20, 3) + boolScore(stats.Issues > 15, 3),
		"explorer":     explorerScore(len(stats.Languages)),
		"speedrunner":  boolScore(stats.AvgCommitSize == "large", 5) + boolScore(stats.Commits > 800, 3),
		"craftsperson": boolScore(stats.AvgCommitSize == "small", 4) + boolScore(stats.Commits > 400, 2),
		"maintainer":   boolScore(stats.RepoCount < 8 && stats.Commits > 200, 5),
		"builder":      boolScore(stats.RepoCount > 10, 3),
	}

	// night coding beats everything else
	if scores["nightCoder"] >= 10 {
		return choose(ArchetypeNightCoder, pick, []variation{
			{"A nocturnal coder who does their best work under the stars.",
				[]string{"Night Owl", "Creative", "Independent"}},
			{yearly("Late night commits and moonlit debugging sessions define your %d.", stats.Year),
				[]string{"Nocturnal", "Focused", "Creative"}},
		})
	}

	top, max := "", 0
	for _, name := range []string{"collaborator", "explorer", "speedrunner", "craftsperson", "maintainer", "builder"} {
		if scores[name] > max {
			top, max = name, scores[name]
		}
	}

	switch {
	case top == "collaborator" && max >= 3:
		return choose(ArchetypeCollaborator, pick, []variation{
			{"A team player who thrives on collaboration and community engagement.",
				[]string{"Collaborative", "Communicative", "Helpful"}},
			{yearly("Building bridges and merging PRs, you made %d a team effort.", stats.Year),
				[]string{"Team-oriented", "Supportive", "Engaging"}},
		})
	case top == "explorer" && max >= 4:
		return choose(ArchetypeExplorer, pick, []variation{
			{"A curious polyglot always exploring new technologies and languages.",
				[]string{"Curious", "Adaptable", "Versatile"}},
			{countPhrase(len(stats.Languages)),
				[]string{"Polyglot", "Curious", "Adventurous"}},
		})
	case top == "speedrunner" && max >= 5:
		return choose(ArchetypeSpeedrunner, pick, []variation{
			{"A fast-paced developer who ships code quickly and efficiently.",
				[]string{"Fast", "Decisive", "Action-oriented"}},
			{yearly("High velocity commits and rapid iteration defined your productive %d.", stats.Year),
				[]string{"Rapid", "Efficient", "Prolific"}},
		})
	case top == "craftsperson" && max >= 4:
		return choose(ArchetypeCraftsperson, pick, []variation{
			{"A meticulous developer who values quality and careful craftsmanship.",
				[]string{"Careful", "Detail-oriented", "Thoughtful"}},
			{yearly("Every commit polished to perfection, quality over quantity in %d.", stats.Year),
				[]string{"Precise", "Meticulous", "Quality-focused"}},
		})
	case top == "maintainer" && max >= 5:
		return choose(ArchetypeMaintainer, pick, []variation{
			{"A reliable maintainer providing steady, consistent contributions.",
				[]string{"Reliable", "Steady", "Dependable"}},
			{"Deep focus and consistent care kept projects thriving all year long.",
				[]string{"Dependable", "Committed", "Thorough"}},
		})
	}

	return choose(ArchetypeBuilder, pick, []variation{
		{"A focused builder who creates meaningful projects with dedication.",
			[]string{"Focused", "Dedicated", "Persistent"}},
		{yearly("Turning ideas into reality one commit at a time throughout %d.", stats.Year),
			[]string{"Creative", "Determined", "Productive"}},
		{yearly("A dedicated developer who shipped code consistently throughout %d.", stats.Year),
			[]string{"Consistent", "Reliable", "Productive"}},
	})
}

// CoerceTraits pads or trims traits so the slide always renders three
func CoerceTraits(traits []string) []string {
	if len(traits) > 3 {
		traits = traits[:3]
	}
	for len(traits) < 3 {
		traits = append(traits, "Dedicated")
	}
	return traits
}

func choose(archetype string, pick func(int) int, vars []variation) Personality {
	i := pick(len(vars))
	if i < 0 || i >= len(vars) {
		i = 0
	}
	v := vars[i]
	return Personality{Archetype: archetype, Description: v.description, Traits: v.traits}
}

func boolScore(cond bool, pts int) int {
	if cond {
		return pts
	}
	return 0
}

// explorerScore only counts once the language spread is wide
func explorerScore(n int) int {
	if n >= 4 {
		return n
	}
	return 0
}
