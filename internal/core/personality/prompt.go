package personality

import (
	"fmt"
	"strings"
)

// yearly formats a phrase containing the wrap year
func yearly(format string, year int) string { return fmt.Sprintf(format, year) }

func countPhrase(n int) string {
	return fmt.Sprintf("Mastered %d languages this year, always learning something new.", n)
}

// SystemPrompt pins the analyzer to strict JSON output
const SystemPrompt = "You are a developer personality analyst. Return ONLY valid JSON, no markdown."

// BuildPrompt renders the analysis prompt for the LLM path
func BuildPrompt(stats PromptStats) string {
	return fmt.Sprintf(`Analyze this developer's %d GitHub activity and determine their developer personality:

Data:
- Total commits: %d
- Primary language: %s
- Languages used: %s
- Coding time preference: %s
- Collaboration: %d PRs, %d issues
- Repository focus: %d repos, top: %s
- Commit patterns: %s commits

Based on these patterns, identify which archetype fits best:

1. The Craftsperson: Small, careful commits. Quality over speed. Perfectionist approach.
2. The Speedrunner: Large commits, ships fast, moves quick. Gets things done rapidly.
3. The Night Coder: Primarily codes evening/night hours. Nocturnal developer.
4. The Explorer: Uses many languages, always learning new tech. Curious polyglot.
5. The Maintainer: Steady consistent activity, reliable. The dependable one.
6. The Collaborator: High PR and issue activity. Team player, community focused.
7. The Builder: Deep focus on few projects. Creates substantial things.
8. The Fixer: Many bug fix commits. Problem solver, firefighter.

Return ONLY valid JSON with no markdown formatting or code blocks:
{
  "archetype": "The [Name]",
  "description": "One celebratory sentence capturing their %d coding style (max 15 words)",
  "traits": ["trait1", "trait2", "trait3"]
}

Make it personal, specific, and celebratory. This is their year-end wrap!`,
		stats.Year,
		stats.Commits,
		stats.PrimaryLanguage,
		strings.Join(stats.Languages, ", "),
		stats.CodingTime,
		stats.PRs,
		stats.Issues,
		stats.RepoCount,
		stats.TopRepo,
		stats.AvgCommitSize,
		stats.Year,
	)
}
